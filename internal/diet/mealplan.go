package diet

type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type Meal struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Macros      Macros   `json:"macros"`
	Ingredients []string `json:"ingredients,omitempty"`
}

type MealPlan struct {
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Snacks    []Meal `json:"snacks"`
}

// DailyPlan maps a diet category to its fixed daily meal plan. An
// unrecognized stored value falls back to health-wellness instead of
// failing; callers rely on this default.
func DailyPlan(plan string) MealPlan {
	if p, ok := mealPlans[plan]; ok {
		return p
	}
	return mealPlans[PlanHealthWellness]
}

var mealPlans = map[string]MealPlan{
	PlanWeightLoss: {
		Breakfast: Meal{
			Name:        "High-Protein Breakfast Bowl",
			Calories:    350,
			Macros:      Macros{Protein: 25, Carbs: 35, Fats: 15},
			Ingredients: []string{"Eggs", "Oatmeal", "Greek yogurt", "Berries", "Almonds"},
		},
		Lunch: Meal{
			Name:        "Grilled Chicken Salad",
			Calories:    400,
			Macros:      Macros{Protein: 35, Carbs: 25, Fats: 20},
			Ingredients: []string{"Chicken breast", "Mixed greens", "Cherry tomatoes", "Cucumber", "Olive oil"},
		},
		Dinner: Meal{
			Name:        "Baked Salmon with Vegetables",
			Calories:    450,
			Macros:      Macros{Protein: 40, Carbs: 30, Fats: 25},
			Ingredients: []string{"Salmon", "Broccoli", "Sweet potato", "Lemon", "Herbs"},
		},
		Snacks: []Meal{
			{Name: "Protein Smoothie", Calories: 200, Macros: Macros{Protein: 20, Carbs: 25, Fats: 5}},
			{Name: "Mixed Nuts", Calories: 150, Macros: Macros{Protein: 5, Carbs: 10, Fats: 12}},
		},
	},
	PlanMuscleBuilding: {
		Breakfast: Meal{
			Name:        "Protein-Packed Breakfast",
			Calories:    500,
			Macros:      Macros{Protein: 35, Carbs: 45, Fats: 20},
			Ingredients: []string{"Eggs", "Whole grain toast", "Avocado", "Banana", "Protein powder"},
		},
		Lunch: Meal{
			Name:        "Turkey and Quinoa Bowl",
			Calories:    550,
			Macros:      Macros{Protein: 45, Carbs: 50, Fats: 20},
			Ingredients: []string{"Ground turkey", "Quinoa", "Mixed vegetables", "Olive oil", "Spices"},
		},
		Dinner: Meal{
			Name:        "Steak and Sweet Potato",
			Calories:    600,
			Macros:      Macros{Protein: 50, Carbs: 60, Fats: 25},
			Ingredients: []string{"Lean steak", "Sweet potato", "Green beans", "Butter", "Herbs"},
		},
		Snacks: []Meal{
			{Name: "Protein Shake", Calories: 250, Macros: Macros{Protein: 25, Carbs: 30, Fats: 5}},
			{Name: "Greek Yogurt with Granola", Calories: 200, Macros: Macros{Protein: 15, Carbs: 25, Fats: 8}},
		},
	},
	PlanAthleticPerformance: {
		Breakfast: Meal{
			Name:        "Energy Boost Breakfast",
			Calories:    450,
			Macros:      Macros{Protein: 25, Carbs: 60, Fats: 15},
			Ingredients: []string{"Oatmeal", "Banana", "Honey", "Almonds", "Protein powder"},
		},
		Lunch: Meal{
			Name:        "Power Bowl",
			Calories:    500,
			Macros:      Macros{Protein: 30, Carbs: 65, Fats: 15},
			Ingredients: []string{"Brown rice", "Chicken", "Mixed vegetables", "Sauce", "Seeds"},
		},
		Dinner: Meal{
			Name:        "Performance Dinner",
			Calories:    550,
			Macros:      Macros{Protein: 35, Carbs: 70, Fats: 15},
			Ingredients: []string{"Pasta", "Lean meat", "Vegetables", "Olive oil", "Herbs"},
		},
		Snacks: []Meal{
			{Name: "Energy Bar", Calories: 200, Macros: Macros{Protein: 10, Carbs: 30, Fats: 5}},
			{Name: "Fruit and Nuts", Calories: 150, Macros: Macros{Protein: 5, Carbs: 20, Fats: 8}},
		},
	},
	PlanHealthWellness: {
		Breakfast: Meal{
			Name:        "Balanced Breakfast Bowl",
			Calories:    400,
			Macros:      Macros{Protein: 20, Carbs: 45, Fats: 20},
			Ingredients: []string{"Quinoa", "Eggs", "Avocado", "Spinach", "Seeds"},
		},
		Lunch: Meal{
			Name:        "Mediterranean Bowl",
			Calories:    450,
			Macros:      Macros{Protein: 25, Carbs: 50, Fats: 20},
			Ingredients: []string{"Chickpeas", "Mixed vegetables", "Olive oil", "Feta", "Herbs"},
		},
		Dinner: Meal{
			Name:        "Healthy Dinner Plate",
			Calories:    500,
			Macros:      Macros{Protein: 30, Carbs: 55, Fats: 20},
			Ingredients: []string{"Fish", "Brown rice", "Vegetables", "Olive oil", "Lemon"},
		},
		Snacks: []Meal{
			{Name: "Hummus and Vegetables", Calories: 150, Macros: Macros{Protein: 5, Carbs: 15, Fats: 8}},
			{Name: "Mixed Berries", Calories: 100, Macros: Macros{Protein: 2, Carbs: 20, Fats: 1}},
		},
	},
}
