package diet

// Plan categories a member can select.
const (
	PlanWeightLoss          = "weight-loss"
	PlanMuscleBuilding      = "muscle-building"
	PlanAthleticPerformance = "athletic-performance"
	PlanHealthWellness      = "health-wellness"
)

func ValidPlan(plan string) bool {
	switch plan {
	case PlanWeightLoss, PlanMuscleBuilding, PlanAthleticPerformance, PlanHealthWellness:
		return true
	}
	return false
}

type MacroSplit struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

type CatalogEntry struct {
	Plan               string     `json:"plan"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Features           []string   `json:"features"`
	MacronutrientSplit MacroSplit `json:"macronutrient_split"`
}

// Catalog returns the static diet plan reference data.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Plan:        PlanWeightLoss,
			Name:        "Weight Loss",
			Description: "Perfect for those looking to shed pounds and improve overall health",
			Features: []string{
				"Calorie deficit meal plans",
				"High-protein options",
				"Low-carb alternatives",
				"Meal prep guides",
				"Shopping lists",
				"Progress tracking",
			},
			MacronutrientSplit: MacroSplit{Protein: "30%", Carbs: "40%", Fats: "30%"},
		},
		{
			Plan:        PlanMuscleBuilding,
			Name:        "Muscle Building",
			Description: "Optimized for muscle growth and strength gains",
			Features: []string{
				"High-protein meal plans",
				"Calorie surplus options",
				"Pre/post workout meals",
				"Supplement recommendations",
				"Meal timing guides",
				"Progress tracking",
			},
			MacronutrientSplit: MacroSplit{Protein: "40%", Carbs: "40%", Fats: "20%"},
		},
		{
			Plan:        PlanAthleticPerformance,
			Name:        "Athletic Performance",
			Description: "Designed for athletes and active individuals",
			Features: []string{
				"Performance-optimized meals",
				"Energy-dense options",
				"Hydration guides",
				"Pre-competition meals",
				"Recovery nutrition",
				"Progress tracking",
			},
			MacronutrientSplit: MacroSplit{Protein: "30%", Carbs: "50%", Fats: "20%"},
		},
		{
			Plan:        PlanHealthWellness,
			Name:        "Health & Wellness",
			Description: "Balanced nutrition for overall health and well-being",
			Features: []string{
				"Balanced meal plans",
				"Whole food focus",
				"Anti-inflammatory options",
				"Gut health support",
				"Mindful eating guides",
				"Progress tracking",
			},
			MacronutrientSplit: MacroSplit{Protein: "25%", Carbs: "45%", Fats: "30%"},
		},
	}
}
