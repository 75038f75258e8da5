package diet

import "math"

// Calorie goals accepted by the estimator.
const (
	GoalMaintain        = "maintain"
	GoalGain            = "gain"
	GoalLose            = "lose"
	GoalLoseSignificant = "lose-significant"
)

// activityFactor is the fixed "moderate activity" multiplier applied
// to the basal rate.
const activityFactor = 1.55

// BMI category labels and their lower bounds.
const (
	CategoryUnderweight = "Underweight"
	CategoryNormal      = "Normal weight"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"
)

// Assessment is the output of the BMI-driven estimator. It is
// independent of DailyPlan and intentionally not reconciled with it.
type Assessment struct {
	BMI             float64 `json:"bmi"`
	Category        string  `json:"category"`
	RecommendedPlan string  `json:"recommended_plan"`
	DailyCalories   int     `json:"daily_calories"`
	Recommendation  string  `json:"recommendation"`
}

// BMI computes body mass index from weight in kg and height in cm,
// rounded to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// RecommendedCalories computes a daily calorie target with the
// Mifflin-St Jeor equation, a fixed moderate activity factor, and a
// goal offset.
func RecommendedCalories(weightKg, heightCm float64, age int, gender, goal string) int {
	var bmr float64
	if gender == "male" {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	} else {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	}

	maintenance := int(math.Round(bmr * activityFactor))

	switch goal {
	case GoalGain:
		return maintenance + 500
	case GoalLose:
		return maintenance - 500
	case GoalLoseSignificant:
		return maintenance - 750
	default:
		return maintenance
	}
}

// GoalForCategory derives the default calorie goal from a BMI category.
func GoalForCategory(category string) string {
	switch category {
	case CategoryUnderweight:
		return GoalGain
	case CategoryOverweight:
		return GoalLose
	case CategoryObese:
		return GoalLoseSignificant
	default:
		return GoalMaintain
	}
}

// Assess runs the full estimator: BMI, category, the diet plan the
// category maps to, and the calorie target for the goal (derived from
// the category when goal is empty).
func Assess(weightKg, heightCm float64, age int, gender, goal string) Assessment {
	bmi := BMI(weightKg, heightCm)
	category := BMICategory(bmi)
	if goal == "" {
		goal = GoalForCategory(category)
	}

	return Assessment{
		BMI:             bmi,
		Category:        category,
		RecommendedPlan: planForCategory(category),
		DailyCalories:   RecommendedCalories(weightKg, heightCm, age, gender, goal),
		Recommendation:  recommendations[category],
	}
}

func planForCategory(category string) string {
	switch category {
	case CategoryUnderweight:
		return PlanMuscleBuilding
	case CategoryOverweight, CategoryObese:
		return PlanWeightLoss
	default:
		return PlanHealthWellness
	}
}

var recommendations = map[string]string{
	CategoryUnderweight: "Based on your BMI, we recommend our Muscle Building Diet Plan with added calories to help you gain healthy weight. Eat frequently, include calorie-dense foods, and combine with strength training for muscle gain rather than just fat gain.",
	CategoryNormal:      "Based on your BMI, we recommend our Health & Wellness Diet Plan to maintain your healthy weight and optimize nutrition. Focus on whole, unprocessed foods, stay hydrated, and practice portion control and mindful eating.",
	CategoryOverweight:  "Based on your BMI, we recommend our Weight Loss Diet Plan with a moderate calorie deficit to achieve healthy weight. Emphasize protein to maintain muscle, favor high-volume low-calorie foods, and limit refined carbohydrates and added sugars.",
	CategoryObese:       "Based on your BMI, we recommend our Weight Loss Diet Plan with professional guidance for safe, sustainable weight loss. Work with a healthcare provider, monitor portions carefully, and include regular physical activity with both cardio and strength training.",
}
