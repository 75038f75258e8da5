package membership

// Tiers are totally ordered: basic < premium < elite.
const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanElite   = "elite"
)

var tierOrder = map[string]int{
	PlanBasic:   0,
	PlanPremium: 1,
	PlanElite:   2,
}

func ValidPlan(plan string) bool {
	_, ok := tierOrder[plan]
	return ok
}

type Plan struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Features []string `json:"features"`
}

func Catalog() []Plan {
	return []Plan{
		{
			Name:  "Basic",
			Price: 29.99,
			Features: []string{
				"Access to gym equipment",
				"Basic workout plans",
				"Locker room access",
				"Free parking",
				"2 group classes per month",
			},
		},
		{
			Name:  "Premium",
			Price: 49.99,
			Features: []string{
				"All Basic features",
				"Unlimited group classes",
				"Personal trainer (2 sessions/month)",
				"Nutrition consultation",
				"Access to swimming pool",
				"Guest passes (2/month)",
			},
		},
		{
			Name:  "Elite",
			Price: 79.99,
			Features: []string{
				"All Premium features",
				"Unlimited personal training",
				"Priority class booking",
				"Spa access",
				"Unlimited guest passes",
				"Private locker",
				"Customized workout and nutrition plans",
			},
		},
	}
}
