package workout

// RecommendationsFor returns the fixed routines for each of the
// member's fitness goals. Unknown goals map to an empty routine list
// rather than being dropped, so the response mirrors the stored goals.
func RecommendationsFor(goals []string) []GoalRecommendation {
	recommendations := make([]GoalRecommendation, 0, len(goals))
	for _, goal := range goals {
		workouts := routinesByGoal[goal]
		if workouts == nil {
			workouts = []Routine{}
		}
		recommendations = append(recommendations, GoalRecommendation{Goal: goal, Workouts: workouts})
	}
	return recommendations
}

var routinesByGoal = map[string][]Routine{
	"weight-loss": {
		{
			Name:      "Cardio Blast",
			Duration:  45,
			Intensity: "High",
			Exercises: []Exercise{
				{Name: "Running", Duration: "20 minutes", Intensity: "Moderate"},
				{Name: "Jump Rope", Duration: "10 minutes", Intensity: "High"},
				{Name: "Burpees", Sets: 3, Reps: 12, Rest: "60 seconds"},
				{Name: "Mountain Climbers", Duration: "5 minutes", Intensity: "High"},
			},
		},
		{
			Name:      "HIIT Circuit",
			Duration:  30,
			Intensity: "High",
			Exercises: []Exercise{
				{Name: "Sprint Intervals", Duration: "15 minutes", Intensity: "High"},
				{Name: "Kettlebell Swings", Sets: 4, Reps: 15, Rest: "45 seconds"},
				{Name: "Box Jumps", Sets: 3, Reps: 10, Rest: "60 seconds"},
				{Name: "Plank to Push-up", Sets: 3, Reps: 8, Rest: "45 seconds"},
			},
		},
	},
	"muscle-gain": {
		{
			Name:      "Upper Body Strength",
			Duration:  60,
			Intensity: "Moderate",
			Exercises: []Exercise{
				{Name: "Bench Press", Sets: 4, Reps: 8, Rest: "90 seconds"},
				{Name: "Pull-ups", Sets: 3, Reps: 10, Rest: "90 seconds"},
				{Name: "Shoulder Press", Sets: 3, Reps: 12, Rest: "60 seconds"},
				{Name: "Tricep Extensions", Sets: 3, Reps: 12, Rest: "60 seconds"},
			},
		},
		{
			Name:      "Lower Body Power",
			Duration:  60,
			Intensity: "Moderate",
			Exercises: []Exercise{
				{Name: "Squats", Sets: 4, Reps: 8, Rest: "90 seconds"},
				{Name: "Romanian Deadlifts", Sets: 3, Reps: 10, Rest: "90 seconds"},
				{Name: "Lunges", Sets: 3, Reps: 12, Rest: "60 seconds"},
				{Name: "Calf Raises", Sets: 3, Reps: 15, Rest: "60 seconds"},
			},
		},
	},
	"endurance": {
		{
			Name:      "Long Distance Run",
			Duration:  60,
			Intensity: "Moderate",
			Exercises: []Exercise{
				{Name: "Warm-up Run", Duration: "10 minutes", Intensity: "Low"},
				{Name: "Steady State Run", Duration: "40 minutes", Intensity: "Moderate"},
				{Name: "Cool-down Run", Duration: "10 minutes", Intensity: "Low"},
			},
		},
		{
			Name:      "Endurance Circuit",
			Duration:  45,
			Intensity: "Moderate",
			Exercises: []Exercise{
				{Name: "Rowing", Duration: "15 minutes", Intensity: "Moderate"},
				{Name: "Cycling", Duration: "15 minutes", Intensity: "Moderate"},
				{Name: "Swimming", Duration: "15 minutes", Intensity: "Moderate"},
			},
		},
	},
	"flexibility": {
		{
			Name:      "Yoga Flow",
			Duration:  45,
			Intensity: "Low",
			Exercises: []Exercise{
				{Name: "Sun Salutations", Duration: "10 minutes"},
				{Name: "Standing Poses", Duration: "15 minutes"},
				{Name: "Seated Poses", Duration: "10 minutes"},
				{Name: "Cool-down Stretches", Duration: "10 minutes"},
			},
		},
		{
			Name:      "Stretching Routine",
			Duration:  30,
			Intensity: "Low",
			Exercises: []Exercise{
				{Name: "Dynamic Stretches", Duration: "10 minutes"},
				{Name: "Static Stretches", Duration: "15 minutes"},
				{Name: "Cool-down", Duration: "5 minutes"},
			},
		},
	},
	"strength": {
		{
			Name:      "Full Body Strength",
			Duration:  60,
			Intensity: "High",
			Exercises: []Exercise{
				{Name: "Deadlifts", Sets: 4, Reps: 6, Rest: "120 seconds"},
				{Name: "Squats", Sets: 4, Reps: 8, Rest: "120 seconds"},
				{Name: "Bench Press", Sets: 4, Reps: 8, Rest: "120 seconds"},
				{Name: "Pull-ups", Sets: 3, Reps: 8, Rest: "90 seconds"},
			},
		},
		{
			Name:      "Power Lifting",
			Duration:  75,
			Intensity: "High",
			Exercises: []Exercise{
				{Name: "Squats", Sets: 5, Reps: 5, Rest: "180 seconds"},
				{Name: "Bench Press", Sets: 5, Reps: 5, Rest: "180 seconds"},
				{Name: "Deadlifts", Sets: 5, Reps: 5, Rest: "180 seconds"},
			},
		},
	},
}
