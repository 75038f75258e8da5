package datastore

// Allowlisted tables and their exposed columns. The passthrough never
// touches anything outside this map; members hide the password hash.
type tableSpec struct {
	readColumns string
	writable    map[string]bool
}

var tables = map[string]tableSpec{
	"members": {
		readColumns: `id, full_name, email, role, membership_plan,
			membership_start_date, membership_end_date, diet_plan,
			fitness_goals, current_weight, goal_weight, height, age,
			gender, created_at`,
		writable: map[string]bool{
			"full_name":             true,
			"email":                 true,
			"membership_plan":       true,
			"membership_start_date": true,
			"membership_end_date":   true,
			"diet_plan":             true,
			"fitness_goals":         true,
			"current_weight":        true,
			"goal_weight":           true,
			"height":                true,
			"age":                   true,
			"gender":                true,
		},
	},
	"attendance": {
		readColumns: `id, member_id, check_in_time, check_out_time, created_at`,
		writable: map[string]bool{
			"member_id":      true,
			"check_in_time":  true,
			"check_out_time": true,
		},
	},
	"workout_logs": {
		readColumns: `id, member_id, workout_type, duration_minutes,
			calories_burned, exercises, workout_date, created_at`,
		writable: map[string]bool{
			"member_id":        true,
			"workout_type":     true,
			"duration_minutes": true,
			"calories_burned":  true,
			"exercises":        true,
			"workout_date":     true,
		},
	},
}

func lookupTable(name string) (tableSpec, bool) {
	spec, ok := tables[name]
	return spec, ok
}
