package journal

// Preset is a named meal template for one-key logging.
type Preset struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// Meal builds a meal from the preset dated day.
func (p Preset) Meal(day string) Meal {
	return Meal{
		Date:     day,
		Name:     p.Name,
		Calories: p.Calories,
		Protein:  p.Protein,
		Carbs:    p.Carbs,
		Fats:     p.Fats,
	}
}

// Presets lists the built-in meal templates in display order.
var Presets = []Preset{
	{Name: "Protein Shake", Calories: 180, Protein: 30, Carbs: 6, Fats: 3},
	{Name: "Factor: Grilled Chicken", Calories: 520, Protein: 45, Carbs: 34, Fats: 21},
	{Name: "Factor: Steak & Potatoes", Calories: 640, Protein: 42, Carbs: 48, Fats: 30},
	{Name: "Greek Yogurt", Calories: 150, Protein: 15, Carbs: 8, Fats: 4},
	{Name: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fats: 0},
	{Name: "Oatmeal", Calories: 300, Protein: 10, Carbs: 54, Fats: 5},
}

// PresetByName finds a built-in preset.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Demo returns the illustrative dataset used for onboarding. Entries dated
// today use the given day-string.
func Demo(today string) State {
	s := State{
		Weights: []Weight{
			{Date: "2025-09-01", Weight: 212},
			{Date: "2025-10-01", Weight: 204},
			{Date: today, Weight: 200},
		},
		Pushups: []Pushup{
			{Date: today, Count: 35},
			{Date: today, Count: 40},
			{Date: "2025-10-31", Count: 55},
		},
		Rides: []Ride{
			{Date: today, Title: "20-min Pop Ride", Minutes: 20, Output: 235},
			{Date: "2025-10-29", Title: "30-min Climb", Minutes: 30, Output: 310},
		},
		Meals: []Meal{
			{Date: today, Name: "Factor: Grilled Chicken", Calories: 520, Protein: 45, Carbs: 34, Fats: 21},
			{Date: today, Name: "Protein Shake", Calories: 180, Protein: 30, Carbs: 6, Fats: 3},
		},
	}
	return s.Normalize(nil)
}
