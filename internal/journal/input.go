package journal

import (
	"math"
	"strconv"
	"strings"
)

// WeightInput is a weight submission as typed by the user.
type WeightInput struct {
	Weight string
}

// Validate builds a Weight dated today. The weight must be a positive number.
func (in WeightInput) Validate(today string) (Weight, bool) {
	w, ok := parsePositive(in.Weight)
	if !ok {
		return Weight{}, false
	}
	return Weight{Date: today, Weight: w}, true
}

// PushupInput is a pushup submission as typed by the user.
type PushupInput struct {
	Count string
}

// Validate builds a Pushup dated today. The count must be a positive integer.
func (in PushupInput) Validate(today string) (Pushup, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(in.Count))
	if err != nil || n <= 0 {
		return Pushup{}, false
	}
	return Pushup{Date: today, Count: n}, true
}

// RideInput is a ride submission as typed by the user. Date is optional.
type RideInput struct {
	Title   string
	Minutes string
	Output  string
	Date    string
}

// Validate builds a Ride. The title is required; minutes and output fall back
// to zero when they are not usable numbers; an empty date means today.
func (in RideInput) Validate(today string) (Ride, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Ride{}, false
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = today
	} else if t, ok := ParseDay(date); ok {
		date = t.Format(DayLayout)
	} else {
		return Ride{}, false
	}
	return Ride{
		Date:    date,
		Title:   title,
		Minutes: parseAmount(in.Minutes),
		Output:  parseAmount(in.Output),
	}, true
}

// MealInput is a custom meal submission as typed by the user.
type MealInput struct {
	Name     string
	Calories string
	Protein  string
	Carbs    string
	Fats     string
}

// Validate builds a Meal dated today. The name is required; nutrition values
// fall back to zero when they are not usable numbers.
func (in MealInput) Validate(today string) (Meal, bool) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Meal{}, false
	}
	return Meal{
		Date:     today,
		Name:     name,
		Calories: parseAmount(in.Calories),
		Protein:  parseAmount(in.Protein),
		Carbs:    parseAmount(in.Carbs),
		Fats:     parseAmount(in.Fats),
	}, true
}

func parseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parsePositive(raw string) (float64, bool) {
	v, ok := parseNumber(raw)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// parseAmount returns a non-negative number, or zero.
func parseAmount(raw string) float64 {
	v, ok := parseNumber(raw)
	if !ok || v < 0 {
		return 0
	}
	return v
}
