package journal

import (
	"math"
	"strings"
	"time"
)

// DayLayout is the layout of a day-string.
const DayLayout = "2006-01-02"

// Today returns the local calendar day of now as a day-string.
func Today(now time.Time) string {
	return now.Local().Format(DayLayout)
}

// ParseDay parses a day-string in the local time zone.
func ParseDay(day string) (time.Time, bool) {
	t, err := time.ParseInLocation(DayLayout, strings.TrimSpace(day), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a day-string as a short label such as "Jan 5".
// Input that is not a day-string is returned unchanged.
func FormatDate(day string) string {
	t, ok := ParseDay(day)
	if !ok {
		return day
	}
	return t.Format("Jan 2")
}

// Number is the set of numeric types the helpers aggregate over.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds values. An empty slice sums to zero.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// MaxBy returns the item with the largest key. The first maximum wins on ties.
// ok is false when items is empty.
func MaxBy[T any](items []T, key func(T) float64) (best T, ok bool) {
	for _, item := range items {
		if !ok || key(item) > key(best) {
			best = item
			ok = true
		}
	}
	return best, ok
}

// MealTotals aggregates the nutrition of several meals.
type MealTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MealsForDate returns the meals logged on day, in stored order.
func MealsForDate(meals []Meal, day string) []Meal {
	out := make([]Meal, 0, len(meals))
	for _, m := range meals {
		if m.Date == day {
			out = append(out, m)
		}
	}
	return out
}

// TotalMeals sums the nutrition fields of meals. Values that are not finite
// numbers count as zero.
func TotalMeals(meals []Meal) MealTotals {
	var t MealTotals
	for _, m := range meals {
		t.Calories += finite(m.Calories)
		t.Protein += finite(m.Protein)
		t.Carbs += finite(m.Carbs)
		t.Fats += finite(m.Fats)
	}
	return t
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
