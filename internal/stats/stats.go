// Package stats derives the summary values shown next to the log. Everything
// here is a pure function of a journal.State and the current day-string.
package stats

import (
	"github.com/five82/fitjourney/internal/journal"
)

// Summary bundles every derived statistic for one snapshot.
type Summary struct {
	Today string

	StartingWeight float64
	CurrentWeight  float64
	HasWeight      bool

	BestPushupDay journal.Pushup
	HasPushups    bool

	TodaysPushupTotal int

	TodaysMeals      []journal.Meal
	TodaysMealTotals journal.MealTotals

	WeightTrend Trend
}

// Compute derives the full summary of s as seen on today.
func Compute(s journal.State, today string) Summary {
	sum := Summary{Today: today}
	sum.StartingWeight, sum.HasWeight = StartingWeight(s)
	sum.CurrentWeight, _ = CurrentWeight(s)
	sum.BestPushupDay, sum.HasPushups = BestPushupDay(s)
	sum.TodaysPushupTotal = TodaysPushupTotal(s, today)
	sum.TodaysMeals = TodaysMeals(s, today)
	sum.TodaysMealTotals = journal.TotalMeals(sum.TodaysMeals)
	sum.WeightTrend = WeightTrend(s.Weights)
	return sum
}

// StartingWeight returns the oldest recorded weight.
func StartingWeight(s journal.State) (float64, bool) {
	if len(s.Weights) == 0 {
		return 0, false
	}
	return s.Weights[0].Weight, true
}

// CurrentWeight returns the most recently recorded weight.
func CurrentWeight(s journal.State) (float64, bool) {
	if len(s.Weights) == 0 {
		return 0, false
	}
	return s.Weights[len(s.Weights)-1].Weight, true
}

// BestPushupDay returns the single pushup entry with the highest count.
func BestPushupDay(s journal.State) (journal.Pushup, bool) {
	return journal.MaxBy(s.Pushups, func(p journal.Pushup) float64 { return float64(p.Count) })
}

// TodaysPushupTotal sums every pushup entry dated today.
func TodaysPushupTotal(s journal.State, today string) int {
	counts := make([]int, 0, len(s.Pushups))
	for _, p := range s.Pushups {
		if p.Date == today {
			counts = append(counts, p.Count)
		}
	}
	return journal.Sum(counts)
}

// TodaysMeals returns the meals dated today in stored order.
func TodaysMeals(s journal.State, today string) []journal.Meal {
	return journal.MealsForDate(s.Meals, today)
}

// TodaysMealTotals aggregates today's meals.
func TodaysMealTotals(s journal.State, today string) journal.MealTotals {
	return journal.TotalMeals(TodaysMeals(s, today))
}
