package stats

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/five82/fitjourney/internal/journal"
)

const today = "2025-11-01"

func TestCompute_Empty(t *testing.T) {
	sum := Compute(journal.Empty(), today)
	if sum.HasWeight || sum.HasPushups {
		t.Fatalf("empty summary HasWeight=%v HasPushups=%v, want false", sum.HasWeight, sum.HasPushups)
	}
	if sum.TodaysPushupTotal != 0 {
		t.Fatalf("TodaysPushupTotal = %d, want 0", sum.TodaysPushupTotal)
	}
	if sum.TodaysMealTotals != (journal.MealTotals{}) {
		t.Fatalf("TodaysMealTotals = %#v, want zero", sum.TodaysMealTotals)
	}
	if sum.WeightTrend.Plottable() {
		t.Fatal("empty trend should not be plottable")
	}
}

func TestCurrentWeight_TracksLastAppend(t *testing.T) {
	gofakeit.Seed(7)
	s := journal.Empty()
	first := 0.0
	for i := 0; i < 25; i++ {
		w := gofakeit.Float64Range(90, 260)
		if i == 0 {
			first = w
		}
		s.Weights = append(s.Weights, journal.Weight{Date: today, Weight: w})

		got, ok := CurrentWeight(s)
		if !ok || got != w {
			t.Fatalf("after append %d CurrentWeight = %v (ok=%v), want %v", i+1, got, ok, w)
		}
		start, _ := StartingWeight(s)
		if start != first {
			t.Fatalf("StartingWeight = %v, want %v", start, first)
		}
	}
}

func TestBestPushupDay_GlobalMaximum(t *testing.T) {
	s := journal.Empty()
	s.Pushups = []journal.Pushup{
		{ID: "a", Date: "2025-10-31", Count: 55},
		{ID: "b", Date: "2025-11-01", Count: 35},
		{ID: "c", Date: "2025-11-01", Count: 40},
	}
	best, ok := BestPushupDay(s)
	if !ok || best.ID != "a" || best.Count != 55 {
		t.Fatalf("BestPushupDay = %#v (ok=%v), want the 55-count entry", best, ok)
	}
}

func TestTodaysPushupTotal_OnlyToday(t *testing.T) {
	gofakeit.Seed(11)
	s := journal.Empty()
	want := 0
	for i := 0; i < 40; i++ {
		n := gofakeit.IntRange(1, 80)
		date := "2025-10-31"
		if gofakeit.Bool() {
			date = today
			want += n
		}
		s.Pushups = append(s.Pushups, journal.Pushup{Date: date, Count: n})
	}
	if got := TodaysPushupTotal(s, today); got != want {
		t.Fatalf("TodaysPushupTotal = %d, want %d", got, want)
	}
}

func TestTodaysMeals_FilterAndTotals(t *testing.T) {
	s := journal.Empty()
	s.Meals = []journal.Meal{
		{ID: "1", Date: today, Name: "Protein Shake", Calories: 180, Protein: 30, Carbs: 6, Fats: 3},
		{ID: "2", Date: "2025-10-31", Name: "Pizza", Calories: 900},
		{ID: "3", Date: today, Name: "Banana", Calories: 105, Protein: 1, Carbs: 27},
	}
	meals := TodaysMeals(s, today)
	if len(meals) != 2 || meals[0].ID != "1" || meals[1].ID != "3" {
		t.Fatalf("TodaysMeals = %#v, want ids [1 3]", meals)
	}
	want := journal.MealTotals{Calories: 285, Protein: 31, Carbs: 33, Fats: 3}
	if got := TodaysMealTotals(s, today); got != want {
		t.Fatalf("TodaysMealTotals = %#v, want %#v", got, want)
	}
}

func TestTrend_PointsAndFlatRange(t *testing.T) {
	trend := WeightTrend([]journal.Weight{{Weight: 212}, {Weight: 204}, {Weight: 200}})
	if trend.Min != 200 || trend.Max != 212 {
		t.Fatalf("Min/Max = %v/%v, want 200/212", trend.Min, trend.Max)
	}
	pts := trend.Points(DefaultPlot)
	if len(pts) != 3 {
		t.Fatalf("Points len = %d, want 3", len(pts))
	}
	if pts[0].X != 4 || pts[0].Y != 4 {
		t.Fatalf("first point = %#v, want (4,4) for the maximum", pts[0])
	}
	if pts[2].X != 276 || pts[2].Y != 56 {
		t.Fatalf("last point = %#v, want (276,56) for the minimum", pts[2])
	}

	flat := WeightTrend([]journal.Weight{{Weight: 200}, {Weight: 200}})
	if flat.Range() != 1 {
		t.Fatalf("flat Range = %v, want 1", flat.Range())
	}
	for _, p := range flat.Points(DefaultPlot) {
		if p.Y != 56 {
			t.Fatalf("flat point Y = %v, want 56", p.Y)
		}
	}

	single := WeightTrend([]journal.Weight{{Weight: 200}})
	if single.Points(DefaultPlot) != nil {
		t.Fatal("single value should have no points")
	}
}
