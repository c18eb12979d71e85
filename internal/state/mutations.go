package state

import (
	log "github.com/sirupsen/logrus"

	"github.com/five82/fitjourney/internal/journal"
)

// AddWeight appends today's weight. Input that is not a positive number is
// ignored.
func (s *Store) AddWeight(in journal.WeightInput) bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		w, ok := in.Validate(today)
		if !ok {
			return cur, false
		}
		w.ID = s.newID()
		next := cur
		next.Weights = appended(cur.Weights, w)
		return next, true
	})
}

// AddPushups appends a typed pushup count for today.
func (s *Store) AddPushups(in journal.PushupInput) bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		p, ok := in.Validate(today)
		if !ok {
			return cur, false
		}
		return s.withPushup(cur, p), true
	})
}

// AddPushupCount appends a fixed pushup count for today, as used by the quick
// add keys.
func (s *Store) AddPushupCount(n int) bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		if n <= 0 {
			return cur, false
		}
		return s.withPushup(cur, journal.Pushup{Date: today, Count: n}), true
	})
}

func (s *Store) withPushup(cur journal.State, p journal.Pushup) journal.State {
	p.ID = s.newID()
	next := cur
	next.Pushups = appended(cur.Pushups, p)
	return next
}

// UndoLastPushups removes the most recently appended pushup entry dated today.
func (s *Store) UndoLastPushups() bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		for i := len(cur.Pushups) - 1; i >= 0; i-- {
			if cur.Pushups[i].Date == today {
				next := cur
				next.Pushups = removedAt(cur.Pushups, i)
				return next, true
			}
		}
		return cur, false
	})
}

// AddRide prepends a ride. The title is required.
func (s *Store) AddRide(in journal.RideInput) bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		r, ok := in.Validate(today)
		if !ok {
			return cur, false
		}
		r.ID = s.newID()
		next := cur
		next.Rides = prepended(cur.Rides, r)
		return next, true
	})
}

// AddMeal prepends a custom meal dated today. The name is required.
func (s *Store) AddMeal(in journal.MealInput) bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		m, ok := in.Validate(today)
		if !ok {
			return cur, false
		}
		return s.withMeal(cur, m), true
	})
}

// QuickAddMeal prepends a meal built from a preset. It always succeeds.
func (s *Store) QuickAddMeal(p journal.Preset) bool {
	return s.apply(func(cur journal.State, today string) (journal.State, bool) {
		return s.withMeal(cur, p.Meal(today)), true
	})
}

func (s *Store) withMeal(cur journal.State, m journal.Meal) journal.State {
	m.ID = s.newID()
	next := cur
	next.Meals = prepended(cur.Meals, m)
	return next
}

// RemoveMeal removes the meal with the given ID. Removing an ID that is no
// longer present does nothing.
func (s *Store) RemoveMeal(id string) bool {
	if id == "" {
		return false
	}
	return s.apply(func(cur journal.State, _ string) (journal.State, bool) {
		for i, m := range cur.Meals {
			if m.ID == id {
				next := cur
				next.Meals = removedAt(cur.Meals, i)
				return next, true
			}
		}
		return cur, false
	})
}

// LoadDemo replaces the whole log with the demo dataset.
func (s *Store) LoadDemo() bool {
	return s.apply(func(_ journal.State, today string) (journal.State, bool) {
		log.Info("loading demo data")
		return journal.Demo(today).Normalize(s.newID), true
	})
}

// ClearAll discards every entry once confirm agrees. A nil confirm or a
// declined prompt leaves the log untouched.
func (s *Store) ClearAll(confirm Confirm) bool {
	if confirm == nil || !confirm(ClearPrompt) {
		return false
	}
	return s.apply(func(_ journal.State, _ string) (journal.State, bool) {
		log.Info("clearing all data")
		return journal.Empty(), true
	})
}

func appended[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func prepended[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func removedAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
