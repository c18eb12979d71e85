package journal

import "github.com/google/uuid"

// Weight is one body-weight reading.
type Weight struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// Pushup is one logged set of pushups. Several sets may share a day.
type Pushup struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Ride is one exercise-bike session.
type Ride struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Title   string  `json:"title"`
	Minutes float64 `json:"minutes"`
	Output  float64 `json:"output"`
}

// Meal is one logged meal with its macros in grams.
type Meal struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// State is one complete snapshot of the log.
//
// Weights and Pushups are kept in append order (oldest first). Rides and Meals
// are kept newest first because new entries are prepended.
type State struct {
	Weights []Weight `json:"weights"`
	Pushups []Pushup `json:"pushups"`
	Rides   []Ride   `json:"rides"`
	Meals   []Meal   `json:"meals"`
}

// Empty returns a state with four empty sequences.
func Empty() State {
	return State{
		Weights: []Weight{},
		Pushups: []Pushup{},
		Rides:   []Ride{},
		Meals:   []Meal{},
	}
}

// NewID returns a fresh entry identifier.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of s. The result never shares backing arrays with
// s, and nil sequences come back as empty ones.
func (s State) Clone() State {
	return State{
		Weights: cloneSlice(s.Weights),
		Pushups: cloneSlice(s.Pushups),
		Rides:   cloneSlice(s.Rides),
		Meals:   cloneSlice(s.Meals),
	}
}

// Normalize replaces missing sequences with empty ones and assigns an ID to
// every entry that lacks one. Data written before IDs existed loads this way.
func (s State) Normalize(newID func() string) State {
	if newID == nil {
		newID = NewID
	}
	out := s.Clone()
	for i := range out.Weights {
		if out.Weights[i].ID == "" {
			out.Weights[i].ID = newID()
		}
	}
	for i := range out.Pushups {
		if out.Pushups[i].ID == "" {
			out.Pushups[i].ID = newID()
		}
	}
	for i := range out.Rides {
		if out.Rides[i].ID == "" {
			out.Rides[i].ID = newID()
		}
	}
	for i := range out.Meals {
		if out.Meals[i].ID == "" {
			out.Meals[i].ID = newID()
		}
	}
	return out
}

// IsEmpty reports whether no entries of any kind are recorded.
func (s State) IsEmpty() bool {
	return len(s.Weights) == 0 && len(s.Pushups) == 0 && len(s.Rides) == 0 && len(s.Meals) == 0
}

func cloneSlice[T any](items []T) []T {
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
