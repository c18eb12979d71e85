package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/fitjourney/internal/journal"
	"github.com/five82/fitjourney/internal/state"
	"github.com/five82/fitjourney/internal/stats"
)

// Demo replaces the saved log with the demo dataset.
func Demo(_ context.Context, opts Options) (err error) {
	e, err := setup(opts, false)
	if err != nil {
		return err
	}
	defer func() { err = e.close(err) }()

	store := e.openStore(opts)
	store.LoadDemo()
	store.Close()

	fmt.Fprintln(opts.out(), "Loaded demo data.")
	return nil
}

// Clear asks on opts.In before discarding every saved entry. Anything other
// than y or yes keeps the log.
func Clear(_ context.Context, opts Options) (err error) {
	e, err := setup(opts, false)
	if err != nil {
		return err
	}
	defer func() { err = e.close(err) }()

	store := e.openStore(opts)
	cleared := store.ClearAll(promptConfirm(opts.in(), opts.out()))
	store.Close()

	if cleared {
		fmt.Fprintln(opts.out(), "Cleared all data.")
	} else {
		fmt.Fprintln(opts.out(), "Nothing cleared.")
	}
	return nil
}

// Summary prints today's derived stats.
func Summary(_ context.Context, opts Options) (err error) {
	e, err := setup(opts, false)
	if err != nil {
		return err
	}
	defer func() { err = e.close(err) }()

	today := journal.Today(opts.now())
	writeSummary(opts.out(), stats.Compute(e.adapter.Load(), today))
	return nil
}

func (e *env) openStore(opts Options) *state.Store {
	return state.New(e.adapter.Load(), state.Options{Saver: e.adapter, Now: opts.Now})
}

func promptConfirm(in io.Reader, out io.Writer) state.Confirm {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

func writeSummary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "Today: %s\n", journal.FormatDate(s.Today))

	if s.HasWeight {
		fmt.Fprintf(w, "Weight: %s lb (started at %s lb)\n", num(s.CurrentWeight), num(s.StartingWeight))
	} else {
		fmt.Fprintln(w, "Weight: none logged")
	}

	fmt.Fprintf(w, "Pushups today: %d\n", s.TodaysPushupTotal)
	if s.HasPushups {
		fmt.Fprintf(w, "Best pushup day: %d on %s\n", s.BestPushupDay.Count, journal.FormatDate(s.BestPushupDay.Date))
	}

	t := s.TodaysMealTotals
	fmt.Fprintf(w, "Meals today: %d (%s kcal, %sg protein, %sg carbs, %sg fats)\n",
		len(s.TodaysMeals), num(t.Calories), num(t.Protein), num(t.Carbs), num(t.Fats))
}
