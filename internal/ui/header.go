package ui

import (
	"fmt"
	"strings"

	"github.com/five82/fitjourney/internal/journal"
)

// renderHeader renders the title bar with today's label and summary chips.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("fitjourney", styles.Logo),
		bg.Render(journal.FormatDate(m.summary.Today), styles.Text.Bold(true)),
	}

	for _, v := range viewOrder {
		label := v.String()
		if v == m.currentView {
			parts = append(parts, bg.Render("["+label+"]", styles.AccentText.Bold(true)))
		} else if !compact {
			parts = append(parts, bg.Render(label, styles.FaintText))
		}
	}

	weightLabel := ternary(compact, "wt", "weight")
	if m.summary.HasWeight {
		parts = append(parts, bg.Pair(weightLabel, num(m.summary.CurrentWeight), styles.MutedText, styles.Text))
	}
	parts = append(parts,
		bg.Pair(ternary(compact, "pu", "pushups"), fmt.Sprint(m.summary.TodaysPushupTotal), styles.MutedText, styles.Text),
		bg.Pair(ternary(compact, "kcal", "calories"), num(m.summary.TodaysMealTotals.Calories), styles.MutedText, styles.Text),
	)

	return bg.FillLine(bg.Join(parts, "  "), m.width)
}

// renderCommandBar renders the key hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewFood:
		commands = []cmd{
			{fmt.Sprintf("1-%d", len(journal.Presets)), "Preset"},
			{"m", "Custom"},
			{"j/k", "Select"},
			{"x", "Remove"},
		}
	case ViewHistory:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"g/G", "Top/Bottom"},
		}
	default: // ViewToday
		commands = []cmd{
			{"w", "Weight"},
			{"p", "Pushups"},
			{fmt.Sprintf("1-%d", len(m.quick)), "Quick"},
			{"u", "Undo"},
			{"r", "Ride"},
		}
	}
	commands = append(commands, cmd{"Tab", "View"}, cmd{"?", "More"})

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments, bg.Pair(c.key, c.desc, styles.AccentText, styles.MutedText))
	}
	segments = append(segments, bg.Pair("T", m.theme.Name, styles.AccentText, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderStatusLine shows feedback from the last action.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	text := styles.FaintText.Render("Ready")
	if m.status != "" {
		text = styles.SuccessText.Render(m.status)
	}
	return styles.Footer.Width(m.width).Render(text)
}
