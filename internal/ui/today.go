package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fitjourney/internal/journal"
)

func (m Model) panelWidth() int {
	w := m.width - 2
	if w > LayoutPanelWidth {
		w = LayoutPanelWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// panelChrome is the border plus horizontal padding of a panel.
const panelChrome = 4

func (m Model) panel(kind, title, body string) string {
	styles := m.theme.Styles()
	heading := styles.KindStyle(kind).Render(title)
	return styles.Border.Width(m.panelWidth()).Render(heading + "\n" + body)
}

func (m Model) renderToday() string {
	styles := m.theme.Styles()
	sum := m.summary

	// Weight
	var weight strings.Builder
	if sum.HasWeight {
		fmt.Fprintf(&weight, "%s %s lb   %s %s lb",
			styles.MutedText.Render("Starting"), num(sum.StartingWeight),
			styles.MutedText.Render("Current"), num(sum.CurrentWeight))
		if line := sparkline(sum.WeightTrend, m.panelWidth()-panelChrome); line != "" {
			weight.WriteString("\n")
			weight.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.KindColors[kindWeight])).Render(line))
		}
	} else {
		weight.WriteString(styles.FaintText.Render("No weights yet. Press w to log one."))
	}

	// Pushups
	var pushups strings.Builder
	sets := 0
	for _, p := range m.snapshot.Pushups {
		if p.Date == sum.Today {
			sets++
		}
	}
	fmt.Fprintf(&pushups, "%s %d (%s)", styles.MutedText.Render("Today"), sum.TodaysPushupTotal, plural(sets, "set"))
	if sum.HasPushups {
		fmt.Fprintf(&pushups, "   %s %d on %s", styles.MutedText.Render("Best"),
			sum.BestPushupDay.Count, journal.FormatDate(sum.BestPushupDay.Date))
	}
	pushups.WriteString("\n")
	quick := make([]string, 0, len(m.quick))
	for i, n := range m.quick {
		quick = append(quick, styles.AccentText.Render(fmt.Sprintf("%d", i+1))+styles.MutedText.Render(fmt.Sprintf(" +%d", n)))
	}
	pushups.WriteString(strings.Join(quick, "  "))

	// Rides
	var rides strings.Builder
	if len(m.snapshot.Rides) == 0 {
		rides.WriteString(styles.FaintText.Render("No rides yet. Press r to log one."))
	}
	for i, r := range m.snapshot.Rides {
		if i == RecentRideLimit {
			break
		}
		if i > 0 {
			rides.WriteString("\n")
		}
		fmt.Fprintf(&rides, "%s  %s  %s",
			styles.MutedText.Render(padRight(journal.FormatDate(r.Date), 6)),
			truncate(r.Title, m.panelWidth()-30),
			styles.FaintText.Render(fmt.Sprintf("%s min · %s kJ", num(r.Minutes), num(r.Output))))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.panel(kindWeight, "Weight", weight.String()),
		m.panel(kindPushups, "Pushups", pushups.String()),
		m.panel(kindRide, "Rides", rides.String()),
	)
}
