package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/five82/fitjourney/internal/journal"
)

// history chrome: header, command bar, status line
const historyChromeLines = 3

func (m *Model) initHistoryViewport() {
	m.historyViewport = viewport.New(m.width, m.historyHeight())
}

func (m *Model) resizeHistoryViewport() {
	m.historyViewport.Width = m.width
	m.historyViewport.Height = m.historyHeight()
}

func (m *Model) historyHeight() int {
	h := m.height - historyChromeLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) updateHistoryViewport() {
	if !m.ready {
		return
	}
	m.historyViewport.SetContent(m.historyContent())
}

// historyContent lists pushups and weights newest first and rides as stored.
func (m Model) historyContent() string {
	styles := m.theme.Styles()
	s := m.snapshot
	var b strings.Builder

	section := func(kind, title string, n int) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.KindStyle(kind).Render(fmt.Sprintf("%s (%d)", title, n)))
		b.WriteString("\n")
		if n == 0 {
			b.WriteString(styles.FaintText.Render("  none"))
			b.WriteString("\n")
		}
	}
	row := func(date, text string) {
		b.WriteString("  ")
		b.WriteString(styles.MutedText.Render(padRight(journal.FormatDate(date), 8)))
		b.WriteString(text)
		b.WriteString("\n")
	}

	section(kindPushups, "Pushups", len(s.Pushups))
	for i := len(s.Pushups) - 1; i >= 0; i-- {
		row(s.Pushups[i].Date, fmt.Sprintf("%d", s.Pushups[i].Count))
	}

	section(kindWeight, "Weights", len(s.Weights))
	for i := len(s.Weights) - 1; i >= 0; i-- {
		row(s.Weights[i].Date, num(s.Weights[i].Weight)+" lb")
	}

	section(kindRide, "Rides", len(s.Rides))
	for _, r := range s.Rides {
		row(r.Date, fmt.Sprintf("%s  %s min · %s kJ", r.Title, num(r.Minutes), num(r.Output)))
	}

	section(kindMeal, "Meals", len(s.Meals))
	for _, meal := range s.Meals {
		row(meal.Date, meal.Name+"  "+macroLine(meal.Calories, meal.Protein, meal.Carbs, meal.Fats))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderHistory() string {
	return m.historyViewport.View()
}
