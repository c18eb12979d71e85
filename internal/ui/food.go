package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fitjourney/internal/journal"
)

func (m Model) renderFood() string {
	styles := m.theme.Styles()

	var presets strings.Builder
	for i, p := range journal.Presets {
		if i > 0 {
			presets.WriteString("\n")
		}
		fmt.Fprintf(&presets, "%s %s %s",
			styles.AccentText.Render(fmt.Sprintf("%d", i+1)),
			padRight(truncate(p.Name, 26), 26),
			styles.FaintText.Render(macroLine(p.Calories, p.Protein, p.Carbs, p.Fats)))
	}

	var meals strings.Builder
	today := m.summary.TodaysMeals
	if len(today) == 0 {
		meals.WriteString(styles.FaintText.Render("Nothing logged today."))
	}
	for i, meal := range today {
		if i > 0 {
			meals.WriteString("\n")
		}
		line := padRight(truncate(meal.Name, 26), 26) + " " + macroLine(meal.Calories, meal.Protein, meal.Carbs, meal.Fats)
		if i == m.mealCursor {
			meals.WriteString(styles.Selected.Render("> " + line))
		} else {
			meals.WriteString("  " + line)
		}
	}

	t := m.summary.TodaysMealTotals
	meals.WriteString("\n\n")
	meals.WriteString(styles.InfoText.Render("Total  ") + macroLine(t.Calories, t.Protein, t.Carbs, t.Fats))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.panel(kindMeal, "Presets", presets.String()),
		m.panel(kindMeal, "Today's meals", meals.String()),
	)
}

func macroLine(calories, protein, carbs, fats float64) string {
	return fmt.Sprintf("%s kcal  P%s C%s F%s", num(calories), num(protein), num(carbs), num(fats))
}
