// Package ui is the Bubble Tea front end for the fitness log.
//
// Model is the root tea.Model. It holds a *state.Store and re-derives a
// stats.Summary after every mutation, so the views only ever render the latest
// snapshot. Three views cycle with Tab:
//
//   - Today: weight trend, pushup totals with quick-add keys, recent rides
//   - Food: numbered preset meals, today's meals with a cursor, macro totals
//   - History: every entry in a scrollable viewport
//
// Entry forms and the clear-all prompt are modals. A closed modal hands its
// result back to Model.Update as a message, which is where the store is
// mutated.
//
// Themes are plain color tables turned into lipgloss styles; the chosen theme
// is written back to the preferences file when cycled with T.
package ui
