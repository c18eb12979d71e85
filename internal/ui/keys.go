package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding
	LoadDemo   key.Binding
	ClearAll   key.Binding

	// Today view
	AddWeight  key.Binding
	AddPushups key.Binding
	UndoPushup key.Binding
	AddRide    key.Binding

	// Food view
	AddMeal    key.Binding
	RemoveMeal key.Binding

	// Digits: quick pushups on Today, presets on Food
	Quick key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Forms and prompts
	Confirm   key.Binding
	NextField key.Binding
	PrevField key.Binding
	Yes       key.Binding
	No        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to today"),
		),
		LoadDemo: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Load demo data"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear all data"),
		),

		AddWeight: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Log weight"),
		),
		AddPushups: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Log pushups"),
		),
		UndoPushup: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Undo last pushups"),
		),
		AddRide: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Log ride"),
		),

		AddMeal: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Custom meal"),
		),
		RemoveMeal: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove meal"),
		),

		Quick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Quick add"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "No"),
		),
	}
}

// FullHelp returns key bindings grouped the way the help overlay lists them.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Escape},
		{k.AddWeight, k.AddPushups, k.Quick, k.UndoPushup, k.AddRide},
		{k.AddMeal, k.RemoveMeal, k.Up, k.Down},
		{k.LoadDemo, k.ClearAll, k.CycleTheme, k.Help, k.Quit},
	}
}
