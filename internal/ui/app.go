package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/five82/fitjourney/internal/journal"
	"github.com/five82/fitjourney/internal/prefs"
	"github.com/five82/fitjourney/internal/state"
	"github.com/five82/fitjourney/internal/stats"
)

// View represents the current active view.
type View int

const (
	ViewToday View = iota
	ViewFood
	ViewHistory
)

var viewOrder = []View{ViewToday, ViewFood, ViewHistory}

func (v View) String() string {
	switch v {
	case ViewFood:
		return "Food"
	case ViewHistory:
		return "History"
	default:
		return "Today"
	}
}

// Options configures the UI.
type Options struct {
	Context      context.Context
	Store        *state.Store
	ThemeName    string
	PrefsPath    string
	QuickPushups []int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	prefsPath string
	quick     []int
	keys      keyMap

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot journal.State
	summary  stats.Summary

	// Food state
	mealCursor int

	// History state
	historyViewport viewport.Model

	// Overlays
	showHelp bool
	modal    Modal

	// Feedback for the last successful action
	status string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	quick := opts.QuickPushups
	if len(quick) == 0 {
		quick = prefs.Default().QuickPushups
	}

	m := Model{
		store:       opts.Store,
		prefsPath:   opts.PrefsPath,
		quick:       quick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewToday,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(DayRolloverInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initHistoryViewport()
		}
		m.ready = true
		m.resizeHistoryViewport()
		m.updateHistoryViewport()
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd(DayRolloverInterval)

	case weightSubmitMsg:
		m.afterMutation(m.store.AddWeight(msg.input),
			"Logged weight "+strings.TrimSpace(msg.input.Weight))
		return m, nil

	case pushupSubmitMsg:
		m.afterMutation(m.store.AddPushups(msg.input),
			"Logged "+strings.TrimSpace(msg.input.Count)+" pushups")
		return m, nil

	case rideSubmitMsg:
		m.afterMutation(m.store.AddRide(msg.input),
			"Logged ride "+strings.TrimSpace(msg.input.Title))
		return m, nil

	case mealSubmitMsg:
		m.afterMutation(m.store.AddMeal(msg.input),
			"Logged "+strings.TrimSpace(msg.input.Name))
		return m, nil

	case clearAnswerMsg:
		cleared := m.store.ClearAll(func(string) bool { return msg.yes })
		m.afterMutation(cleared, "Cleared all data")
		return m, nil
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd, done := m.modal.Update(msg, m.keys)
	if !done {
		m.modal = next
		return m, cmd
	}
	m.modal = nil
	if r, ok := next.(resulter); ok {
		if result := r.Result(); result != nil {
			return m.Update(result)
		}
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveTheme()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleView(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleView(-1)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewToday
		return m, nil

	case key.Matches(msg, m.keys.LoadDemo):
		m.afterMutation(m.store.LoadDemo(), "Loaded demo data")
		return m, nil

	case key.Matches(msg, m.keys.ClearAll):
		m.modal = newConfirmModal(state.ClearPrompt, func(yes bool) tea.Msg {
			return clearAnswerMsg{yes: yes}
		})
		return m, nil
	}

	switch m.currentView {
	case ViewToday:
		return m.handleTodayKey(msg)
	case ViewFood:
		return m.handleFoodKey(msg)
	case ViewHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m *Model) cycleView(delta int) {
	for i, v := range viewOrder {
		if v == m.currentView {
			m.currentView = viewOrder[(i+delta+len(viewOrder))%len(viewOrder)]
			break
		}
	}
	if m.currentView == ViewHistory {
		m.historyViewport.GotoTop()
	}
}

func (m Model) handleTodayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.AddWeight):
		m.modal = newFormModal("Log weight", []string{"Weight"}, func(v []string) tea.Msg {
			return weightSubmitMsg{input: journal.WeightInput{Weight: v[0]}}
		})
	case key.Matches(msg, m.keys.AddPushups):
		m.modal = newFormModal("Log pushups", []string{"Count"}, func(v []string) tea.Msg {
			return pushupSubmitMsg{input: journal.PushupInput{Count: v[0]}}
		})
	case key.Matches(msg, m.keys.AddRide):
		m.modal = newFormModal("Log ride", []string{"Title", "Minutes", "Output (kJ)", "Date"}, func(v []string) tea.Msg {
			return rideSubmitMsg{input: journal.RideInput{Title: v[0], Minutes: v[1], Output: v[2], Date: v[3]}}
		})
	case key.Matches(msg, m.keys.UndoPushup):
		m.afterMutation(m.store.UndoLastPushups(), "Removed last pushup set")
	case key.Matches(msg, m.keys.Quick):
		idx := digit(msg) - 1
		if idx >= 0 && idx < len(m.quick) {
			n := m.quick[idx]
			m.afterMutation(m.store.AddPushupCount(n), fmt.Sprintf("Logged %d pushups", n))
		}
	}
	return m, nil
}

func (m Model) handleFoodKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	meals := m.summary.TodaysMeals
	switch {
	case key.Matches(msg, m.keys.AddMeal):
		m.modal = newFormModal("Custom meal", []string{"Name", "Calories", "Protein (g)", "Carbs (g)", "Fats (g)"}, func(v []string) tea.Msg {
			return mealSubmitMsg{input: journal.MealInput{Name: v[0], Calories: v[1], Protein: v[2], Carbs: v[3], Fats: v[4]}}
		})
	case key.Matches(msg, m.keys.Quick):
		idx := digit(msg) - 1
		if idx >= 0 && idx < len(journal.Presets) {
			p := journal.Presets[idx]
			m.afterMutation(m.store.QuickAddMeal(p), "Logged "+p.Name)
			m.mealCursor = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.mealCursor < len(meals)-1 {
			m.mealCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.mealCursor > 0 {
			m.mealCursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.mealCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		if len(meals) > 0 {
			m.mealCursor = len(meals) - 1
		}
	case key.Matches(msg, m.keys.RemoveMeal):
		if m.mealCursor < len(meals) {
			meal := meals[m.mealCursor]
			m.afterMutation(m.store.RemoveMeal(meal.ID), "Removed "+meal.Name)
		}
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Top):
		m.historyViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.historyViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.historyViewport, cmd = m.historyViewport.Update(msg)
	return m, cmd
}

// afterMutation refreshes derived state. A rejected mutation is a silent
// no-op: the status line keeps whatever it showed before.
func (m *Model) afterMutation(ok bool, success string) {
	if ok {
		m.status = success
	}
	m.refresh()
}

// refresh pulls a fresh snapshot and re-derives everything shown.
func (m *Model) refresh() {
	if m.store == nil {
		m.snapshot = journal.Empty()
		m.summary = stats.Compute(m.snapshot, journal.Today(time.Now()))
		return
	}
	m.snapshot = m.store.Snapshot()
	m.summary = stats.Compute(m.snapshot, m.store.Today())
	if m.mealCursor >= len(m.summary.TodaysMeals) {
		m.mealCursor = len(m.summary.TodaysMeals) - 1
	}
	if m.mealCursor < 0 {
		m.mealCursor = 0
	}
	m.updateHistoryViewport()
}

func (m *Model) saveTheme() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, QuickPushups: m.quick}); err != nil {
		log.WithError(err).Warn("save theme preference")
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewFood:
		return m.renderFood()
	case ViewHistory:
		return m.renderHistory()
	default:
		return m.renderToday()
	}
}

func digit(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '0')
}

// Messages

type tickMsg time.Time

type weightSubmitMsg struct{ input journal.WeightInput }

type pushupSubmitMsg struct{ input journal.PushupInput }

type rideSubmitMsg struct{ input journal.RideInput }

type mealSubmitMsg struct{ input journal.MealInput }

type clearAnswerMsg struct{ yes bool }

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
