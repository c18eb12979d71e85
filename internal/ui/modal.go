package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// resulter is implemented by modals that produce a message once closed.
// A nil result means the modal was dismissed.
type resulter interface {
	Result() tea.Msg
}

type formField struct {
	label string
	input textinput.Model
}

// formModal collects raw text for one entry. Enter on the last field submits.
type formModal struct {
	title     string
	fields    []formField
	focus     int
	submitted bool
	build     func(values []string) tea.Msg
}

func newFormModal(title string, labels []string, build func(values []string) tea.Msg) *formModal {
	f := &formModal{title: title, build: build}
	for _, label := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = label
		in.CharLimit = 64
		in.Width = FormWidth - 18
		f.fields = append(f.fields, formField{label: label, input: in})
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *formModal) values() []string {
	out := make([]string, len(f.fields))
	for i, field := range f.fields {
		out[i] = field.input.Value()
	}
	return out
}

func (f *formModal) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

func (f *formModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.Type == tea.KeyEsc:
			return f, nil, true
		case key.Matches(msg, keys.Confirm):
			if f.focus < len(f.fields)-1 {
				return f, f.move(1), false
			}
			f.submitted = true
			return f, nil, true
		case key.Matches(msg, keys.NextField):
			return f, f.move(1), false
		case key.Matches(msg, keys.PrevField):
			return f, f.move(-1), false
		}
	}
	if len(f.fields) == 0 {
		return f, nil, false
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd, false
}

func (f *formModal) Result() tea.Msg {
	if !f.submitted || f.build == nil {
		return nil
	}
	return f.build(f.values())
}

func (f *formModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(f.title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := padRight(field.label, 14)
		if i == f.focus {
			b.WriteString(styles.WarningText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(field.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter next/submit · tab move · esc cancel"))

	return placeModal(theme, width, height, b.String())
}

// confirmModal asks a yes/no question.
type confirmModal struct {
	prompt   string
	answered bool
	yes      bool
	onAnswer func(yes bool) tea.Msg
}

func newConfirmModal(prompt string, onAnswer func(yes bool) tea.Msg) *confirmModal {
	return &confirmModal{prompt: prompt, onAnswer: onAnswer}
}

func (c *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		c.answered, c.yes = true, true
		return c, nil, true
	case key.Matches(keyMsg, keys.No):
		c.answered, c.yes = true, false
		return c, nil, true
	}
	return c, nil, false
}

func (c *confirmModal) Result() tea.Msg {
	if !c.answered || c.onAnswer == nil {
		return nil
	}
	return c.onAnswer(c.yes)
}

func (c *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	content := styles.DangerText.Render(c.prompt) + "\n\n" +
		styles.AccentText.Render("y") + styles.MutedText.Render(" yes   ") +
		styles.AccentText.Render("n") + styles.MutedText.Render(" no")
	return placeModal(theme, width, height, content)
}

func placeModal(theme Theme, width, height int, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.BorderFocus)).
		Padding(1, 2).
		Width(FormWidth).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
