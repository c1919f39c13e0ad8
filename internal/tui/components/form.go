package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Form collects several text fields. Enter moves to the next field and
// submits on the last one once every field validates.
type Form struct {
	title     string
	fields    []TextField
	focusIdx  int
	submitted bool
	cancelled bool
	keyMap    formKeyMap
	styles    formStyles
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

type formStyles struct {
	Title lipgloss.Style
	Help  lipgloss.Style
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func defaultFormStyles() formStyles {
	return formStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1),
	}
}

// NewForm creates a form with the first field focused.
func NewForm(title string, fields ...TextField) Form {
	f := Form{
		title:  title,
		fields: fields,
		keyMap: defaultFormKeyMap(),
		styles: defaultFormStyles(),
	}
	if len(f.fields) > 0 {
		f.fields[0].Focus()
	}
	return f
}

// Init implements tea.Model.
func (f Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keyMap.Cancel):
			f.cancelled = true
			return f, tea.Quit
		case key.Matches(msg, f.keyMap.Next):
			return f.nextField()
		case key.Matches(msg, f.keyMap.Prev):
			return f.prevField()
		case key.Matches(msg, f.keyMap.Submit):
			if f.focusIdx < len(f.fields)-1 {
				return f.nextField()
			}
			if f.validate() {
				f.submitted = true
				return f, tea.Quit
			}
			return f, nil
		}
	}

	if f.focusIdx < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) nextField() (tea.Model, tea.Cmd) {
	if f.focusIdx >= len(f.fields)-1 {
		return f, nil
	}
	if err := f.fields[f.focusIdx].Validate(); err != nil {
		return f, nil
	}
	f.fields[f.focusIdx].Blur()
	f.focusIdx++
	return f, f.fields[f.focusIdx].Focus()
}

func (f Form) prevField() (tea.Model, tea.Cmd) {
	if f.focusIdx == 0 {
		return f, nil
	}
	f.fields[f.focusIdx].Blur()
	f.focusIdx--
	return f, f.fields[f.focusIdx].Focus()
}

func (f *Form) validate() bool {
	valid := true
	for i := range f.fields {
		if err := f.fields[i].Validate(); err != nil {
			valid = false
		}
	}
	return valid
}

// View implements tea.Model.
func (f Form) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n\n")
		}
	}

	b.WriteString(f.styles.Help.Render("\ntab next • shift+tab prev • enter submit • esc cancel"))
	return b.String()
}

// Submitted returns true if the form was submitted.
func (f Form) Submitted() bool {
	return f.submitted
}

// Cancelled returns true if the form was cancelled.
func (f Form) Cancelled() bool {
	return f.cancelled
}

// Focused returns the index of the focused field.
func (f Form) Focused() int {
	return f.focusIdx
}

// Values returns the trimmed field values by key.
func (f Form) Values() map[string]string {
	result := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		result[field.key] = field.Value()
	}
	return result
}
