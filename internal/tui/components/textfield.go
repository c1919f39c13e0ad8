package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextField is a labeled text input field.
type TextField struct {
	key       string
	label     string
	input     textinput.Model
	focused   bool
	required  bool
	validator func(string) error
	err       error
	styles    textFieldStyles
}

type textFieldStyles struct {
	Label        lipgloss.Style
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
	Error        lipgloss.Style
	Required     lipgloss.Style
}

func defaultTextFieldStyles() textFieldStyles {
	return textFieldStyles{
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Input:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedInput: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Required:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewTextField creates a text field. key identifies the value in Form.Values.
func NewTextField(key, label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 48

	return TextField{
		key:    key,
		label:  label,
		input:  ti,
		styles: defaultTextFieldStyles(),
	}
}

// WithRequired marks the field as required.
func (t TextField) WithRequired(required bool) TextField {
	t.required = required
	return t
}

// WithValidator sets a validation function.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.validator = fn
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// IsFocused returns true if the field is focused.
func (t TextField) IsFocused() bool {
	return t.focused
}

// Update forwards msg to the input and revalidates.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	if t.validator != nil {
		t.err = t.validator(t.input.Value())
	}
	return t, cmd
}

// View renders the label, the input and any validation error.
func (t TextField) View() string {
	var b strings.Builder

	labelText := t.label
	if t.required {
		labelText += t.styles.Required.Render(" *")
	}
	b.WriteString(t.styles.Label.Render(labelText))
	b.WriteString("\n")

	inputStyle := t.styles.Input
	if t.focused {
		inputStyle = t.styles.FocusedInput
	}
	b.WriteString(inputStyle.Render(t.input.View()))

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(t.styles.Error.Render(t.err.Error()))
	}
	return b.String()
}

// Key returns the field key.
func (t TextField) Key() string {
	return t.key
}

// Value returns the current value with surrounding space removed.
func (t TextField) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// Error returns the current validation error.
func (t TextField) Error() error {
	return t.err
}

// Validate runs validation and returns any error.
func (t *TextField) Validate() error {
	if t.required && t.Value() == "" {
		t.err = ErrFieldRequired
		return t.err
	}
	if t.validator != nil {
		t.err = t.validator(t.input.Value())
		return t.err
	}
	t.err = nil
	return nil
}

// ErrFieldRequired is returned when a required field is empty.
var ErrFieldRequired = fieldError("this field is required")

type fieldError string

func (e fieldError) Error() string { return string(e) }
