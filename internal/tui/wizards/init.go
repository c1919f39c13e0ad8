package wizards

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/internal/tui/components"
)

// Field keys of the init form.
const (
	FieldName        = "name"
	FieldNamespace   = "namespace"
	FieldMatch       = "match"
	FieldAuthor      = "author"
	FieldDescription = "description"
)

// InitAnswers is what the init wizard collects for a starter configuration.
type InitAnswers struct {
	Name        string
	Namespace   string
	Match       string
	Author      string
	Description string
}

// Complete fills in a namespace derived from the name when none was given.
func (a InitAnswers) Complete() InitAnswers {
	if a.Namespace == "" && a.Name != "" {
		a.Namespace = metadata.GenerateNamespace(a.Name)
	}
	return a
}

// InitResult holds the result of the init wizard.
type InitResult struct {
	Cancelled bool
	Answers   InitAnswers
}

// InitWizard asks for the handful of metadata fields every script needs.
type InitWizard struct {
	form   components.Form
	result InitResult
	hint   lipgloss.Style
}

// NewInitWizard creates the wizard with defaults prefilled.
func NewInitWizard(defaults InitAnswers) InitWizard {
	form := components.NewForm("New userscript configuration",
		components.NewTextField(FieldName, "Script name", "My userscript").
			WithRequired(true).
			WithValue(defaults.Name),
		components.NewTextField(FieldNamespace, "Namespace", "derived from the name when empty").
			WithValue(defaults.Namespace),
		components.NewTextField(FieldMatch, "Match pattern", "https://example.com/*").
			WithRequired(true).
			WithValidator(validateMatch).
			WithValue(defaults.Match),
		components.NewTextField(FieldAuthor, "Author", "Jane Doe <jane@example.com>").
			WithValue(defaults.Author),
		components.NewTextField(FieldDescription, "Description", "").
			WithValue(defaults.Description),
	)
	return InitWizard{
		form: form,
		hint: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func validateMatch(v string) error {
	if strings.ContainsAny(strings.TrimSpace(v), " \t") {
		return fmt.Errorf("a match pattern cannot contain spaces")
	}
	return nil
}

// Init implements tea.Model.
func (w InitWizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model.
func (w InitWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.form.Update(msg)
	w.form = model.(components.Form)

	switch {
	case w.form.Cancelled():
		w.result = InitResult{Cancelled: true}
	case w.form.Submitted():
		values := w.form.Values()
		w.result = InitResult{Answers: InitAnswers{
			Name:        values[FieldName],
			Namespace:   values[FieldNamespace],
			Match:       values[FieldMatch],
			Author:      values[FieldAuthor],
			Description: values[FieldDescription],
		}.Complete()}
	}
	return w, cmd
}

// View implements tea.Model.
func (w InitWizard) View() string {
	if w.form.Submitted() || w.form.Cancelled() {
		return ""
	}
	return w.form.View() + "\n" + w.hint.Render("The configuration can be edited by hand afterwards.") + "\n"
}

// Result returns the wizard result.
func (w InitWizard) Result() InitResult {
	return w.result
}

// RunInitWizard runs the wizard on the terminal.
func RunInitWizard(defaults InitAnswers) (InitResult, error) {
	p := tea.NewProgram(NewInitWizard(defaults))

	model, err := p.Run()
	if err != nil {
		return InitResult{Cancelled: true}, fmt.Errorf("init wizard failed: %w", err)
	}
	return model.(InitWizard).Result(), nil
}
