package wizards

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/monkeyscript/internal/metadata"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func send(t *testing.T, w InitWizard, keys ...string) InitWizard {
	t.Helper()
	var m tea.Model = w
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m.(InitWizard)
}

func TestInitWizard_Submit(t *testing.T) {
	w := NewInitWizard(InitAnswers{Match: "https://example.com/*"})

	w = send(t, w, "My Script", "enter", "enter", "enter", "Jane", "enter", "Does things", "enter")

	result := w.Result()
	require.False(t, result.Cancelled)
	assert.Equal(t, "My Script", result.Answers.Name)
	assert.Equal(t, "https://example.com/*", result.Answers.Match)
	assert.Equal(t, "Jane", result.Answers.Author)
	assert.Equal(t, "Does things", result.Answers.Description)
	assert.Equal(t, metadata.GenerateNamespace("My Script"), result.Answers.Namespace)
	assert.Empty(t, w.View())
}

func TestInitWizard_RequiredNameBlocksProgress(t *testing.T) {
	w := NewInitWizard(InitAnswers{})

	w = send(t, w, "tab")
	assert.Equal(t, 0, w.form.Focused())
	assert.Contains(t, w.View(), "this field is required")

	w = send(t, w, "x", "tab")
	assert.Equal(t, 1, w.form.Focused())

	w = send(t, w, "shift+tab")
	assert.Equal(t, 0, w.form.Focused())
}

func TestInitWizard_KeepsExplicitNamespace(t *testing.T) {
	w := NewInitWizard(InitAnswers{Name: "n", Namespace: "https://example.com", Match: "*://*/*"})

	w = send(t, w, "enter", "enter", "enter", "enter", "enter")
	assert.Equal(t, "https://example.com", w.Result().Answers.Namespace)
}

func TestInitWizard_InvalidMatchBlocksSubmit(t *testing.T) {
	w := NewInitWizard(InitAnswers{Name: "n", Match: "has space"})

	w = send(t, w, "enter", "enter", "enter", "enter", "enter")
	assert.False(t, w.form.Submitted())
	assert.True(t, strings.Contains(w.View(), "cannot contain spaces"))
}

func TestInitWizard_Cancel(t *testing.T) {
	w := send(t, NewInitWizard(InitAnswers{}), "esc")
	assert.True(t, w.Result().Cancelled)
}

func TestInitAnswers_Complete(t *testing.T) {
	assert.Equal(t, "", InitAnswers{}.Complete().Namespace)
	assert.Equal(t, metadata.GenerateNamespace("a"), InitAnswers{Name: "a"}.Complete().Namespace)
}
