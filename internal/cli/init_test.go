package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/monkeyscript/internal/config"
	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/internal/tui/wizards"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

type stubApprover struct {
	approve bool
	asked   []string
}

func (s *stubApprover) RequestApproval(_ context.Context, path string) (bool, error) {
	s.asked = append(s.asked, path)
	return s.approve, nil
}

// stubInitSeams replaces terminal interaction for one test.
func stubInitSeams(t *testing.T, interactive bool, wizard func(wizards.InitAnswers) (wizards.InitResult, error), approver monkeyscript.Approver) {
	t.Helper()
	origInteractive, origWizard, origApprover := isInteractive, runWizard, newApprover
	t.Cleanup(func() { isInteractive, runWizard, newApprover = origInteractive, origWizard, origApprover })

	isInteractive = func() bool { return interactive }
	if wizard != nil {
		runWizard = wizard
	}
	if approver != nil {
		newApprover = func(bool, bool) monkeyscript.Approver { return approver }
	}
}

func readStarter(t *testing.T, path string) starterConfig {
	t.Helper()
	var cfg starterConfig
	require.NoError(t, json.Unmarshal([]byte(readFile(t, path)), &cfg))
	return cfg
}

func TestInitCmd_Flags(t *testing.T) {
	dir := projectDir(t, nil)
	stubInitSeams(t, false, nil, nil)

	out, err := executeCommand(t, "init", "--name", "My Script", "--author", "Jane")
	require.NoError(t, err)

	cfg := readStarter(t, filepath.Join(dir, DefaultConfigFile))
	assert.Equal(t, "My Script", cfg.Name)
	assert.Equal(t, metadata.GenerateNamespace("My Script"), cfg.Namespace)
	assert.Equal(t, []string{DefaultMatch}, cfg.Match)
	assert.Equal(t, []string{"none"}, cfg.Grant)
	assert.Equal(t, "Jane", cfg.Author)

	project, err := config.LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfigFile, project.Config)
	assert.Equal(t, DefaultBuildOutput, project.Output)

	assert.Contains(t, out, "// ==UserScript==")
	assert.Contains(t, out, "// @name       My Script")

	header, err := executeCommand(t, "header")
	require.NoError(t, err)
	assert.Contains(t, header, "// @namespace\t\turn:uuid:")
}

func TestInitCmd_TargetDirectory(t *testing.T) {
	dir := projectDir(t, nil)
	stubInitSeams(t, false, nil, nil)

	_, err := executeCommand(t, "init", "nested/script", "--name", "n", "--namespace", "https://example.com", "--match", "https://example.com/*")
	require.NoError(t, err)

	cfg := readStarter(t, filepath.Join(dir, "nested", "script", DefaultConfigFile))
	assert.Equal(t, "https://example.com", cfg.Namespace)
	assert.Equal(t, []string{"https://example.com/*"}, cfg.Match)
}

func TestInitCmd_NonInteractiveRequiresName(t *testing.T) {
	projectDir(t, nil)
	stubInitSeams(t, false, nil, nil)

	_, err := executeCommand(t, "init")
	require.Error(t, err)
	assert.Equal(t, monkeyscript.ExitUsageError, monkeyscript.ExitCodeForError(err))
}

func TestInitCmd_Wizard(t *testing.T) {
	dir := projectDir(t, nil)

	var got wizards.InitAnswers
	stubInitSeams(t, true, func(defaults wizards.InitAnswers) (wizards.InitResult, error) {
		got = defaults
		return wizards.InitResult{Answers: wizards.InitAnswers{Name: "From Wizard", Namespace: "ns", Match: "https://w/*"}}, nil
	}, nil)

	_, err := executeCommand(t, "init")
	require.NoError(t, err)
	assert.Equal(t, DefaultMatch, got.Match)

	cfg := readStarter(t, filepath.Join(dir, DefaultConfigFile))
	assert.Equal(t, "From Wizard", cfg.Name)
	assert.Equal(t, "ns", cfg.Namespace)
}

func TestInitCmd_WizardCancelled(t *testing.T) {
	dir := projectDir(t, nil)
	stubInitSeams(t, true, func(wizards.InitAnswers) (wizards.InitResult, error) {
		return wizards.InitResult{Cancelled: true}, nil
	}, nil)

	_, err := executeCommand(t, "init")
	require.Error(t, err)
	assert.True(t, errors.Is(err, monkeyscript.ErrApprovalDenied))

	_, statErr := os.Stat(filepath.Join(dir, DefaultConfigFile))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestInitCmd_ExistingConfig(t *testing.T) {
	const existing = `{"name": "keep me"}`

	t.Run("denied", func(t *testing.T) {
		dir := projectDir(t, map[string]string{DefaultConfigFile: existing})
		approver := &stubApprover{approve: false}
		stubInitSeams(t, false, nil, approver)

		_, err := executeCommand(t, "init", "--name", "new")
		require.Error(t, err)
		assert.Equal(t, monkeyscript.ExitApprovalDenied, monkeyscript.ExitCodeForError(err))
		assert.Len(t, approver.asked, 1)
		assert.Equal(t, existing, readFile(t, filepath.Join(dir, DefaultConfigFile)))
	})

	t.Run("approved", func(t *testing.T) {
		dir := projectDir(t, map[string]string{
			DefaultConfigFile:      existing,
			config.ProjectFileName: "config: other.json\n",
		})
		stubInitSeams(t, false, nil, &stubApprover{approve: true})

		_, err := executeCommand(t, "init", "--name", "new")
		require.NoError(t, err)
		assert.Equal(t, "new", readStarter(t, filepath.Join(dir, DefaultConfigFile)).Name)
		assert.Equal(t, "config: other.json\n", readFile(t, filepath.Join(dir, config.ProjectFileName)))
	})

	t.Run("forced", func(t *testing.T) {
		dir := projectDir(t, map[string]string{DefaultConfigFile: existing})
		stubInitSeams(t, false, nil, nil)

		_, err := executeCommand(t, "init", "--name", "new", "--force")
		require.NoError(t, err)
		assert.Equal(t, "new", readStarter(t, filepath.Join(dir, DefaultConfigFile)).Name)
	})
}
