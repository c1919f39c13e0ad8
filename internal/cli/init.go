package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/monkeyscript/internal/config"
	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/internal/pipeline"
	"github.com/vvka-141/monkeyscript/internal/tui"
	"github.com/vvka-141/monkeyscript/internal/tui/wizards"
	"github.com/vvka-141/monkeyscript/internal/ui"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Create a starter monkeyscript.json",
	Long: `Create a starter configuration in the target directory (default ".").

The init command writes:
- monkeyscript.json with @name, @namespace, @version, @match and @grant
- .monkeyscript.yaml with build defaults, unless it already exists

Without --name and on a terminal, a short form asks for the values.
When --namespace is omitted a stable "urn:uuid:" namespace is derived from
the name. An existing monkeyscript.json is only replaced after confirmation
or with --force.

Examples:
  monkeyscript init
  monkeyscript init ./my-script --name "My Script" --match "https://example.com/*"
  monkeyscript init . --name "My Script" --force`,
	Args: OptionalDirectory,
	RunE: runInit,
}

// DefaultMatch is written when no match pattern is given.
const DefaultMatch = "*://*/*"

var initFlags struct {
	name        string
	namespace   string
	match       string
	author      string
	description string
	force       bool
}

// Seams for tests.
var (
	isInteractive = tui.IsInteractive
	runWizard     = wizards.RunInitWizard
	newApprover   = func(force, verbose bool) monkeyscript.Approver {
		if force {
			return ui.NewForcedApprover(verbose)
		}
		return ui.NewInteractiveApprover(verbose)
	}
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFlags.name, "name", "", "Script name (@name)")
	initCmd.Flags().StringVar(&initFlags.namespace, "namespace", "", "Script namespace (@namespace); derived from the name when empty")
	initCmd.Flags().StringVar(&initFlags.match, "match", "", fmt.Sprintf("Page pattern (@match, default %q)", DefaultMatch))
	initCmd.Flags().StringVar(&initFlags.author, "author", "", "Script author (@author)")
	initCmd.Flags().StringVar(&initFlags.description, "description", "", "Script description (@description)")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite an existing monkeyscript.json without asking")
}

// starterConfig is the monkeyscript.json written by init, in header order.
type starterConfig struct {
	Name        string   `json:"name"`
	Namespace   string   `json:"namespace"`
	Version     string   `json:"version"`
	Description string   `json:"description,omitempty"`
	Author      string   `json:"author,omitempty"`
	Match       []string `json:"match"`
	Grant       []string `json:"grant"`
}

func (c starterConfig) metadata() (monkeyscript.Metadata, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var meta monkeyscript.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) == 1 {
		targetDir = args[0]
	}
	verbose := getVerboseFlag(cmd)

	answers := wizards.InitAnswers{
		Name:        initFlags.name,
		Namespace:   initFlags.namespace,
		Match:       initFlags.match,
		Author:      initFlags.author,
		Description: initFlags.description,
	}

	if answers.Name == "" {
		if !isInteractive() {
			return fmt.Errorf("%w: --name is required when not running interactively", monkeyscript.ErrUsage)
		}
		if answers.Match == "" {
			answers.Match = DefaultMatch
		}
		result, err := runWizard(answers)
		if err != nil {
			return err
		}
		if result.Cancelled {
			return fmt.Errorf("init cancelled: %w", monkeyscript.ErrApprovalDenied)
		}
		answers = result.Answers
	}
	answers = answers.Complete()
	if answers.Match == "" {
		answers.Match = DefaultMatch
	}

	starter := starterConfig{
		Name:        answers.Name,
		Namespace:   answers.Namespace,
		Version:     "0.1.0",
		Description: answers.Description,
		Author:      answers.Author,
		Match:       []string{answers.Match},
		Grant:       []string{"none"},
	}

	meta, err := starter.metadata()
	if err != nil {
		return fmt.Errorf("failed to build starter configuration: %w", err)
	}
	result, err := metadata.NewCompiler(meta, nil).Compile()
	if err != nil {
		return err
	}

	fsys := filesystem.NewOSFileSystem()
	configPath := filepath.Join(targetDir, DefaultConfigFile)

	if _, err := fsys.Stat(configPath); err == nil {
		approved, err := newApprover(initFlags.force, verbose).RequestApproval(context.Background(), configPath)
		if err != nil {
			return err
		}
		if !approved {
			return fmt.Errorf("%s left unchanged: %w", configPath, monkeyscript.ErrApprovalDenied)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to access %s: %w", configPath, err)
	}

	data, err := json.MarshalIndent(starter, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := fsys.WriteFile(configPath, append(data, '\n')); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", monkeyscript.ErrOutputFailed, configPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.Success("Created "+configPath))

	projectPath := filepath.Join(targetDir, config.ProjectFileName)
	if _, err := fsys.Stat(projectPath); errors.Is(err, fs.ErrNotExist) {
		project := config.ProjectConfig{
			Config:  DefaultConfigFile,
			Output:  DefaultBuildOutput,
			Pattern: pipeline.DefaultPattern,
		}
		data, err := yaml.Marshal(&project)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", config.ProjectFileName, err)
		}
		if err := fsys.WriteFile(projectPath, data); err != nil {
			return fmt.Errorf("%w: failed to write %s: %v", monkeyscript.ErrOutputFailed, projectPath, err)
		}
		fmt.Fprintln(out, tui.Success("Created "+projectPath))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.TitleStyle.Render("Header preview"))
	fmt.Fprint(out, result.Header)
	return nil
}
