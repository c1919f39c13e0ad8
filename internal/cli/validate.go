package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/internal/metadata"
	"github.com/vvka-141/monkeyscript/internal/tui"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration without writing anything",
	Long: `Validate the metadata configuration.

This command checks:
1. The configuration against the embedded JSON schema (types of every known field)
2. The compiler contracts (arrays, resources, hash fragments in @include)
3. Non-fatal problems such as @updateURL without @version

Unknown keys are allowed; they are ignored by the compiler.

Examples:
  monkeyscript validate
  monkeyscript validate -c package.json --json`,
	Args: NoArgs,
	RunE: runValidate,
}

var validateJSON bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
}

// validationReport is the --json output of validate.
type validationReport struct {
	Config       string   `json:"config"`
	Shape        string   `json:"shape"`
	Valid        bool     `json:"valid"`
	SchemaErrors []string `json:"schema_errors"`
	CompileError string   `json:"compile_error,omitempty"`
	Warnings     []string `json:"warnings"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	report := validationReport{
		Config:       s.configPath,
		Shape:        s.normalized.Shape.String(),
		SchemaErrors: []string{},
		Warnings:     []string{},
	}

	problems, err := metadata.ValidateSchema(s.normalized.Meta)
	if err != nil {
		return err
	}
	report.SchemaErrors = append(report.SchemaErrors, problems...)

	result, compileErr := s.compiler().Compile()
	if compileErr != nil {
		report.CompileError = compileErr.Error()
	} else {
		for _, w := range result.Warnings {
			report.Warnings = append(report.Warnings, w.String())
		}
	}
	report.Valid = compileErr == nil && len(problems) == 0

	out := cmd.OutOrStdout()
	if validateJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(jsonBytes))
	} else {
		fmt.Fprintf(out, "Configuration: %s (%s shape)\n", report.Config, report.Shape)
		for _, p := range report.SchemaErrors {
			fmt.Fprintln(out, tui.Failure("schema: "+p))
		}
		if report.CompileError != "" {
			fmt.Fprintln(out, tui.Failure(report.CompileError))
		}
		for _, w := range report.Warnings {
			fmt.Fprintln(out, tui.Warning(w))
		}
		if report.Valid {
			fmt.Fprintln(out, tui.Success("Configuration is valid"))
		}
	}

	if compileErr != nil {
		return compileErr
	}
	if !report.Valid {
		return fmt.Errorf("%w: %d schema violation(s)", monkeyscript.ErrInvalidConfig, len(problems))
	}
	return nil
}
