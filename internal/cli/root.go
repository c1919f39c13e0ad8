package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

var rootCmd = &cobra.Command{
	Use:   "monkeyscript",
	Short: "UserScript metadata header generator",
	Long: `monkeyscript turns a JSON or YAML configuration (or the "monkeyscript"
section of a package.json) into the "// ==UserScript==" metadata block
that userscript managers read, and prepends it to your built scripts.

Configuration lookup, first match wins:
  --config flag, $MONKEYSCRIPT_CONFIG, "config" in .monkeyscript.yaml,
  ./monkeyscript.json, ./package.json

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid metadata configuration
  11 - Configuration source missing, unreadable or not an object
  12 - Output could not be written
  13 - User denied overwrite approval`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Metadata configuration file (.json, .yaml or package.json)")
	rootCmd.PersistentFlags().Int("base-pad", -1, fmt.Sprintf("Minimum label width (default %d)", monkeyscript.DefaultBasePad))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", monkeyscript.ErrUsage, err)
	})
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
