package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/internal/files/filesystem"
	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Print the compiled metadata header",
	Long: `Compile the configuration into a UserScript metadata header.

The header goes to stdout unless --output names a file. Warnings (for
example @updateURL without @version) go to stderr and do not fail the
command; a field that breaks its contract does.

Examples:
  # Header from ./monkeyscript.json or ./package.json
  monkeyscript header

  # Header from a YAML file, with labels padded to at least 12 columns
  monkeyscript header -c userscript.yaml --base-pad 12

  # Write the header to a file
  monkeyscript header -o dist/header.js`,
	Args: NoArgs,
	RunE: runHeader,
}

var headerOutput string

func init() {
	rootCmd.AddCommand(headerCmd)
	headerCmd.Flags().StringVarP(&headerOutput, "output", "o", "", "Write the header to this file instead of stdout")
}

func runHeader(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	result, err := s.compile()
	if err != nil {
		return err
	}

	if headerOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Header)
		return nil
	}

	if err := filesystem.NewOSFileSystem().WriteFile(headerOutput, []byte(result.Header)); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", monkeyscript.ErrOutputFailed, headerOutput, err)
	}
	s.logger.Verbose("Header written to %s", headerOutput)
	return nil
}
