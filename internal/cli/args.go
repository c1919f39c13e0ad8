package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// RequireSource validates that exactly one <source> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireSource(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <source>

Usage: %s

Example:
  %s ./src/main.js -o ./dist/main.user.js`, monkeyscript.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", monkeyscript.ErrUsage, len(args))
	}
	return nil
}

// RequireScript validates that exactly one <script> argument is provided.
func RequireScript(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <script>

Usage: %s

Example:
  %s ./dist/main.user.js`, monkeyscript.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", monkeyscript.ErrUsage, len(args))
	}
	return nil
}

// OptionalDirectory accepts zero or one directory argument.
func OptionalDirectory(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts at most 1 arg(s), received %d", monkeyscript.ErrUsage, len(args))
	}
	return nil
}

// NoArgs rejects positional arguments.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: unexpected argument %q for %s", monkeyscript.ErrUsage, args[0], cmd.CommandPath())
	}
	return nil
}
