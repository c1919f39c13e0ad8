package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// InteractiveApprover implements the Approver interface for console-based
// confirmation. It asks before an existing file is replaced.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover on stdin/stderr.
func NewInteractiveApprover(verbose bool) monkeyscript.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval asks whether path may be overwritten. Only "y" or "yes"
// (any case) approves.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintf(a.output, "\nWARNING: %s already exists and will be replaced.\n", path)
	fmt.Fprint(a.output, "Overwrite? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintf(a.output, "✓ Overwriting %s\n", path)
			return true, nil
		default:
			fmt.Fprintf(a.output, "✗ Answer %q kept %s unchanged.\n", input, path)
			return false, nil
		}
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ monkeyscript.Approver = (*InteractiveApprover)(nil)
