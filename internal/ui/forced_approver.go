package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// ForcedApprover implements the Approver interface for --force: it approves
// every overwrite without asking and leaves a note on the output.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) monkeyscript.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval approves unless ctx is already done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(a.output, "Overwriting %s (--force)\n", path)
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ monkeyscript.Approver = (*ForcedApprover)(nil)
