package monkeyscript

import "context"

// Approver confirms overwriting an existing file.
//
// Implementations:
//   - ForcedApprover: Approves without asking (--force)
//   - InteractiveApprover: Asks on the terminal and expects "y" or "yes"
type Approver interface {
	// RequestApproval asks whether path may be overwritten.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred while asking
	RequestApproval(ctx context.Context, path string) (bool, error)
}
