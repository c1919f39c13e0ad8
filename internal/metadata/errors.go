package metadata

import (
	"errors"
	"fmt"

	"github.com/vvka-141/monkeyscript/pkg/monkeyscript"
)

// ErrNoHeader is returned by Parse when content has no UserScript block.
var ErrNoHeader = errors.New("no UserScript header found")

// FieldError reports a metadata field that violates its contract.
// Compilation stops at the first FieldError and no header is returned.
// It matches monkeyscript.ErrInvalidConfig.
type FieldError struct {
	Field   string // Metadata key (e.g., "include", "resource")
	Index   int    // Array element index, -1 for the field itself
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *FieldError) Error() string {
	field := e.Field
	if e.Index >= 0 {
		field = fmt.Sprintf("%s[%d]", e.Field, e.Index)
	}

	msg := fmt.Sprintf("invalid configuration [field: %s]: %s", field, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Is makes errors.Is(err, monkeyscript.ErrInvalidConfig) succeed.
func (e *FieldError) Is(target error) bool {
	return target == monkeyscript.ErrInvalidConfig
}
