package metadata

import "fmt"

// Warning is a non-fatal problem found while compiling.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	if w.Field == "" {
		return w.Message
	}
	return w.Field + ": " + w.Message
}

// Diagnostics collects warnings for one compilation.
// The zero value is ready to use.
type Diagnostics struct {
	warnings []Warning
}

// Warn records a warning for field.
func (d *Diagnostics) Warn(field, format string, args ...interface{}) {
	d.warnings = append(d.warnings, Warning{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns the recorded warnings in the order they were raised.
func (d *Diagnostics) Warnings() []Warning {
	if len(d.warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(d.warnings))
	copy(out, d.warnings)
	return out
}
