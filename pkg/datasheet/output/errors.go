// Package output turns a composed Document into LaTeX markup and PDF files.
package output

import (
	"errors"
	"fmt"
)

// ErrExternalTool matches any *ExternalToolError.
var ErrExternalTool = errors.New("external tool failure")

// ExternalToolError reports a failed render or compile step, kept apart from
// data errors so callers can tell a broken toolchain from a broken sheet.
type ExternalToolError struct {
	Tool string
	// Output is the tail of the tool's combined output, if any.
	Output string
	Err    error
}

func (e *ExternalToolError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: %v\n%s", e.Tool, e.Err, e.Output)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

func (e *ExternalToolError) Is(target error) bool { return target == ErrExternalTool }
