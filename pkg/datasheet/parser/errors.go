package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// ErrSheetNotFound indicates the configured worksheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrAnchorCountMismatch matches any *AnchorCountMismatchError.
var ErrAnchorCountMismatch = errors.New("anchor count mismatch")

// ErrMissingValue matches any *MissingValueError.
var ErrMissingValue = errors.New("missing value")

// AnchorCountMismatchError reports a label set whose matches in the grid
// differ from its size: a label is absent, or appears more than once.
type AnchorCountMismatchError struct {
	Kind     models.AnchorKind
	Labels   []string
	Expected int
	Found    []models.Coordinate
	// Missing lists labels with no match.
	Missing []string
	// Duplicated lists labels matched more than once.
	Duplicated []string
}

func (e *AnchorCountMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s anchors: expected %d matches, found %d", e.Kind, e.Expected, len(e.Found))
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing %q", e.Missing)
	}
	if len(e.Duplicated) > 0 {
		fmt.Fprintf(&b, "; duplicated %q", e.Duplicated)
	}
	return b.String()
}

func (e *AnchorCountMismatchError) Is(target error) bool { return target == ErrAnchorCountMismatch }

// MissingValueError reports an empty or out-of-grid cell where a value was required.
type MissingValueError struct {
	Coordinate models.Coordinate
	// What names the value being read, e.g. "title" or "product value".
	What string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing %s at %s", e.What, e.Coordinate)
}

func (e *MissingValueError) Is(target error) bool { return target == ErrMissingValue }
