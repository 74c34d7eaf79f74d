package compose

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument indicates that no product produced a page.
var ErrEmptyDocument = errors.New("no product page produced")

// Stage names used in errors and logs.
const (
	StageLocate   = "locate"
	StageTitles   = "titles"
	StageContent  = "content"
	StageProduct  = "product"
	StageAssemble = "assemble"
)

// Error reports which stage, product and label a composition failure belongs to.
type Error struct {
	Stage string
	// Product is the product name, empty for job-level stages.
	Product string
	// Label is the anchor kind or category title involved.
	Label string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Stage
	if e.Product != "" {
		msg += fmt.Sprintf(" product %q", e.Product)
	}
	if e.Label != "" {
		msg += fmt.Sprintf(" [%s]", e.Label)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
