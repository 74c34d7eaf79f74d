package datasheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/compose"
)

// ErrNoJobs indicates that no configured job was selected.
var ErrNoJobs = errors.New("no job selected")

// Job stages outside composition.
const (
	StageLoad    = "load"
	StageCompose = "compose"
	StageRender  = "render"
	StageCompile = "compile"
	StageVerify  = "verify"
)

// JobError represents an error that failed one job.
type JobError struct {
	Job string
	// Product is the product being processed, if any.
	Product string
	Stage   string
	Err     error
}

func (e *JobError) Error() string {
	if e.Product != "" {
		return fmt.Sprintf("job %q (%s, product %q): %v", e.Job, e.Stage, e.Product, e.Err)
	}
	return fmt.Sprintf("job %q (%s): %v", e.Job, e.Stage, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// NewJobError creates a new JobError, lifting the product name out of
// composition errors.
func NewJobError(job, stage string, err error) *JobError {
	je := &JobError{Job: job, Stage: stage, Err: err}
	var ce *compose.Error
	if errors.As(err, &ce) {
		je.Product = ce.Product
	}
	return je
}
