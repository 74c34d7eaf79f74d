package datasheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/compose"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/output"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
)

// JobResult is the outcome of one job.
type JobResult struct {
	Job string
	// TeXPath is the written LaTeX source (latex engine only).
	TeXPath string
	// PDFPath is the produced PDF, empty in TeX-only mode.
	PDFPath string
	// Products is the number of product pages.
	Products int
	// Pages is the page count reported by verification, 0 if not verified.
	Pages int
	Err   error
}

// Generate runs every selected job of cfg in order. A failing job does not
// stop the batch; the returned error joins every job error.
func Generate(ctx context.Context, cfg *config.Config, opts Options) ([]JobResult, error) {
	var results []JobResult
	var errs []error
	for _, job := range cfg.PDFFiles {
		if !opts.ShouldRun(job.PDFName) {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res := RunJob(ctx, cfg.Style(), job, opts)
		if res.Err != nil {
			opts.logger().Error("job failed", "job", job.PDFName, "error", res.Err)
			errs = append(errs, res.Err)
		}
		results = append(results, res)
	}
	if len(results) == 0 && len(errs) == 0 {
		return nil, ErrNoJobs
	}
	return results, errors.Join(errs...)
}

// RunJob reads the job's sheet once, composes its document and renders it.
func RunJob(ctx context.Context, style config.Style, job config.PDFFile, opts Options) JobResult {
	log := opts.logger().With("job", job.PDFName)
	res := JobResult{Job: job.PDFName}
	fail := func(stage string, err error) JobResult {
		res.Err = NewJobError(job.PDFName, stage, err)
		return res
	}

	grid, err := parser.LoadGrid(job.Source(), job.Sheet())
	if err != nil {
		return fail(StageLoad, err)
	}
	log.Debug("grid loaded", "source", job.Source(), "rows", grid.Rows(), "cols", grid.Cols())

	doc, err := compose.New(style, opts.Policy, log).Compose(grid, job)
	if err != nil {
		return fail(StageCompose, err)
	}
	res.Products = len(doc.Pages)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fail(StageRender, err)
	}

	switch opts.Engine {
	case config.EnginePDF:
		res.PDFPath = filepath.Join(opts.OutputDir, job.PDFName+".pdf")
		if err := writeFile(res.PDFPath, output.PDF{Style: style}.Render, doc); err != nil {
			return fail(StageRender, err)
		}
	case config.EngineLaTeX, "":
		res.TeXPath = filepath.Join(opts.OutputDir, job.PDFName+".tex")
		if err := writeFile(res.TeXPath, output.LaTeX{Style: style}.Render, doc); err != nil {
			return fail(StageRender, err)
		}
		log.Info("rendered", "tex", res.TeXPath)
		if opts.TeXOnly {
			return res
		}
		res.PDFPath, err = opts.compiler().Compile(ctx, res.TeXPath, opts.OutputDir)
		if err != nil {
			return fail(StageCompile, err)
		}
	default:
		return fail(StageRender, fmt.Errorf("unsupported engine %q", opts.Engine))
	}

	if opts.ShouldVerify() {
		res.Pages, err = output.Verify(res.PDFPath)
		if err != nil {
			return fail(StageVerify, err)
		}
	}
	log.Info("pdf written", "pdf", res.PDFPath, "products", res.Products, "pages", res.Pages)
	return res
}

type renderFunc func(w io.Writer, doc *models.Document) error

func writeFile(path string, render renderFunc, doc *models.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return render(f, doc)
}
