// Package datasheet generates product data sheet PDFs from a master
// specification spreadsheet.
package datasheet

import (
	"context"
	"log/slog"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/compose"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/output"
)

// Compiler turns a LaTeX source into a PDF and returns the PDF path.
type Compiler interface {
	Compile(ctx context.Context, texPath, outDir string) (string, error)
}

// Options configures generation.
type Options struct {
	// OutputDir receives the .tex and .pdf files.
	OutputDir string
	// Engine is config.EngineLaTeX or config.EnginePDF.
	Engine string
	// Policy decides what a missing product value does to a job.
	Policy compose.Policy
	// TeXOnly writes the LaTeX source without compiling it (latex engine only).
	TeXOnly bool
	// Jobs restricts generation to the named jobs. Empty means all.
	Jobs []string
	// Compiler compiles LaTeX sources. Defaults to latexmk.
	Compiler Compiler
	// Verify specifies whether produced PDFs are validated.
	// If nil, defaults to true unless TeXOnly is set.
	Verify *bool
	// Logger receives progress and skipped-product warnings.
	Logger *slog.Logger
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		OutputDir: config.DefaultOutputDir,
		Engine:    config.EngineLaTeX,
		Policy:    compose.SkipProduct,
	}
}

// OptionsFromConfig derives options from the configuration file.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()
	policy, err := compose.ParsePolicy(cfg.OnMissingValue)
	if err != nil {
		return opts, err
	}
	opts.Policy = policy
	if cfg.OutputDir != "" {
		opts.OutputDir = cfg.OutputDir
	}
	if cfg.Engine != "" {
		opts.Engine = cfg.Engine
	}
	return opts, nil
}

// ShouldVerify returns whether produced PDFs are validated.
func (o Options) ShouldVerify() bool {
	if o.Verify != nil {
		return *o.Verify
	}
	return !o.TeXOnly
}

// ShouldRun returns whether the job named name is selected.
func (o Options) ShouldRun(name string) bool {
	if len(o.Jobs) == 0 {
		return true
	}
	for _, j := range o.Jobs {
		if j == name {
			return true
		}
	}
	return false
}

func (o Options) compiler() Compiler {
	if o.Compiler != nil {
		return o.Compiler
	}
	return output.Latexmk{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
