// Package main provides the CLI entry point for datasheet-go.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/datasheet-go/pkg/datasheet"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/compose"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
)

const defaultConfigPath = "config/config_source.json"

var (
	outputDir string
	engine    string
	onMissing string
	jobs      []string
	texOnly   bool
	noVerify  bool
	verbose   bool
	logJSON   bool
	pretty    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datasheet [config.json]",
		Short: "Generate product data sheets from a specification spreadsheet",
		Long: `datasheet-go locates category, parameter and product labels in a
worksheet, assembles one table per category for every product and renders
the result as PDF data sheets, one document per configured job.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&logJSON, "log-json", false, "Log as JSON")
	flags.StringSliceVar(&jobs, "job", nil, "Only run the named jobs (pdfName); repeatable")

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory (default: config outputDir)")
	rootCmd.Flags().StringVar(&engine, "engine", "", "Rendering engine: latex or pdf (default: config engine)")
	rootCmd.Flags().StringVar(&onMissing, "on-missing", "", "Missing product value policy: skip or abort")
	rootCmd.Flags().BoolVar(&texOnly, "tex-only", false, "Write LaTeX sources without compiling them")
	rootCmd.Flags().BoolVar(&noVerify, "no-verify", false, "Do not validate produced PDFs")

	locateCmd := &cobra.Command{
		Use:   "locate [config.json]",
		Short: "Print the anchors and category ranges found for each job",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLocate,
	}
	locateCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(locateCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if logJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func loadConfig(args []string) (*config.Config, error) {
	path := defaultConfigPath
	if len(args) > 0 {
		path = args[0]
	}
	return config.Load(path)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if onMissing != "" {
		cfg.OnMissingValue = onMissing
	}
	if engine != "" {
		cfg.Engine = engine
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := datasheet.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Jobs = jobs
	opts.TeXOnly = texOnly
	opts.Logger = newLogger(cmd.ErrOrStderr())
	if noVerify {
		v := false
		opts.Verify = &v
	}

	results, err := datasheet.Generate(cmd.Context(), cfg, opts)
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		out := res.PDFPath
		if out == "" {
			out = res.TeXPath
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d products -> %s\n", res.Job, res.Products, out)
	}
	return err
}

type locateReport struct {
	Job     string           `json:"job"`
	Sheet   string           `json:"sheet"`
	Rows    int              `json:"rows"`
	Cols    int              `json:"cols"`
	Anchors *compose.Anchors `json:"anchors,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	opts := datasheet.Options{Jobs: jobs}

	var reports []locateReport
	for _, job := range cfg.PDFFiles {
		if !opts.ShouldRun(job.PDFName) {
			continue
		}
		rep := locateReport{Job: job.PDFName, Sheet: job.Sheet()}
		g, err := parser.LoadGrid(job.Source(), job.Sheet())
		if err != nil {
			rep.Error = err.Error()
			reports = append(reports, rep)
			continue
		}
		rep.Rows, rep.Cols = g.Rows(), g.Cols()
		anchors, err := compose.Discover(g, job)
		if err != nil {
			rep.Error = err.Error()
		}
		rep.Anchors = anchors
		reports = append(reports, rep)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(reports)
}
