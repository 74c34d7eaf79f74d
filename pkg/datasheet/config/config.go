// Package config loads the data sheet configuration file and exposes the
// immutable style values used by the composer and the renderers.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout and boilerplate defaults.
const (
	// DefaultMaxSingleColumnRows is the largest row count laid out in one column.
	DefaultMaxSingleColumnRows = 13
	// DefaultLongCellThreshold is the first-cell length (in characters) above
	// which a row is considered tall in a two-column layout.
	DefaultLongCellThreshold = 26
	// DefaultTargetLabel is the header label of the product-value column.
	DefaultTargetLabel = "Target Value"
	// DefaultBannerText is printed above the product name on every page.
	DefaultBannerText = "Preliminary Data Sheet"
	// DefaultDisclaimer is the legal footer printed on every product page.
	DefaultDisclaimer = "The information contained in this data sheet is based on our current " +
		"knowledge and experience. It is given without warranty and does not release the user " +
		"from carrying out their own tests. Values are typical values and not specifications."
	// DefaultAuthor is the document author written to the PDF metadata.
	DefaultAuthor = "Biotec"
	// DefaultTitle is the document title written to the PDF metadata.
	DefaultTitle = "Template document"
	// DefaultOutputDir is where rendered and compiled files are written.
	DefaultOutputDir = "output"
)

// Engine selects how a Document becomes a PDF.
const (
	// EngineLaTeX renders markup and compiles it with latexmk.
	EngineLaTeX = "latex"
	// EnginePDF draws the PDF directly without a TeX toolchain.
	EnginePDF = "pdf"
)

// Missing value policies.
const (
	// OnMissingSkip skips the affected product and continues the job.
	OnMissingSkip = "skip"
	// OnMissingAbort fails the whole job.
	OnMissingAbort = "abort"
)

// Config is the top-level configuration file.
type Config struct {
	// PDFFiles lists the jobs, one output document each.
	PDFFiles []PDFFile `yaml:"pdfFile"`
	// ColorText is the RGB font color.
	ColorText []int `yaml:"colorText"`
	// ColorTabTitle is the RGB background of table title rows.
	ColorTabTitle []int `yaml:"colorTabTitle"`
	// ColorTabLine is the RGB color of the rules between rows.
	ColorTabLine []int `yaml:"colorTabLine"`
	// MarginSize is the page margin in inches.
	MarginSize float64 `yaml:"marginSize"`
	// AlignmentTabular is the alignment of non-first columns: left, center or right.
	AlignmentTabular string `yaml:"alignmentTabular"`

	// OutputDir is the directory receiving .tex and .pdf files.
	OutputDir string `yaml:"outputDir"`
	// Engine is "latex" or "pdf".
	Engine string `yaml:"engine"`
	// OnMissingValue is "skip" or "abort".
	OnMissingValue string `yaml:"onMissingValue"`
	// Author and Title go to the document metadata.
	Author string `yaml:"author"`
	Title  string `yaml:"title"`
	// Logo is an optional image path printed on each product page.
	Logo string `yaml:"logo"`
	// Disclaimer overrides the legal footer.
	Disclaimer string `yaml:"disclaimer"`
	// TargetLabel overrides the product-value column header.
	TargetLabel string `yaml:"targetLabel"`
	// BannerText overrides the page banner.
	BannerText string `yaml:"bannerText"`
	// MaxSingleColumnRows overrides the two-column cutoff.
	MaxSingleColumnRows int `yaml:"maxSingleColumnRows"`
	// LongCellThreshold overrides the tall-row cutoff.
	LongCellThreshold int `yaml:"longCellThreshold"`
}

// PDFFile describes one output document.
type PDFFile struct {
	// PDFName is the output name, without extension.
	PDFName string `yaml:"pdfName"`
	// Sources lists workbook paths; the first one is read.
	Sources []string `yaml:"sources"`
	// SheetsName lists worksheet names; the first one is read.
	SheetsName []string `yaml:"sheetsName"`
	// Products are the product-name anchor labels.
	Products []string `yaml:"products"`
	// Categories are the category header labels.
	Categories []string `yaml:"categories"`
	// Parameters are the parameter-attribute labels.
	Parameters []string `yaml:"parameters"`
}

// DefaultConfig returns the configuration used when a field is absent.
func DefaultConfig() *Config {
	return &Config{
		ColorText:           []int{13, 64, 47},
		ColorTabTitle:       []int{237, 233, 230},
		ColorTabLine:        []int{215, 212, 210},
		MarginSize:          0.84,
		AlignmentTabular:    "left",
		OutputDir:           DefaultOutputDir,
		Engine:              EngineLaTeX,
		OnMissingValue:      OnMissingSkip,
		Author:              DefaultAuthor,
		Title:               DefaultTitle,
		Disclaimer:          DefaultDisclaimer,
		TargetLabel:         DefaultTargetLabel,
		BannerText:          DefaultBannerText,
		MaxSingleColumnRows: DefaultMaxSingleColumnRows,
		LongCellThreshold:   DefaultLongCellThreshold,
	}
}

// Load reads a JSON (or YAML) configuration file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration bytes on top of DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	for name, rgb := range map[string][]int{
		"colorText":     c.ColorText,
		"colorTabTitle": c.ColorTabTitle,
		"colorTabLine":  c.ColorTabLine,
	} {
		if _, err := toRGB(rgb); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.MarginSize <= 0 {
		return fmt.Errorf("marginSize must be > 0")
	}
	if _, err := ParseAlignment(c.AlignmentTabular); err != nil {
		return err
	}
	switch c.Engine {
	case EngineLaTeX, EnginePDF:
	default:
		return fmt.Errorf("unsupported engine %q (use %s or %s)", c.Engine, EngineLaTeX, EnginePDF)
	}
	switch c.OnMissingValue {
	case OnMissingSkip, OnMissingAbort:
	default:
		return fmt.Errorf("unsupported onMissingValue %q (use %s or %s)", c.OnMissingValue, OnMissingSkip, OnMissingAbort)
	}
	if c.MaxSingleColumnRows <= 0 {
		return fmt.Errorf("maxSingleColumnRows must be > 0")
	}
	if c.LongCellThreshold <= 0 {
		return fmt.Errorf("longCellThreshold must be > 0")
	}
	for i, job := range c.PDFFiles {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("pdfFile[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks one job description.
func (p PDFFile) Validate() error {
	if p.PDFName == "" {
		return fmt.Errorf("pdfName is required")
	}
	if len(p.Sources) == 0 || p.Sources[0] == "" {
		return fmt.Errorf("%s: sources is required", p.PDFName)
	}
	if len(p.SheetsName) == 0 || p.SheetsName[0] == "" {
		return fmt.Errorf("%s: sheetsName is required", p.PDFName)
	}
	for name, labels := range map[string][]string{
		"products":   p.Products,
		"categories": p.Categories,
		"parameters": p.Parameters,
	} {
		if len(labels) == 0 {
			return fmt.Errorf("%s: %s is required", p.PDFName, name)
		}
		seen := make(map[string]bool, len(labels))
		for _, l := range labels {
			if l == "" {
				return fmt.Errorf("%s: %s contains an empty label", p.PDFName, name)
			}
			if seen[l] {
				return fmt.Errorf("%s: %s lists %q twice", p.PDFName, name, l)
			}
			seen[l] = true
		}
	}
	return nil
}

// Source returns the workbook path read for this job.
func (p PDFFile) Source() string { return p.Sources[0] }

// Sheet returns the worksheet name read for this job.
func (p PDFFile) Sheet() string { return p.SheetsName[0] }

// Job returns the job named name.
func (c *Config) Job(name string) (PDFFile, bool) {
	for _, job := range c.PDFFiles {
		if job.PDFName == name {
			return job, true
		}
	}
	return PDFFile{}, false
}
