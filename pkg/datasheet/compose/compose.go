// Package compose assembles the product pages of one job into a Document.
package compose

import (
	"fmt"
	"log/slog"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/layout"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/table"
)

// Policy decides what a missing product value does to the job.
type Policy int

const (
	// SkipProduct logs the failure and leaves the product out of the document.
	SkipProduct Policy = iota
	// AbortJob fails the job on the first missing product value.
	AbortJob
)

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case config.OnMissingSkip, "":
		return SkipProduct, nil
	case config.OnMissingAbort:
		return AbortJob, nil
	}
	return 0, fmt.Errorf("unsupported missing value policy %q", s)
}

func (p Policy) String() string {
	if p == AbortJob {
		return config.OnMissingAbort
	}
	return config.OnMissingSkip
}

// Composer builds Documents. It holds no per-job state and performs no I/O.
type Composer struct {
	style  config.Style
	params layout.Params
	policy Policy
	logger *slog.Logger
}

// New returns a Composer. A nil logger discards log output.
func New(style config.Style, policy Policy, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Composer{
		style:  style,
		params: layout.ParamsFromStyle(style),
		policy: policy,
		logger: logger,
	}
}

// Compose builds the Document of job from g: the contents page lists the
// products in page order and every page carries the fixed boilerplate.
func (c *Composer) Compose(g *parser.Grid, job config.PDFFile) (*models.Document, error) {
	log := c.logger.With("job", job.PDFName, "sheet", g.Sheet())

	anchors, err := Discover(g, job)
	if err != nil {
		return nil, err
	}
	titles, err := parser.ValuesAt(g, anchors.Categories, "category title")
	if err != nil {
		return nil, &Error{Stage: StageTitles, Label: models.Category.String(), Err: err}
	}
	paramNames, err := parser.ValuesAt(g, anchors.Parameters, "parameter name")
	if err != nil {
		return nil, &Error{Stage: StageTitles, Label: models.Parameter.String(), Err: err}
	}
	productNames, err := parser.ValuesAt(g, anchors.Products, "product name")
	if err != nil {
		return nil, &Error{Stage: StageTitles, Label: models.Product.String(), Err: err}
	}

	general := make([][]string, len(anchors.Ranges))
	for i, r := range anchors.Ranges {
		if r.IsEmpty() {
			log.Debug("category has no parameters", "category", titles[i], "anchor", r.Start.String())
			continue
		}
		block, err := parser.ParametersByID(g, []models.Range{r}, anchors.RowOffsets(r.Start.Row))
		if err != nil {
			return nil, &Error{Stage: StageContent, Label: titles[i], Err: err}
		}
		general[i] = block[0]
	}

	doc := &models.Document{
		Name:   job.PDFName,
		Title:  c.style.Title,
		Author: c.style.Author,
		Boilerplate: models.Boilerplate{
			Logo:       c.style.Logo,
			Disclaimer: c.style.Disclaimer,
		},
	}
	nbParam := len(anchors.Parameters)
	for pi, pc := range anchors.Products {
		name := productNames[pi]
		values, err := parser.ValuesFromParameters(g, pc.Row, anchors.Ranges)
		if err == nil && !hasValue(values) {
			err = &parser.MissingValueError{Coordinate: pc, What: "product values"}
		}
		if err != nil {
			if c.policy == SkipProduct {
				log.Warn("skipping product", "product", name, "error", err)
				continue
			}
			return nil, &Error{Stage: StageProduct, Product: name, Err: err}
		}

		page := models.ProductPage{Name: name, Banner: c.style.Banner}
		for ci, r := range anchors.Ranges {
			if r.IsEmpty() {
				continue
			}
			content, dropped, err := table.Assemble(general[ci], values[ci], nbParam)
			if err != nil {
				return nil, &Error{Stage: StageAssemble, Product: name, Label: titles[ci], Err: err}
			}
			if content.Rows() == 0 {
				log.Debug("no values for category", "product", name, "category", titles[ci])
				continue
			}
			page.Tables = append(page.Tables, models.TableBlock{
				Title:  titles[ci],
				Header: table.FormatHeader(paramNames, dropped, c.style.TargetLabel),
				Layout: layout.Plan(content, c.params),
			})
		}
		log.Debug("product page composed", "product", name, "tables", len(page.Tables))
		doc.Pages = append(doc.Pages, page)
		doc.Index = append(doc.Index, name)
	}

	if len(doc.Pages) == 0 {
		return nil, &Error{Stage: StageProduct, Err: ErrEmptyDocument}
	}
	log.Info("document composed", "pages", len(doc.Pages), "skipped", len(anchors.Products)-len(doc.Pages))
	return doc, nil
}

// hasValue reports whether any product value is non-empty.
func hasValue(values [][]string) bool {
	for _, block := range values {
		for _, v := range block {
			if v != "" {
				return true
			}
		}
	}
	return false
}
