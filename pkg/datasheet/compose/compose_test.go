package compose

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/table"
)

func sampleGrid() *parser.Grid {
	return parser.NewGrid([][]string{
		{"", "Mechanical", "M-01", "M-02", "", "Thermal", "T-01", "", "Empty"},
		{"Name", "", "Tensile", "Elongation", "", "", "Melting point"},
		{"Certification"},
		{"Unit", "", "MPa", "%", "", "", "°C"},
		{"Prod A", "", "25", "", "", "", "160"},
		{"Prod B", "", "30", "40"},
		{"Prod C"},
	})
}

func sampleJob() config.PDFFile {
	return config.PDFFile{
		PDFName:    "resins",
		Sources:    []string{"master.xlsx"},
		SheetsName: []string{"Specs"},
		Products:   []string{"Prod A", "Prod B", "Prod C"},
		Categories: []string{"Mechanical", "Thermal", "Empty"},
		Parameters: []string{"Name", "Certification", "Unit"},
	}
}

func sampleStyle() config.Style {
	return config.DefaultConfig().Style()
}

func TestCompose(t *testing.T) {
	doc, err := New(sampleStyle(), SkipProduct, nil).Compose(sampleGrid(), sampleJob())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	header := []string{"Name", config.DefaultTargetLabel, "Unit"}
	single := func(rows ...[]string) models.LayoutDecision {
		return models.LayoutDecision{Mode: models.SingleColumn, Single: rows}
	}
	expected := []models.ProductPage{
		{
			Name:   "Prod A",
			Banner: config.DefaultBannerText,
			Tables: []models.TableBlock{
				{Title: "Mechanical", Header: header, Layout: single([]string{"Tensile", "25", "MPa"})},
				{Title: "Thermal", Header: header, Layout: single([]string{"Melting point", "160", "°C"})},
			},
		},
		{
			Name:   "Prod B",
			Banner: config.DefaultBannerText,
			Tables: []models.TableBlock{
				{Title: "Mechanical", Header: header, Layout: single(
					[]string{"Tensile", "30", "MPa"},
					[]string{"Elongation", "40", "%"},
				)},
			},
		},
	}
	if diff := pretty.Compare(doc.Pages, expected); diff != "" {
		t.Errorf("pages diff (-got +want):\n%s", diff)
	}
	if diff := pretty.Compare(doc.Index, []string{"Prod A", "Prod B"}); diff != "" {
		t.Errorf("index diff (-got +want):\n%s", diff)
	}
	if doc.Name != "resins" || doc.Boilerplate.Disclaimer != config.DefaultDisclaimer {
		t.Errorf("Unexpected document metadata: %q / %q", doc.Name, doc.Boilerplate.Disclaimer)
	}
}

func TestComposeIdempotent(t *testing.T) {
	c := New(sampleStyle(), SkipProduct, nil)
	g := sampleGrid()

	first, err := c.Compose(g, sampleJob())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	second, err := c.Compose(g, sampleJob())
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if diff := pretty.Compare(first, second); diff != "" {
		t.Errorf("Compose is not idempotent:\n%s", diff)
	}
}

func TestComposeAbortOnMissingProduct(t *testing.T) {
	_, err := New(sampleStyle(), AbortJob, nil).Compose(sampleGrid(), sampleJob())

	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("Expected *Error, got %v", err)
	}
	if ce.Stage != StageProduct || ce.Product != "Prod C" {
		t.Errorf("Unexpected error context: %+v", ce)
	}
	if !errors.Is(err, parser.ErrMissingValue) {
		t.Errorf("Expected errors.Is ErrMissingValue, got %v", err)
	}
}

func TestComposeAnchorMismatch(t *testing.T) {
	job := sampleJob()
	job.Categories = append(job.Categories, "Electrical")

	_, err := New(sampleStyle(), SkipProduct, nil).Compose(sampleGrid(), job)
	if !errors.Is(err, parser.ErrAnchorCountMismatch) {
		t.Fatalf("Expected ErrAnchorCountMismatch, got %v", err)
	}
	var ce *Error
	if !errors.As(err, &ce) || ce.Stage != StageLocate || ce.Label != "category" {
		t.Errorf("Unexpected error context: %v", err)
	}
}

func TestComposeAllProductsSkipped(t *testing.T) {
	job := sampleJob()
	job.Products = []string{"Prod C"}

	_, err := New(sampleStyle(), SkipProduct, nil).Compose(sampleGrid(), job)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Expected ErrEmptyDocument, got %v", err)
	}
}

func TestComposeTwoColumn(t *testing.T) {
	const n = 16
	// Category anchor at (0,1) with n data columns to its right.
	header := []string{"", "Category"}
	names := []string{"Name", ""}
	values := []string{"Prod", ""}
	for i := 1; i <= n; i++ {
		header = append(header, fmt.Sprintf("C%d", i))
		names = append(names, fmt.Sprintf("param %d", i))
		values = append(values, fmt.Sprintf("%d", i))
	}
	rows := [][]string{header, names, values}
	g := parser.NewGrid(rows)
	job := config.PDFFile{
		PDFName:    "wide",
		Sources:    []string{"x.xlsx"},
		SheetsName: []string{"S"},
		Products:   []string{"Prod"},
		Categories: []string{"Category"},
		Parameters: []string{"Name"},
	}

	doc, err := New(sampleStyle(), AbortJob, nil).Compose(g, job)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	block := doc.Pages[0].Tables[0]
	if !block.Layout.TwoColumns() {
		t.Fatalf("Expected a two-column layout for %d rows", block.Layout.RowCount())
	}
	if block.Layout.RowCount() != n {
		t.Errorf("Expected %d rows, got %d", n, block.Layout.RowCount())
	}
	if diff := pretty.Compare(block.Header, []string{"Name", config.DefaultTargetLabel}); diff != "" {
		t.Errorf("header diff:\n%s", diff)
	}
	if block.Layout.Right[0][0] != "param 1" {
		t.Errorf("Expected the right column to hold the head, got %q", block.Layout.Right[0][0])
	}
}

func TestRowOffsets(t *testing.T) {
	a := &Anchors{Parameters: []models.Coordinate{{Row: 6, Col: 0}, {Row: 7, Col: 0}, {Row: 3, Col: 0}}}
	if diff := pretty.Compare(a.RowOffsets(5), []int{1, 2, -2}); diff != "" {
		t.Errorf("RowOffsets diff:\n%s", diff)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected Policy
	}{
		{"", SkipProduct},
		{"skip", SkipProduct},
		{"abort", AbortJob},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.input)
		if err != nil || got != tt.expected {
			t.Errorf("ParsePolicy(%q) = %v, %v; expected %v", tt.input, got, err, tt.expected)
		}
	}
	if _, err := ParsePolicy("ignore"); err == nil {
		t.Error("Expected an error for an unknown policy")
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Stage: StageAssemble, Product: "P", Label: "Mechanical", Err: &table.MalformedBlockError{Len: 3, BlockSize: 2, Reason: "bad"}}
	if !errors.Is(err, table.ErrMalformedBlock) {
		t.Errorf("Expected the wrapped error to match ErrMalformedBlock")
	}
	expected := `assemble product "P" [Mechanical]: malformed block: bad (len 3, block size 2)`
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}
