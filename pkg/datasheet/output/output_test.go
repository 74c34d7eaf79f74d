package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/layout"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

func sampleDocument() *models.Document {
	long := make(models.Table, 16)
	for i := range long {
		long[i] = []string{fmt.Sprintf("Parameter %d", i+1), fmt.Sprintf("%d", i), "MPa"}
	}
	long[2][0] = "Coefficient of linear thermal expansion"

	header := []string{"Name", config.DefaultTargetLabel, "Unit"}
	return &models.Document{
		Name:   "resins",
		Title:  "Resin & Co",
		Author: config.DefaultAuthor,
		Index:  []string{"Prod_A", "Prod B"},
		Pages: []models.ProductPage{
			{
				Name:   "Prod_A",
				Banner: config.DefaultBannerText,
				Tables: []models.TableBlock{{
					Title:  "Mechanical",
					Header: header,
					Layout: layout.Plan(models.Table{{"Tensile", "25", "MPa"}, {"Density", "<1", "g/cm3"}}, layout.DefaultParams()),
				}},
			},
			{
				Name:   "Prod B",
				Banner: config.DefaultBannerText,
				Tables: []models.TableBlock{{
					Title:  "Thermal",
					Header: header,
					Layout: layout.Plan(long, layout.DefaultParams()),
				}},
			},
		},
		Boilerplate: models.Boilerplate{Disclaimer: config.DefaultDisclaimer},
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"R&D", `R\&D`},
		{"50%", `50\%`},
		{"a_b #1 $2", `a\_b \#1 \$2`},
		{"{x}", `\{x\}`},
		{`a\b`, `a\textbackslash{}b`},
		{"5 μm", `5 \(\mu\)m`},
		{"5 µm", `5 \(\mu\)m`},
		{"<1", `\(<\) 1`},
		{">1", `\(>\) 1`},
		{"g/m2", `g/\(m^2\)`},
		{"10^6", `10\textasciicircum{}6`},
		{"m^2", `m\textasciicircum{}2`},
		{"~5", `\textasciitilde{}5`},
	}
	for _, tt := range tests {
		if got := Escape(tt.input); got != tt.expected {
			t.Errorf("Escape(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestLaTeXRender(t *testing.T) {
	style := config.DefaultConfig().Style()
	doc := sampleDocument()
	doc.Boilerplate.Logo = "img/logo#1%.png"
	src, err := LaTeX{Style: style}.RenderString(doc)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, want := range []string{
		`\documentclass{article}`,
		`\usepackage{paracol}`,
		`\title{Resin \& Co}`,
		`\definecolor{color_title}{RGB}{` + style.TitleColor.String() + `}`,
		`\definecolor{line_color}{RGB}{` + style.LineColor.String() + `}`,
		`\item Prod\_A`,
		`\rowcolor{color_title}Mechanical`,
		`\textbf{Name} & \textbf{` + config.DefaultTargetLabel + `} & \textbf{Unit} \\`,
		`Density & \(<\) 1 & g/cm3 \\`,
		`\begin{paracol}{2}`,
		`\switchcolumn`,
		`\includegraphics[width=3cm]{\detokenize{img/logo#1%.png}}`,
		`\arrayrulecolor{line_color}\hline`,
		`\end{document}`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
	if n := strings.Count(src, `\begin{paracol}`); n != 1 {
		t.Errorf("Expected one paracol environment, got %d", n)
	}
	if !strings.Contains(src, SpacingRule) {
		t.Errorf("Expected a spacing rule next to the long row")
	}
	if strings.Index(src, `\item Prod\_A`) > strings.Index(src, `\item Prod B`) {
		t.Errorf("Expected the contents to keep page order")
	}
}

func TestColumnSpec(t *testing.T) {
	style := config.DefaultConfig().Style()
	style.Align = config.AlignRight
	if got := (LaTeX{Style: style}).columnSpec(3); got != "X r r" {
		t.Errorf("columnSpec(3) = %q", got)
	}
	if got := (LaTeX{Style: style}).columnSpec(1); got != "X" {
		t.Errorf("columnSpec(1) = %q", got)
	}
}

func TestContentRowsSpacing(t *testing.T) {
	got := contentRows(models.Table{{"a", "1"}, {"b"}}, []int{1}, 2)
	expected := "a & 1 \\\\\n\\arrayrulecolor{line_color}\\hline\n" +
		"b " + SpacingRule + " &  \\\\\n\\arrayrulecolor{line_color}\\hline\n"
	if got != expected {
		t.Errorf("contentRows mismatch:\ngot  %q\nwant %q", got, expected)
	}
}

func TestPDFRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (PDF{Style: config.DefaultConfig().Style()}).Render(&buf, sampleDocument()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("Expected PDF output, got %q", buf.Bytes()[:min(16, buf.Len())])
	}

	path := filepath.Join(t.TempDir(), "resins.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	pages, err := Verify(path)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	// Title, contents and one page per product.
	if pages < 4 {
		t.Errorf("Expected at least 4 pages, got %d", pages)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Verify(path); !errors.Is(err, ErrExternalTool) {
		t.Errorf("Expected ErrExternalTool, got %v", err)
	}
}

func TestColumnWidths(t *testing.T) {
	if diff := pretty.Compare(columnWidths(100, 3), []float64{40, 30, 30}); diff != "" {
		t.Errorf("columnWidths diff:\n%s", diff)
	}
	if diff := pretty.Compare(columnWidths(100, 1), []float64{100}); diff != "" {
		t.Errorf("columnWidths diff:\n%s", diff)
	}
	if columnWidths(100, 0) != nil {
		t.Error("Expected nil widths for no columns")
	}
}

func TestLatexmkMissingCommand(t *testing.T) {
	_, err := Latexmk{Command: "datasheet-no-such-latexmk"}.Compile(context.Background(), "x.tex", t.TempDir())
	if !errors.Is(err, ErrExternalTool) {
		t.Errorf("Expected ErrExternalTool, got %v", err)
	}
}

func TestLatexmkFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "latexmk")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'Undefined control sequence'\nexit 12\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Latexmk{Command: script}.Compile(context.Background(), filepath.Join(dir, "doc.tex"), dir)
	var te *ExternalToolError
	if !errors.As(err, &te) {
		t.Fatalf("Expected *ExternalToolError, got %v", err)
	}
	if !strings.Contains(te.Output, "Undefined control sequence") {
		t.Errorf("Expected the compiler output to be kept, got %q", te.Output)
	}
}

func TestLatexmkSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script stub")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "latexmk")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Latexmk{Command: script}.Compile(context.Background(), filepath.Join(dir, "doc.tex"), dir)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if expected := filepath.Join(dir, "doc.pdf"); got != expected {
		t.Errorf("Compile() = %q, expected %q", got, expected)
	}
}

func TestTail(t *testing.T) {
	if got := tail("abcdef", 3); got != "...def" {
		t.Errorf("tail = %q", got)
	}
	if got := tail("abc", 3); got != "abc" {
		t.Errorf("tail = %q", got)
	}
}

func TestUnits(t *testing.T) {
	if got := InchesToMM(1); got != 25.4 {
		t.Errorf("InchesToMM(1) = %v", got)
	}
	if got := PointsToMM(72.27); got < 25.39 || got > 25.41 {
		t.Errorf("PointsToMM(72.27) = %v", got)
	}
}
