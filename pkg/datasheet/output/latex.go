package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// SpacingRule is appended to the first cell of a row that sits next to a
// taller row in the other column.
const SpacingRule = `\rule{80pt}{0pt}`

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`_`, `\_`,
	`#`, `\#`,
	`$`, `\$`,
	`{`, `\{`,
	`}`, `\}`,
	"μ", `\(\mu\)`,
	"µ", `\(\mu\)`,
	"<", `\(<\) `,
	">", `\(>\) `,
	"m2", `\(m^2\)`,
	"^", `\textasciicircum{}`,
	"~", `\textasciitilde{}`,
)

// Escape makes cell text safe for LaTeX and typesets units (µ, m²) and
// comparison signs in math mode.
func Escape(s string) string {
	return escaper.Replace(s)
}

// LaTeX renders Documents as LaTeX source.
type LaTeX struct {
	Style config.Style
}

// Render writes doc as a complete LaTeX document to w.
func (l LaTeX) Render(w io.Writer, doc *models.Document) error {
	var b strings.Builder
	l.preamble(&b, doc)
	b.WriteString("\\begin{document}\n")
	b.WriteString("\\color{font_color}\n")
	b.WriteString("\\maketitle\n\\thispagestyle{empty}\n\\clearpage\n")
	l.contents(&b, doc)
	for _, page := range doc.Pages {
		l.page(&b, doc, page)
	}
	b.WriteString("\\end{document}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderString returns doc as LaTeX source.
func (l LaTeX) RenderString(doc *models.Document) (string, error) {
	var b strings.Builder
	if err := l.Render(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (l LaTeX) preamble(b *strings.Builder, doc *models.Document) {
	b.WriteString("\\documentclass{article}\n")
	for _, pkg := range []string{"tabularx", "xcolor", "colortbl", "geometry", "paracol", "graphicx", "fancyhdr"} {
		fmt.Fprintf(b, "\\usepackage{%s}\n", pkg)
	}
	fmt.Fprintf(b, "\\author{%s}\n", Escape(doc.Author))
	fmt.Fprintf(b, "\\title{%s}\n", Escape(doc.Title))
	fmt.Fprintf(b, "\\geometry{margin=%gin}\n", l.Style.Margin)
	fmt.Fprintf(b, "\\definecolor{color_title}{RGB}{%s}\n", l.Style.TitleColor)
	fmt.Fprintf(b, "\\definecolor{font_color}{RGB}{%s}\n", l.Style.TextColor)
	fmt.Fprintf(b, "\\definecolor{line_color}{RGB}{%s}\n", l.Style.LineColor)
	b.WriteString("\\pagestyle{fancy}\n\\fancyhf{}\n\\renewcommand{\\headrulewidth}{0pt}\n")
	if doc.Boilerplate.Disclaimer != "" {
		fmt.Fprintf(b, "\\fancyfoot[C]{\\tiny %s}\n", Escape(doc.Boilerplate.Disclaimer))
	}
}

func (l LaTeX) contents(b *strings.Builder, doc *models.Document) {
	b.WriteString("\\section*{Contents}\n\\thispagestyle{empty}\n")
	b.WriteString("\\begin{itemize}\n")
	for _, name := range doc.Index {
		fmt.Fprintf(b, "\\item %s\n", Escape(name))
	}
	b.WriteString("\\end{itemize}\n\\clearpage\n")
}

func (l LaTeX) page(b *strings.Builder, doc *models.Document, page models.ProductPage) {
	if doc.Boilerplate.Logo != "" {
		fmt.Fprintf(b, "\\begin{flushright}\\includegraphics[width=3cm]{\\detokenize{%s}}\\end{flushright}\n", doc.Boilerplate.Logo)
	}
	fmt.Fprintf(b, "{\\Large \\textbf{%s}}\\\\\n{\\large %s}\n\\bigskip\n\n", Escape(page.Banner), Escape(page.Name))
	for _, t := range page.Tables {
		b.WriteString(environment("center", "", l.table(t)))
		b.WriteByte('\n')
	}
	b.WriteString("\\clearpage\n")
}

// table renders one category block, split over a paracol environment when
// the layout has two columns.
func (l LaTeX) table(t models.TableBlock) string {
	nbCol := t.Columns()
	cols := "{" + l.columnSpec(nbCol) + "}"
	title := titleRow(t.Title, nbCol)
	header := headerRow(t.Header)

	if !t.Layout.TwoColumns() {
		return environment("tabularx", `\textwidth`, cols+"\n"+title+header+contentRows(t.Layout.Single, nil, nbCol))
	}

	left := environment("tabularx", `0.5\textwidth`,
		cols+"\n"+header+contentRows(t.Layout.Left, t.Layout.LeftSpacing, nbCol))
	right := environment("tabularx", `0.5\textwidth`,
		cols+"\n"+header+contentRows(t.Layout.Right, t.Layout.RightSpacing, nbCol))
	return environment("tabularx", `\textwidth`, cols+"\n"+title) + "\n" +
		environment("paracol", "2", left+"\n\\switchcolumn\n"+right)
}

// columnSpec returns "X a a ..." where a is the configured alignment.
func (l LaTeX) columnSpec(nbCol int) string {
	spec := []string{"X"}
	for i := 1; i < nbCol; i++ {
		spec = append(spec, string(l.Style.Align))
	}
	return strings.Join(spec, " ")
}

func titleRow(title string, nbCol int) string {
	return `\rowcolor{color_title}` + Escape(title) + strings.Repeat(" & ", max(nbCol-1, 0)) + " \\\\\n"
}

func headerRow(header []string) string {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = `\textbf{` + Escape(h) + `}`
	}
	return strings.Join(cells, " & ") + " \\\\\n"
}

func contentRows(rows models.Table, spacing []int, nbCol int) string {
	spaced := make(map[int]bool, len(spacing))
	for _, i := range spacing {
		spaced[i] = true
	}
	var b strings.Builder
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = Escape(c)
		}
		if spaced[i] && len(cells) > 0 {
			cells[0] += " " + SpacingRule
		}
		b.WriteString(strings.Join(cells, " & "))
		if pad := nbCol - len(row); pad > 0 {
			b.WriteString(strings.Repeat(" & ", pad))
		}
		b.WriteString(" \\\\\n")
		b.WriteString("\\arrayrulecolor{line_color}\\hline\n")
	}
	return b.String()
}

func environment(name, param, content string) string {
	if param == "" {
		return fmt.Sprintf("\\begin{%s}\n%s\n\\end{%s}", name, content, name)
	}
	return fmt.Sprintf("\\begin{%s}{%s}\n%s\n\\end{%s}", name, param, content, name)
}
