package output

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

const (
	fontFamily    = "Helvetica"
	fontSize      = 8
	lineHeight    = 4.0
	titleHeight   = 7.0
	columnGap     = 4.0
	footerReserve = 12.0
	// spacingRulePt matches the width of SpacingRule.
	spacingRulePt = 80
	// firstColumnShare is the width share of the parameter-name column.
	firstColumnShare = 0.4
)

// PDF draws Documents straight to PDF, for hosts without a TeX toolchain.
// The page structure matches the LaTeX output: title page, contents page,
// one page (or more) per product with the disclaimer in the footer.
type PDF struct {
	Style config.Style
}

// Render writes doc as PDF to w.
func (p PDF) Render(w io.Writer, doc *models.Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	margin := InchesToMM(p.Style.Margin)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)

	r := &pdfRenderer{
		pdf:    pdf,
		style:  p.Style,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		margin: margin,
	}
	r.pageW, r.pageH = pdf.GetPageSize()
	pdf.SetTextColor(p.Style.TextColor[0], p.Style.TextColor[1], p.Style.TextColor[2])

	r.titlePage(doc)
	links := r.contentsPage(doc)
	first := pdf.PageCount() + 1
	for i, page := range doc.Pages {
		r.productPage(page, doc.Boilerplate, links[i])
	}
	if d := doc.Boilerplate.Disclaimer; d != "" {
		for n := first; n <= pdf.PageCount(); n++ {
			pdf.SetPage(n)
			r.footer(d)
		}
	}

	if err := pdf.Output(w); err != nil {
		return &ExternalToolError{Tool: "gofpdf", Err: err}
	}
	return nil
}

type pdfRenderer struct {
	pdf          *gofpdf.Fpdf
	style        config.Style
	tr           func(string) string
	margin       float64
	pageW, pageH float64
}

// text converts s to the core font encoding. The Greek mu has no cp1252
// code point; the micro sign does.
func (r *pdfRenderer) text(s string) string {
	return r.tr(strings.ReplaceAll(s, "μ", "µ"))
}

func (r *pdfRenderer) titlePage(doc *models.Document) {
	pdf := r.pdf
	pdf.AddPage()
	pdf.SetY(r.pageH / 3)
	pdf.SetFont(fontFamily, "B", 24)
	pdf.CellFormat(0, 12, r.text(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 14)
	pdf.CellFormat(0, 8, r.text(doc.Author), "", 1, "C", false, 0, "")
}

func (r *pdfRenderer) contentsPage(doc *models.Document) []int {
	pdf := r.pdf
	pdf.AddPage()
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, "Contents", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 11)

	links := make([]int, len(doc.Pages))
	for i := range doc.Pages {
		links[i] = pdf.AddLink()
		name := doc.Pages[i].Name
		if i < len(doc.Index) {
			name = doc.Index[i]
		}
		pdf.CellFormat(0, 7, r.text(name), "", 1, "L", false, links[i], "")
	}
	return links
}

func (r *pdfRenderer) productPage(page models.ProductPage, bp models.Boilerplate, link int) {
	pdf := r.pdf
	pdf.AddPage()
	pdf.SetLink(link, 0, -1)
	if bp.Logo != "" {
		pdf.ImageOptions(bp.Logo, r.pageW-r.margin-30, r.margin, 30, 0, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 9, r.text(page.Banner), "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 13)
	pdf.CellFormat(0, 7, r.text(page.Name), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, t := range page.Tables {
		r.table(t)
		pdf.Ln(4)
	}
}

func (r *pdfRenderer) table(t models.TableBlock) {
	pdf := r.pdf
	width := r.pageW - 2*r.margin

	r.ensure(titleHeight + 2*lineHeight)
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(r.style.TitleColor[0], r.style.TitleColor[1], r.style.TitleColor[2])
	pdf.CellFormat(width, titleHeight, r.text(t.Title), "", 1, "L", true, 0, "")

	if !t.Layout.TwoColumns() {
		r.rows(r.margin, width, t.Header, t.Layout.Single, nil)
		return
	}

	half := (width - columnGap) / 2
	startPage, startY := pdf.PageNo(), pdf.GetY()
	r.rows(r.margin, half, t.Header, t.Layout.Left, t.Layout.LeftSpacing)
	leftPage, leftY := pdf.PageNo(), pdf.GetY()

	pdf.SetPage(startPage)
	pdf.SetY(startY)
	r.rows(r.margin+half+columnGap, half, t.Header, t.Layout.Right, t.Layout.RightSpacing)
	rightPage, rightY := pdf.PageNo(), pdf.GetY()

	switch {
	case leftPage > rightPage, leftPage == rightPage && leftY > rightY:
		pdf.SetPage(leftPage)
		pdf.SetY(leftY)
	default:
		pdf.SetPage(rightPage)
		pdf.SetY(rightY)
	}
}

// rows draws the bold header and the content rows at x within width w.
func (r *pdfRenderer) rows(x, w float64, header []string, rows models.Table, spacing []int) {
	widths := columnWidths(w, len(header))
	spaced := make(map[int]bool, len(spacing))
	for _, i := range spacing {
		spaced[i] = true
	}

	r.row(x, widths, header, "B", false)
	r.pdf.SetDrawColor(r.style.LineColor[0], r.style.LineColor[1], r.style.LineColor[2])
	for i, row := range rows {
		r.row(x, widths, row, "", spaced[i])
		y := r.pdf.GetY()
		r.pdf.Line(x, y, x+w, y)
	}
}

// row draws one row, wrapping cells, and leaves the cursor below it at x.
func (r *pdfRenderer) row(x float64, widths []float64, cells []string, fontStyle string, extra bool) {
	pdf := r.pdf
	pdf.SetFont(fontFamily, fontStyle, fontSize)

	lines := 1
	for j, c := range cells {
		if j >= len(widths) {
			break
		}
		if n := len(pdf.SplitLines([]byte(r.text(c)), widths[j]-2)); n > lines {
			lines = n
		}
	}
	if extra && len(cells) > 0 && len(widths) > 0 {
		lines = max(lines, r.spacedLines(cells[0], widths[0]))
	}
	h := float64(lines) * lineHeight

	r.ensure(h)
	y := pdf.GetY()
	cx := x
	for j, c := range cells {
		if j >= len(widths) {
			break
		}
		pdf.SetXY(cx, y)
		pdf.MultiCell(widths[j], lineHeight, r.text(c), "", r.align(j), false)
		cx += widths[j]
	}
	pdf.SetXY(x, y+h)
}

// spacedLines counts the lines of a cell followed by the spacing rule.
func (r *pdfRenderer) spacedLines(s string, w float64) int {
	split := r.pdf.SplitLines([]byte(r.text(s)), w-2)
	n := len(split)
	if n == 0 {
		return 1
	}
	if r.pdf.GetStringWidth(string(split[n-1]))+PointsToMM(spacingRulePt) > w-2 {
		n++
	}
	return n
}

// ensure moves to the next page when h does not fit above the footer.
func (r *pdfRenderer) ensure(h float64) {
	pdf := r.pdf
	if pdf.GetY()+h <= r.pageH-r.margin-footerReserve {
		return
	}
	x := pdf.GetX()
	if pdf.PageNo() < pdf.PageCount() {
		pdf.SetPage(pdf.PageNo() + 1)
	} else {
		pdf.AddPage()
	}
	pdf.SetXY(x, r.margin)
}

func (r *pdfRenderer) footer(text string) {
	pdf := r.pdf
	pdf.SetFont(fontFamily, "I", 6)
	pdf.SetXY(r.margin, r.pageH-r.margin-footerReserve+2)
	pdf.MultiCell(r.pageW-2*r.margin, 2.5, r.text(text), "", "C", false)
}

func (r *pdfRenderer) align(col int) string {
	if col == 0 {
		return "L"
	}
	switch r.style.Align {
	case config.AlignCenter:
		return "C"
	case config.AlignRight:
		return "R"
	default:
		return "L"
	}
}

func columnWidths(w float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	widths := make([]float64, n)
	if n == 1 {
		widths[0] = w
		return widths
	}
	widths[0] = w * firstColumnShare
	rest := (w - widths[0]) / float64(n-1)
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}
