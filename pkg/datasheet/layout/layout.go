// Package layout decides how an assembled table is laid out on the page.
package layout

import (
	"unicode/utf8"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// Params holds the layout thresholds.
type Params struct {
	// MaxSingleColumnRows is the largest row count kept in one column.
	MaxSingleColumnRows int
	// LongCellThreshold is the first-cell length, in characters, above which
	// a row wraps and needs compensation in the other column.
	LongCellThreshold int
}

// DefaultParams returns the thresholds used by the data sheets.
func DefaultParams() Params {
	return Params{
		MaxSingleColumnRows: config.DefaultMaxSingleColumnRows,
		LongCellThreshold:   config.DefaultLongCellThreshold,
	}
}

// ParamsFromStyle reads the thresholds from a document style.
func ParamsFromStyle(s config.Style) Params {
	return Params{
		MaxSingleColumnRows: s.MaxSingleColumnRows,
		LongCellThreshold:   s.LongCellThreshold,
	}
}

// Plan lays t out in one column when it has at most MaxSingleColumnRows rows.
// Longer tables are split at rows/2: the tail becomes the left column and the
// head the right column. A long first cell in one column marks the row at the
// same index in the other column for a spacing rule. t is not modified.
func Plan(t models.Table, p Params) models.LayoutDecision {
	if t.Rows() <= p.MaxSingleColumnRows {
		return models.LayoutDecision{
			Mode:   models.SingleColumn,
			Single: t.Clone(),
		}
	}

	mid := t.Rows() / 2
	left := models.Table(t[mid:]).Clone()
	right := models.Table(t[:mid]).Clone()
	return models.LayoutDecision{
		Mode:         models.TwoColumn,
		Left:         left,
		Right:        right,
		LeftSpacing:  within(LongRows(right, p.LongCellThreshold), len(left)),
		RightSpacing: within(LongRows(left, p.LongCellThreshold), len(right)),
	}
}

// LongRows returns the indices of rows whose first cell is longer than
// threshold characters.
func LongRows(t models.Table, threshold int) []int {
	var idx []int
	for i, row := range t {
		if len(row) > 0 && utf8.RuneCountInString(row[0]) > threshold {
			idx = append(idx, i)
		}
	}
	return idx
}

// within keeps the indices below n.
func within(idx []int, n int) []int {
	var out []int
	for _, i := range idx {
		if i < n {
			out = append(out, i)
		}
	}
	return out
}
