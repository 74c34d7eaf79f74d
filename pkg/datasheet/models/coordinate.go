// Package models defines the data structures shared by the data sheet pipeline.
package models

import "fmt"

// Coordinate identifies one grid cell.
type Coordinate struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// String returns the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// AnchorKind selects which configured label set a coordinate search matches against.
type AnchorKind int

const (
	// Category anchors mark the header of a parameter block.
	Category AnchorKind = iota
	// Parameter anchors mark the rows holding parameter attributes (name, unit, standard, ...).
	Parameter
	// Product anchors mark the row holding one product's measured values.
	Product
)

// AnchorKinds lists every anchor kind in lookup order.
var AnchorKinds = []AnchorKind{Category, Parameter, Product}

func (k AnchorKind) String() string {
	switch k {
	case Category:
		return "category"
	case Parameter:
		return "parameter"
	case Product:
		return "product"
	default:
		return fmt.Sprintf("AnchorKind(%d)", int(k))
	}
}

// Range is a horizontal span on one row. Start is the anchor cell and End is
// the last contiguous non-empty cell to its right.
type Range struct {
	// Start is the anchor coordinate.
	Start Coordinate `json:"start"`
	// End is the last column of the block, on the same row as Start.
	End Coordinate `json:"end"`
}

// IsEmpty reports whether the anchor has no data columns, i.e. the cell right
// of it is empty. This is a valid state meaning "no parameters".
func (r Range) IsEmpty() bool {
	return r.End.Col <= r.Start.Col
}

// Width returns the number of data columns right of the anchor.
func (r Range) Width() int {
	if r.IsEmpty() {
		return 0
	}
	return r.End.Col - r.Start.Col
}

// Columns returns the first and last data column (inclusive).
// For an empty range first > last.
func (r Range) Columns() (first, last int) {
	return r.Start.Col + 1, r.End.Col
}
