package models

// Table is a row-major sequence of rows of cells.
type Table [][]string

// Rows returns the number of rows.
func (t Table) Rows() int { return len(t) }

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// LayoutMode is the page layout chosen for one table.
type LayoutMode string

const (
	// SingleColumn lays the table out in one full-width column.
	SingleColumn LayoutMode = "single"
	// TwoColumn splits the table into two side-by-side halves.
	TwoColumn LayoutMode = "two_column"
)

// LayoutDecision is the outcome of planning one table.
type LayoutDecision struct {
	// Mode is the chosen layout.
	Mode LayoutMode `json:"mode"`
	// Single holds the whole table in single-column mode.
	Single Table `json:"single,omitempty"`
	// Left is the first visual column in two-column mode.
	Left Table `json:"left,omitempty"`
	// Right is the second visual column in two-column mode.
	Right Table `json:"right,omitempty"`
	// LeftSpacing lists row indices of Left that need a spacing rule to match
	// a taller row at the same index in Right.
	LeftSpacing []int `json:"left_spacing,omitempty"`
	// RightSpacing lists row indices of Right that need a spacing rule.
	RightSpacing []int `json:"right_spacing,omitempty"`
}

// TwoColumns reports whether the decision is a two-column split.
func (d LayoutDecision) TwoColumns() bool { return d.Mode == TwoColumn }

// RowCount returns the number of content rows across all columns.
func (d LayoutDecision) RowCount() int {
	if d.TwoColumns() {
		return len(d.Left) + len(d.Right)
	}
	return len(d.Single)
}
