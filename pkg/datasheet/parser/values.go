package parser

import "github.com/ukaji3/datasheet-go/pkg/datasheet/models"

// ValuesAt returns the text of each cell in coords. Titles, parameter names
// and product names must not be empty: an empty or out-of-grid cell yields a
// *MissingValueError.
func ValuesAt(g *Grid, coords []models.Coordinate, what string) ([]string, error) {
	out := make([]string, 0, len(coords))
	for _, c := range coords {
		v, ok := g.Value(c)
		if !ok || v == "" {
			return nil, &MissingValueError{Coordinate: c, What: what}
		}
		out = append(out, v)
	}
	return out, nil
}

// ParametersByID reads the general content of each range. For every data
// column (outer loop) and every row offset (inner loop) it emits the cell at
// (start.Row+offset, col), so the result of one range is column-major. Empty
// cells are emitted as ""; a cell outside the grid yields a *MissingValueError.
func ParametersByID(g *Grid, ranges []models.Range, rowOffsets []int) ([][]string, error) {
	out := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		first, last := r.Columns()
		params := make([]string, 0, r.Width()*len(rowOffsets))
		for col := first; col <= last; col++ {
			for _, off := range rowOffsets {
				c := models.Coordinate{Row: r.Start.Row + off, Col: col}
				v, ok := g.Value(c)
				if !ok {
					return nil, &MissingValueError{Coordinate: c, What: "parameter attribute"}
				}
				params = append(params, v)
			}
		}
		out = append(out, params)
	}
	return out, nil
}

// ValuesFromParameters reads one product's values: for each range, the cell
// at (productRow, col) for every data column. Empty cells are kept as "".
func ValuesFromParameters(g *Grid, productRow int, ranges []models.Range) ([][]string, error) {
	out := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		first, last := r.Columns()
		values := make([]string, 0, r.Width())
		for col := first; col <= last; col++ {
			c := models.Coordinate{Row: productRow, Col: col}
			v, ok := g.Value(c)
			if !ok {
				return nil, &MissingValueError{Coordinate: c, What: "product value"}
			}
			values = append(values, v)
		}
		out = append(out, values)
	}
	return out, nil
}
