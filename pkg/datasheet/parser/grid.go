// Package parser locates anchors in a worksheet and extracts the values of
// the parameter blocks they mark.
package parser

import (
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/xuri/excelize/v2"
)

// Grid is an immutable, rectangular view of one worksheet's used range.
// Cells are 0-based; an empty string is an empty cell. A Grid is read once
// per job and shared by the locator, resolver and extractor.
type Grid struct {
	sheet string
	cells [][]string
	cols  int
}

// LoadGrid opens the workbook at path and reads sheetName into a Grid.
func LoadGrid(path, sheetName string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return ReadGrid(f, sheetName)
}

// ReadGrid reads sheetName of an opened workbook into a Grid.
func ReadGrid(f *excelize.File, sheetName string) (*Grid, error) {
	index, err := f.GetSheetIndex(sheetName)
	if err != nil || index < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows of %q: %w", sheetName, err)
	}
	g := NewGrid(rows)
	g.sheet = sheetName
	return g, nil
}

// NewGrid builds a Grid from row-major values. Rows are padded to the widest
// non-empty column and trailing empty rows are dropped; rows is not retained.
func NewGrid(rows [][]string) *Grid {
	maxRow, maxCol := usedBounds(rows)
	g := &Grid{cols: maxCol + 1}
	if maxRow < 0 {
		g.cols = 0
		return g
	}

	g.cells = make([][]string, maxRow+1)
	for r := range g.cells {
		row := make([]string, g.cols)
		if r < len(rows) {
			copy(row, rows[r])
		}
		g.cells[r] = row
	}
	return g
}

// usedBounds returns the last row and column holding a non-empty cell, or -1.
func usedBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}
	return
}

// Sheet returns the worksheet name the grid was read from.
func (g *Grid) Sheet() string { return g.sheet }

// Rows returns the number of rows in the used range.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns in the used range.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether c lies inside the used range.
func (g *Grid) Contains(c models.Coordinate) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < g.cols
}

// Value returns the cell text at c and whether c is inside the grid.
func (g *Grid) Value(c models.Coordinate) (string, bool) {
	if !g.Contains(c) {
		return "", false
	}
	return g.cells[c.Row][c.Col], true
}

// At returns the cell text at (row, col), or "" outside the grid.
func (g *Grid) At(row, col int) string {
	v, _ := g.Value(models.Coordinate{Row: row, Col: col})
	return v
}

// IsEmpty reports whether the cell at (row, col) is empty or outside the grid.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.At(row, col) == ""
}
