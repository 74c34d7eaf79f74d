package parser

import "github.com/ukaji3/datasheet-go/pkg/datasheet/models"

// ResolveRanges returns one Range per anchor. Starting right of the anchor it
// advances while cells are non-empty; the range ends at the last non-empty
// column. An anchor whose right neighbour is empty yields an empty range, and
// the grid's column bound ends the scan like an empty cell would.
func ResolveRanges(g *Grid, anchors []models.Coordinate) []models.Range {
	ranges := make([]models.Range, 0, len(anchors))
	for _, a := range anchors {
		col := a.Col + 1
		for col < g.Cols() && !g.IsEmpty(a.Row, col) {
			col++
		}
		ranges = append(ranges, models.Range{
			Start: a,
			End:   models.Coordinate{Row: a.Row, Col: col - 1},
		})
	}
	return ranges
}
