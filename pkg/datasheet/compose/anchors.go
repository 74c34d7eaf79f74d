package compose

import (
	"github.com/ukaji3/datasheet-go/pkg/datasheet/config"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/parser"
)

// Anchors holds every coordinate discovered for one job.
type Anchors struct {
	Categories []models.Coordinate `json:"categories"`
	Parameters []models.Coordinate `json:"parameters"`
	Products   []models.Coordinate `json:"products"`
	// Ranges holds one range per category, in the same order.
	Ranges []models.Range `json:"ranges"`
}

// Discover locates the category, parameter and product anchors of job in g
// and resolves the category ranges.
func Discover(g *parser.Grid, job config.PDFFile) (*Anchors, error) {
	a := &Anchors{}
	for _, kind := range models.AnchorKinds {
		var labels []string
		var dst *[]models.Coordinate
		switch kind {
		case models.Category:
			labels, dst = job.Categories, &a.Categories
		case models.Parameter:
			labels, dst = job.Parameters, &a.Parameters
		case models.Product:
			labels, dst = job.Products, &a.Products
		}
		coords, err := parser.Locate(g, kind, labels)
		if err != nil {
			return nil, &Error{Stage: StageLocate, Label: kind.String(), Err: err}
		}
		*dst = coords
	}
	a.Ranges = parser.ResolveRanges(g, a.Categories)
	return a, nil
}

// RowOffsets returns the parameter anchor rows relative to row.
func (a *Anchors) RowOffsets(row int) []int {
	offsets := make([]int, len(a.Parameters))
	for i, p := range a.Parameters {
		offsets[i] = p.Row - row
	}
	return offsets
}
