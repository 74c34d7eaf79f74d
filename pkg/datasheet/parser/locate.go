package parser

import (
	"strings"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
	"golang.org/x/text/unicode/norm"
)

// Locate scans every cell of g in row-major order and returns the coordinate
// of each cell whose text matches one of labels. The scan is exhaustive so
// that duplicates are detected; the number of matches must equal len(labels),
// otherwise an *AnchorCountMismatchError is returned along with the matches.
func Locate(g *Grid, kind models.AnchorKind, labels []string) ([]models.Coordinate, error) {
	want := make([]string, len(labels))
	for i, l := range labels {
		want[i] = normalizeLabel(l)
	}

	var found []models.Coordinate
	hits := make([]int, len(labels))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			v := g.At(row, col)
			if v == "" {
				continue
			}
			v = normalizeLabel(v)
			for i, label := range want {
				if v == label {
					found = append(found, models.Coordinate{Row: row, Col: col})
					hits[i]++
				}
			}
		}
	}

	if len(found) != len(labels) {
		e := &AnchorCountMismatchError{
			Kind:     kind,
			Labels:   append([]string(nil), labels...),
			Expected: len(labels),
			Found:    found,
		}
		for i, n := range hits {
			switch {
			case n == 0:
				e.Missing = append(e.Missing, labels[i])
			case n > 1:
				e.Duplicated = append(e.Duplicated, labels[i])
			}
		}
		return found, e
	}
	return found, nil
}

// normalizeLabel makes labels typed on different systems comparable.
func normalizeLabel(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
