package parser

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

func TestValuesAt(t *testing.T) {
	g := sampleGrid()

	got, err := ValuesAt(g, []models.Coordinate{{Row: 0, Col: 1}, {Row: 4, Col: 0}}, "title")
	if err != nil {
		t.Fatalf("ValuesAt failed: %v", err)
	}
	if diff := pretty.Compare(got, []string{"Mechanical", "Prod A"}); diff != "" {
		t.Errorf("ValuesAt diff:\n%s", diff)
	}

	tests := []models.Coordinate{
		{Row: 0, Col: 0},  // empty
		{Row: 40, Col: 0}, // outside
	}
	for _, c := range tests {
		_, err := ValuesAt(g, []models.Coordinate{c}, "title")
		var missing *MissingValueError
		if !errors.As(err, &missing) {
			t.Errorf("ValuesAt(%s): expected MissingValueError, got %v", c, err)
			continue
		}
		if missing.Coordinate != c {
			t.Errorf("Expected coordinate %s, got %s", c, missing.Coordinate)
		}
		if !errors.Is(err, ErrMissingValue) {
			t.Errorf("ValuesAt(%s): expected errors.Is ErrMissingValue", c)
		}
	}
}

func TestParametersByID(t *testing.T) {
	g := sampleGrid()
	ranges := ResolveRanges(g, []models.Coordinate{{Row: 0, Col: 1}, {Row: 0, Col: 5}})

	got, err := ParametersByID(g, ranges, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("ParametersByID failed: %v", err)
	}
	expected := [][]string{
		{"Tensile", "", "MPa", "Elongation", "", "%"},
		{"Melting point", "", "°C"},
	}
	if diff := pretty.Compare(got, expected); diff != "" {
		t.Errorf("ParametersByID diff (-got +want):\n%s", diff)
	}
}

func TestParametersByIDEmptyRange(t *testing.T) {
	g := sampleGrid()
	ranges := ResolveRanges(g, []models.Coordinate{{Row: 0, Col: 8}})

	got, err := ParametersByID(g, ranges, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("ParametersByID failed: %v", err)
	}
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Expected one empty block, got %q", got)
	}
}

func TestParametersByIDOutsideGrid(t *testing.T) {
	g := sampleGrid()
	ranges := ResolveRanges(g, []models.Coordinate{{Row: 0, Col: 1}})

	_, err := ParametersByID(g, ranges, []int{1, 12})
	var missing *MissingValueError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingValueError, got %v", err)
	}
	if missing.Coordinate != (models.Coordinate{Row: 12, Col: 2}) {
		t.Errorf("Unexpected coordinate %s", missing.Coordinate)
	}
}

func TestValuesFromParameters(t *testing.T) {
	g := sampleGrid()
	ranges := ResolveRanges(g, []models.Coordinate{{Row: 0, Col: 1}, {Row: 0, Col: 5}, {Row: 0, Col: 8}})

	tests := []struct {
		row      int
		expected [][]string
	}{
		{4, [][]string{{"25", ""}, {"160"}, {}}},
		{5, [][]string{{"30", "40"}, {""}, {}}},
	}
	for _, tt := range tests {
		got, err := ValuesFromParameters(g, tt.row, ranges)
		if err != nil {
			t.Errorf("ValuesFromParameters(%d) failed: %v", tt.row, err)
			continue
		}
		if diff := pretty.Compare(got, tt.expected); diff != "" {
			t.Errorf("ValuesFromParameters(%d) diff (-got +want):\n%s", tt.row, diff)
		}
	}
}
