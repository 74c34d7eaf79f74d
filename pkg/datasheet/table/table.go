// Package table reshapes the flat values read from a category block into a
// display table with the product's values as its second column.
package table

import (
	"errors"
	"fmt"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

// ErrMalformedBlock matches any *MalformedBlockError.
var ErrMalformedBlock = errors.New("malformed block")

// MalformedBlockError reports a value sequence that does not fit the
// expected block shape.
type MalformedBlockError struct {
	Len       int
	BlockSize int
	Reason    string
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("malformed block: %s (len %d, block size %d)", e.Reason, e.Len, e.BlockSize)
}

func (e *MalformedBlockError) Is(target error) bool { return target == ErrMalformedBlock }

// Reshape splits a column-major sequence into nbParam attribute groups.
// Group i holds values[i], values[i+nbParam], ..., one value per spreadsheet
// column:
//
//	["a1", "b1", "a2", "b2", "a3", "b3"], 2 -> [["a1", "a2", "a3"], ["b1", "b2", "b3"]]
func Reshape(values []string, nbParam int) ([][]string, error) {
	if nbParam <= 0 {
		return nil, &MalformedBlockError{Len: len(values), BlockSize: nbParam, Reason: "block size must be positive"}
	}
	if len(values)%nbParam != 0 {
		return nil, &MalformedBlockError{Len: len(values), BlockSize: nbParam, Reason: "length is not a multiple of the block size"}
	}
	width := len(values) / nbParam
	groups := make([][]string, nbParam)
	for i := range groups {
		group := make([]string, 0, width)
		for j := i; j < len(values); j += nbParam {
			group = append(group, values[j])
		}
		groups[i] = group
	}
	return groups, nil
}

// DropEmpty removes the groups whose every value is empty and returns the
// kept groups plus the indices of the dropped ones. A group with at least one
// non-empty value is kept as is.
func DropEmpty(groups [][]string) (kept [][]string, dropped []int) {
	for i, g := range groups {
		if allEmpty(g) {
			dropped = append(dropped, i)
			continue
		}
		kept = append(kept, g)
	}
	return kept, dropped
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}

// Transpose converts column-major groups into row-major rows, dropping every
// row whose second cell (the product value) is empty.
func Transpose(groups [][]string) models.Table {
	if len(groups) == 0 {
		return nil
	}
	var out models.Table
	for i := range groups[0] {
		row := make([]string, len(groups))
		for j, g := range groups {
			row[j] = g[i]
		}
		if len(row) > 1 && row[1] == "" {
			continue
		}
		out = append(out, row)
	}
	return out
}

// Assemble turns a category's raw column-major block and one product's
// values into a display table. The steps run in order: reshape into nbParam
// groups, drop all-empty groups, insert the product values as group 1,
// transpose while dropping rows without a product value. The dropped group
// indices are returned so the parameter-name header can be kept aligned.
func Assemble(raw, product []string, nbParam int) (models.Table, []int, error) {
	groups, err := Reshape(raw, nbParam)
	if err != nil {
		return nil, nil, err
	}
	if width := len(raw) / nbParam; len(product) != width {
		return nil, nil, &MalformedBlockError{
			Len:       len(product),
			BlockSize: width,
			Reason:    "product values do not match the block width",
		}
	}

	kept, dropped := DropEmpty(groups)
	at := 1
	if len(kept) < at {
		at = len(kept)
	}
	kept = insertAt(kept, at, append([]string(nil), product...))

	return Transpose(kept), dropped, nil
}

func insertAt(groups [][]string, i int, g []string) [][]string {
	groups = append(groups, nil)
	copy(groups[i+1:], groups[i:])
	groups[i] = g
	return groups
}
