package main

import (
	"fmt"
	"minisheet/contracts"
	"strconv"
)

type ReferenceResolver struct {
	rows int
	cols int
}

func NewReferenceResolver(config contracts.GridConfig) *ReferenceResolver {
	return &ReferenceResolver{rows: config.Rows, cols: config.Cols}
}

// Resolve turns "A1" into a 0-based coordinate. A reference is a single
// uppercase column letter followed by a 1-based row number; anything
// else fails.
func (r *ReferenceResolver) Resolve(reference string) (contracts.Coordinate, error) {
	var coord contracts.Coordinate

	if len(reference) < 2 {
		return coord, fmt.Errorf("%s: %w", reference, contracts.InvalidReferenceError)
	}

	if reference[0] < 'A' || reference[0] > 'Z' {
		return coord, fmt.Errorf("%s: %w", reference, contracts.InvalidReferenceError)
	}
	coord.Col = int(reference[0] - 'A')
	if coord.Col >= r.cols {
		return coord, fmt.Errorf("%s: %w", reference, contracts.CellOutOfRangeError)
	}

	row, err := strconv.Atoi(reference[1:])
	if err != nil || row < 1 || row > r.rows {
		return coord, fmt.Errorf("%s: %w", reference, contracts.InvalidReferenceError)
	}
	coord.Row = row - 1

	return coord, nil
}

// Unresolve produces the canonical spelling of a coordinate. This is
// the only text form ever rendered for a reference.
func (r *ReferenceResolver) Unresolve(coord contracts.Coordinate) string {
	return string(rune('A'+coord.Col)) + strconv.Itoa(coord.Row+1)
}
