package main

import (
	"fmt"
	"minisheet/contracts"
)

type FormulaEvaluator struct{}

func NewFormulaEvaluator() *FormulaEvaluator {
	return &FormulaEvaluator{}
}

// Evaluate sums the formula's terms against the grid. Marking visited
// cells Evaluating turns the reference graph into a depth-first walk
// with O(1) revisit detection, so recursion depth is bounded by the
// number of grid cells.
func (e *FormulaEvaluator) Evaluate(grid *contracts.Grid, formula *contracts.Formula) (float64, error) {
	// every top-level call starts from a clean slate, otherwise markers
	// left by a previous evaluation would corrupt cycle detection
	grid.ResetEvaluationState()

	return e.sumTerms(grid, formula)
}

func (e *FormulaEvaluator) sumTerms(grid *contracts.Grid, formula *contracts.Formula) (float64, error) {
	sum := 0.0

	for _, term := range formula.Terms {
		if !term.IsReference() {
			sum += term.Constant
			continue
		}

		cell := grid.Cell(*term.Ref)

		if cell.State == contracts.Evaluating {
			return 0, fmt.Errorf("%s: %w", referenceText(*term.Ref), contracts.CircularDependencyError)
		}

		switch cell.Kind {
		case contracts.CellKindFormula:
			cell.State = contracts.Evaluating
			value, err := e.sumTerms(grid, cell.Formula)
			if err != nil {
				return 0, err
			}
			sum += value
			cell.State = contracts.Evaluated

		case contracts.CellKindNumber:
			cell.State = contracts.Evaluating
			sum += cell.Number
			cell.State = contracts.Evaluated

		default:
			return 0, fmt.Errorf("%s: %w", referenceText(*term.Ref), contracts.NonNumericValueError)
		}
	}

	return sum, nil
}

// referenceText spells a coordinate for error messages without needing
// a resolver instance.
func referenceText(coord contracts.Coordinate) string {
	return string(rune('A'+coord.Col)) + fmt.Sprint(coord.Row+1)
}
