package main

import (
	"minisheet/contracts"
	"testing"

	"github.com/stretchr/testify/assert"
)

func _makeEvalFixture() (*contracts.Grid, *FormulaParser) {
	config := contracts.GridConfig{Rows: 10, Cols: 7}

	return contracts.NewGrid(config), NewFormulaParser(NewReferenceResolver(config))
}

func _mustParse(t *testing.T, parser *FormulaParser, text string) *contracts.Formula {
	formula, err := parser.Parse(text)
	assert.NoError(t, err)

	return formula
}

func TestFormulaEvaluator_Evaluate(t *testing.T) {
	evaluator := NewFormulaEvaluator()

	t.Run("constants_only", func(t *testing.T) {
		grid, parser := _makeEvalFixture()

		result, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=1+2.5"))
		assert.NoError(t, err)
		assert.Equal(t, 3.5, result)
	})

	t.Run("empty_formula_is_zero", func(t *testing.T) {
		grid, parser := _makeEvalFixture()

		result, err := evaluator.Evaluate(grid, _mustParse(t, parser, "="))
		assert.NoError(t, err)
		assert.Equal(t, 0.0, result)
	})

	t.Run("number_reference", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{Kind: contracts.CellKindNumber, Number: 5}

		result, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=A1+3"))
		assert.NoError(t, err)
		assert.Equal(t, 8.0, result)

		// term order does not change the sum
		result, err = evaluator.Evaluate(grid, _mustParse(t, parser, "=3+A1"))
		assert.NoError(t, err)
		assert.Equal(t, 8.0, result)
	})

	t.Run("formula_chain", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{Kind: contracts.CellKindNumber, Number: 2}
		grid.Cells[0][1] = contracts.GridCell{
			Kind:    contracts.CellKindFormula,
			Formula: _mustParse(t, parser, "=A1+1"),
		}

		result, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=B1+1"))
		assert.NoError(t, err)
		assert.Equal(t, 4.0, result)
	})

	t.Run("same_cell_referenced_twice", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{Kind: contracts.CellKindNumber, Number: 2}
		grid.Cells[0][1] = contracts.GridCell{
			Kind:    contracts.CellKindFormula,
			Formula: _mustParse(t, parser, "=A1+1"),
		}

		result, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=B1+B1+A1"))
		assert.NoError(t, err)
		assert.Equal(t, 8.0, result)
	})

	t.Run("circular_pair", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{
			Kind:    contracts.CellKindFormula,
			Formula: _mustParse(t, parser, "=B1"),
		}
		grid.Cells[0][1] = contracts.GridCell{
			Kind:    contracts.CellKindFormula,
			Formula: _mustParse(t, parser, "=A1"),
		}

		_, err := evaluator.Evaluate(grid, grid.Cells[0][1].Formula)
		assert.ErrorIs(t, err, contracts.CircularDependencyError)

		_, err = evaluator.Evaluate(grid, grid.Cells[0][0].Formula)
		assert.ErrorIs(t, err, contracts.CircularDependencyError)
	})

	t.Run("self_reference", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{
			Kind:    contracts.CellKindFormula,
			Formula: _mustParse(t, parser, "=A1"),
		}

		_, err := evaluator.Evaluate(grid, grid.Cells[0][0].Formula)
		assert.ErrorIs(t, err, contracts.CircularDependencyError)
	})

	t.Run("text_operand", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[1][1] = contracts.GridCell{Kind: contracts.CellKindText, Text: "hello"}

		_, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=B2"))
		assert.ErrorIs(t, err, contracts.NonNumericValueError)
	})

	t.Run("invalid_operand_propagates_through_chain", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[1][1] = contracts.GridCell{Kind: contracts.CellKindText, Text: "hello"}
		grid.Cells[0][0] = contracts.GridCell{
			Kind:    contracts.CellKindFormula,
			Formula: _mustParse(t, parser, "=B2"),
		}

		_, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=A1"))
		assert.ErrorIs(t, err, contracts.NonNumericValueError)
	})

	t.Run("independent_evaluations_start_clean", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{Kind: contracts.CellKindNumber, Number: 5}
		formula := _mustParse(t, parser, "=A1+A1")

		for i := 0; i < 3; i++ {
			result, err := evaluator.Evaluate(grid, formula)
			assert.NoError(t, err)
			assert.Equal(t, 10.0, result)
		}
	})

	t.Run("number_cells_end_up_marked_evaluated", func(t *testing.T) {
		grid, parser := _makeEvalFixture()
		grid.Cells[0][0] = contracts.GridCell{Kind: contracts.CellKindNumber, Number: 5}

		_, err := evaluator.Evaluate(grid, _mustParse(t, parser, "=A1"))
		assert.NoError(t, err)
		assert.Equal(t, contracts.Evaluated, grid.Cells[0][0].State)
	})
}
