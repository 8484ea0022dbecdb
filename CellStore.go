package main

import (
	"errors"
	"fmt"
	"minisheet/contracts"
	"strconv"
)

// Display texts pushed to the display hook when a mutation cannot
// produce a number.
const ParseErrorText = "Error: Failed to parse formula"
const CircularDependencyText = "Error: circular dependency detected"
const NonNumericValueText = "Error: cell contains non-numeric value"

type CellStore struct {
	grid       *contracts.Grid
	parser     contracts.FormulaParser
	evaluator  contracts.FormulaEvaluator
	renderer   contracts.FormulaRenderer
	resolver   contracts.ReferenceResolver
	repository contracts.GridRepository
	display    contracts.DisplayUpdater
}

func NewCellStore(
	config contracts.GridConfig,
	parser contracts.FormulaParser,
	evaluator contracts.FormulaEvaluator,
	renderer contracts.FormulaRenderer,
	resolver contracts.ReferenceResolver,
	repository contracts.GridRepository,
	display contracts.DisplayUpdater,
) *CellStore {
	return &CellStore{
		grid:       contracts.NewGrid(config),
		parser:     parser,
		evaluator:  evaluator,
		renderer:   renderer,
		resolver:   resolver,
		repository: repository,
		display:    display,
	}
}

func (s *CellStore) Config() contracts.GridConfig {
	return contracts.GridConfig{Rows: s.grid.Rows, Cols: s.grid.Cols}
}

// SetCellValue classifies the text as formula, number or plain text,
// installs it, persists the raw input and notifies the display hook
// with the final text. Formula and parse errors are reported through
// the display text and the returned error; the mutation itself is not
// rejected.
func (s *CellStore) SetCellValue(row int, col int, text string) (*contracts.Cell, error) {
	coord := contracts.Coordinate{Row: row, Col: col}
	if !s.grid.Contains(coord) {
		return nil, fmt.Errorf("%d:%d: %w", row, col, contracts.CellOutOfRangeError)
	}

	cell := s.grid.Cell(coord)

	// release any owned formula before the new value is installed, no
	// matter what the new text turns out to be
	if cell.Kind == contracts.CellKindFormula {
		cell.Formula = nil
	}

	var display string
	var err error

	switch {
	case s.parser.IsFormula(text):
		var formula *contracts.Formula
		formula, err = s.parser.Parse(text)
		if err != nil {
			// nothing was built, so there is nothing to evaluate: keep
			// the raw text editable and report only the parse error
			*cell = contracts.GridCell{Kind: contracts.CellKindText, Text: text}
			display = ParseErrorText
		} else {
			*cell = contracts.GridCell{Kind: contracts.CellKindFormula, Formula: formula}

			var result float64
			result, err = s.evaluator.Evaluate(s.grid, formula)
			display = s.evaluationText(result, err)
		}

	case isNumeric(text):
		value, _ := strconv.ParseFloat(text, 64)
		*cell = contracts.GridCell{Kind: contracts.CellKindNumber, Number: value}
		display = text

	default:
		*cell = contracts.GridCell{Kind: contracts.CellKindText, Text: text}
		display = text
	}

	if s.repository != nil {
		if repoErr := s.repository.SaveCell(s.resolver.Unresolve(coord), text); repoErr != nil && err == nil {
			err = repoErr
		}
	}

	s.notify(coord, display)

	return &contracts.Cell{Value: s.textualValue(cell), Result: display}, err
}

// ClearCell resets the slot to an empty text cell and notifies the
// display hook with an empty string.
func (s *CellStore) ClearCell(row int, col int) (*contracts.Cell, error) {
	coord := contracts.Coordinate{Row: row, Col: col}
	if !s.grid.Contains(coord) {
		return nil, fmt.Errorf("%d:%d: %w", row, col, contracts.CellOutOfRangeError)
	}

	*s.grid.Cell(coord) = contracts.GridCell{}

	var err error
	if s.repository != nil {
		err = s.repository.DeleteCell(s.resolver.Unresolve(coord))
	}

	s.notify(coord, "")

	return &contracts.Cell{}, err
}

// GetTextualValue produces a fresh textual form suitable for
// re-editing: formulas render canonically, numbers in fixed precision,
// text verbatim.
func (s *CellStore) GetTextualValue(row int, col int) (string, error) {
	coord := contracts.Coordinate{Row: row, Col: col}
	if !s.grid.Contains(coord) {
		return "", fmt.Errorf("%d:%d: %w", row, col, contracts.CellOutOfRangeError)
	}

	return s.textualValue(s.grid.Cell(coord)), nil
}

func (s *CellStore) GetCell(row int, col int) (*contracts.Cell, error) {
	coord := contracts.Coordinate{Row: row, Col: col}
	if !s.grid.Contains(coord) {
		return nil, fmt.Errorf("%d:%d: %w", row, col, contracts.CellOutOfRangeError)
	}

	cell := s.grid.Cell(coord)

	return &contracts.Cell{Value: s.textualValue(cell), Result: s.displayText(cell)}, nil
}

// Snapshot lists every non-empty cell keyed by its canonical reference.
func (s *CellStore) Snapshot() *contracts.GridSnapshot {
	snapshot := &contracts.GridSnapshot{
		Rows:  s.grid.Rows,
		Cols:  s.grid.Cols,
		Cells: contracts.CellList{},
	}

	for row := range s.grid.Cells {
		for col := range s.grid.Cells[row] {
			cell := &s.grid.Cells[row][col]
			if cell.Kind == contracts.CellKindText && cell.Text == "" {
				continue
			}

			reference := s.resolver.Unresolve(contracts.Coordinate{Row: row, Col: col})
			snapshot.Cells[reference] = &contracts.Cell{
				Value:  s.textualValue(cell),
				Result: s.displayText(cell),
			}
		}
	}

	return snapshot
}

func (s *CellStore) textualValue(cell *contracts.GridCell) string {
	switch cell.Kind {
	case contracts.CellKindFormula:
		return s.renderer.Render(cell.Formula)
	case contracts.CellKindNumber:
		return s.renderer.FormatNumber(cell.Number)
	default:
		return cell.Text
	}
}

func (s *CellStore) displayText(cell *contracts.GridCell) string {
	switch cell.Kind {
	case contracts.CellKindFormula:
		result, err := s.evaluator.Evaluate(s.grid, cell.Formula)
		return s.evaluationText(result, err)
	case contracts.CellKindNumber:
		return s.renderer.FormatNumber(cell.Number)
	default:
		return cell.Text
	}
}

func (s *CellStore) evaluationText(result float64, err error) string {
	switch {
	case errors.Is(err, contracts.CircularDependencyError):
		return CircularDependencyText
	case errors.Is(err, contracts.NonNumericValueError):
		return NonNumericValueText
	case err != nil:
		return "Error: " + err.Error()
	}

	return s.renderer.FormatNumber(result)
}

func (s *CellStore) notify(coord contracts.Coordinate, text string) {
	if s.display != nil {
		s.display(coord.Row, coord.Col, text)
	}
}

func isNumeric(text string) bool {
	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return true
	}

	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}
