package contracts

import (
	"errors"
	"fmt"
)

type ReferenceResolver interface {
	Resolve(reference string) (Coordinate, error)
	Unresolve(coord Coordinate) string
}

type FormulaParser interface {
	IsFormula(text string) bool
	Parse(text string) (*Formula, error)
}

type FormulaEvaluator interface {
	Evaluate(grid *Grid, formula *Formula) (float64, error)
}

type FormulaRenderer interface {
	Render(formula *Formula) string
	FormatNumber(value float64) string
}

var FormulaParseError = errors.New("failed to parse formula")

var TooManyTermsError = fmt.Errorf("%w: more than %d terms", FormulaParseError, MaxFormulaTerms)

var CircularDependencyError = errors.New("circular dependency detected")

var NonNumericValueError = errors.New("cell contains non-numeric value")
