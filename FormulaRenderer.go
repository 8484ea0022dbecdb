package main

import (
	"minisheet/contracts"
	"strconv"
	"strings"
)

// NumberPrecision is the fixed count of digits after the decimal point
// used for constants and results everywhere.
const NumberPrecision = 6

type FormulaRenderer struct {
	resolver contracts.ReferenceResolver
}

func NewFormulaRenderer(resolver contracts.ReferenceResolver) *FormulaRenderer {
	return &FormulaRenderer{resolver: resolver}
}

// Render produces editable text for a formula: "=" followed by the
// terms joined with "+", in original order. References come out in the
// canonical spelling and constants in fixed precision, so the result is
// stable across repeated renders but not byte-identical to whatever the
// user originally typed.
func (r *FormulaRenderer) Render(formula *contracts.Formula) string {
	var text strings.Builder
	text.WriteString(FormulaPrefix)

	for index, term := range formula.Terms {
		if index > 0 {
			text.WriteString("+")
		}

		if term.IsReference() {
			text.WriteString(r.resolver.Unresolve(*term.Ref))
		} else {
			text.WriteString(r.FormatNumber(term.Constant))
		}
	}

	return text.String()
}

func (r *FormulaRenderer) FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', NumberPrecision, 64)
}
