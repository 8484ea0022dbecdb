package main

import (
	"fmt"
	"minisheet/contracts"
	"strconv"
	"strings"
)

const FormulaPrefix = "="

type FormulaParser struct {
	resolver contracts.ReferenceResolver
}

func NewFormulaParser(resolver contracts.ReferenceResolver) *FormulaParser {
	return &FormulaParser{resolver: resolver}
}

func (p *FormulaParser) IsFormula(text string) bool {
	return strings.HasPrefix(text, FormulaPrefix)
}

// Parse splits the text after the marker on `+` and reads each piece as
// a constant when a leading numeric token can be extracted from it,
// otherwise as a cell reference. It returns a complete formula or an
// error, never a partial one.
func (p *FormulaParser) Parse(text string) (*contracts.Formula, error) {
	if !p.IsFormula(text) {
		return nil, fmt.Errorf("%w: missing %q marker", contracts.FormulaParseError, FormulaPrefix)
	}

	formula := &contracts.Formula{}

	for _, part := range strings.Split(strings.TrimPrefix(text, FormulaPrefix), "+") {
		// "=" alone is an empty formula and "1++2" reads as two terms
		if part == "" {
			continue
		}

		if len(formula.Terms) == contracts.MaxFormulaTerms {
			return nil, contracts.TooManyTermsError
		}

		var term contracts.Term
		if value, ok := parseLeadingNumber(part); ok {
			term.Constant = value
		} else {
			coord, err := p.resolver.Resolve(part)
			if err != nil {
				return nil, fmt.Errorf("%w: term %q: %s", contracts.FormulaParseError, part, err)
			}
			term.Ref = &coord
		}

		formula.Terms = append(formula.Terms, term)
	}

	return formula, nil
}

// parseLeadingNumber extracts the longest numeric prefix of a term:
// optional leading spaces and sign, digits with at most one dot, and an
// exponent only when digits follow it. Trailing junk is ignored, so
// "3abc" is the constant 3.
func parseLeadingNumber(term string) (float64, bool) {
	i := 0
	for i < len(term) && (term[i] == ' ' || term[i] == '\t') {
		i++
	}

	start := i
	if i < len(term) && (term[i] == '-' || term[i] == '+') {
		i++
	}

	digits := 0
	for i < len(term) && term[i] >= '0' && term[i] <= '9' {
		i++
		digits++
	}
	if i < len(term) && term[i] == '.' {
		i++
		for i < len(term) && term[i] >= '0' && term[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	end := i
	if i < len(term) && (term[i] == 'e' || term[i] == 'E') {
		j := i + 1
		if j < len(term) && (term[j] == '-' || term[j] == '+') {
			j++
		}
		expDigits := 0
		for j < len(term) && term[j] >= '0' && term[j] <= '9' {
			j++
			expDigits++
		}
		if expDigits > 0 {
			end = j
		}
	}

	value, err := strconv.ParseFloat(term[start:end], 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
