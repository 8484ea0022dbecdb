package main

import "minisheet/contracts"

// NewDisplayUpdaterChain fans one display hook out to two collaborators.
// Nil links collapse away so callers can wire optional ones without
// guarding.
func NewDisplayUpdaterChain(first contracts.DisplayUpdater, second contracts.DisplayUpdater) contracts.DisplayUpdater {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(row int, col int, text string) {
		first(row, col, text)
		second(row, col, text)
	}
}
