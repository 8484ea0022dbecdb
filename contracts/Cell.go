package contracts

import "errors"

// Cell is the editable/display pair the API and webhooks exchange:
// Value is the re-editable text, Result the text shown in the cell.
type Cell struct {
	Value  string `json:"value"`
	Result string `json:"result"`
}

type CellList map[string]*Cell

type GridSnapshot struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells CellList `json:"cells"`
}

// DisplayUpdate is the payload pushed to display collaborators after
// every mutation.
type DisplayUpdate struct {
	Reference string `json:"reference"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Text      string `json:"text"`
}

var CellOutOfRangeError = errors.New("cell is out of grid range")

var InvalidReferenceError = errors.New("invalid cell reference")
