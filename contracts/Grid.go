package contracts

// MaxColumns bounds the grid to single-letter column references.
const MaxColumns = 26

// MaxFormulaTerms caps how many terms a single formula may carry.
const MaxFormulaTerms = 10

type GridConfig struct {
	Rows int
	Cols int
}

type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type CellKind int

const (
	CellKindText CellKind = iota
	CellKindNumber
	CellKindFormula
)

// EvaluationState tracks the depth-first evaluation walk: a cell seen
// again while still Evaluating closes a reference cycle.
type EvaluationState int

const (
	NotEvaluated EvaluationState = iota
	Evaluating
	Evaluated
)

// Term is one additive piece of a formula: either a cell reference or
// a numeric constant, never both.
type Term struct {
	Ref      *Coordinate
	Constant float64
}

func (t Term) IsReference() bool {
	return t.Ref != nil
}

type Formula struct {
	Terms []Term
}

// GridCell holds the current content of one grid slot. The zero value
// is an empty text cell.
type GridCell struct {
	Kind    CellKind
	Text    string
	Number  float64
	Formula *Formula
	State   EvaluationState
}

type Grid struct {
	Rows  int
	Cols  int
	Cells [][]GridCell
}

func NewGrid(config GridConfig) *Grid {
	cells := make([][]GridCell, config.Rows)
	for row := range cells {
		cells[row] = make([]GridCell, config.Cols)
	}

	return &Grid{Rows: config.Rows, Cols: config.Cols, Cells: cells}
}

func (g *Grid) Contains(coord Coordinate) bool {
	return coord.Row >= 0 && coord.Row < g.Rows && coord.Col >= 0 && coord.Col < g.Cols
}

// Cell returns the addressed slot. Callers check Contains first.
func (g *Grid) Cell(coord Coordinate) *GridCell {
	return &g.Cells[coord.Row][coord.Col]
}

func (g *Grid) ResetEvaluationState() {
	for row := range g.Cells {
		for col := range g.Cells[row] {
			g.Cells[row][col].State = NotEvaluated
		}
	}
}
