package contracts

type CellStore interface {
	SetCellValue(row int, col int, text string) (*Cell, error)
	ClearCell(row int, col int) (*Cell, error)
	GetTextualValue(row int, col int) (string, error)
	GetCell(row int, col int) (*Cell, error)
	Snapshot() *GridSnapshot
	Config() GridConfig
}
