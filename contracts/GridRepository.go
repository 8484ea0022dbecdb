package contracts

// GridRepository persists raw cell inputs so the in-memory grid can be
// rebuilt on startup by replaying them through the cell store.
type GridRepository interface {
	SaveCell(reference string, rawText string) error
	DeleteCell(reference string) error
	Restore() ([]StoredCell, error)
}

type StoredCell struct {
	Reference string
	RawText   string
}
