package contracts

type CellSerializer interface {
	Marshal(reference string, rawText string) []byte
	Unmarshal(data []byte) (reference string, rawText string, err error)
}
