package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized cell record")

const cellRecordVersion = byte(1)

type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

// Marshal frames a record as: version byte, uint16 reference length,
// reference bytes, raw text bytes.
func (s *CellBinarySerializer) Marshal(reference string, rawText string) []byte {
	referenceBytes := []byte(reference)

	record := make([]byte, 0, 3+len(referenceBytes)+len(rawText))
	record = append(record, cellRecordVersion)
	record = binary.LittleEndian.AppendUint16(record, uint16(len(referenceBytes)))
	record = append(record, referenceBytes...)
	record = append(record, []byte(rawText)...)
	return record
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (reference string, rawText string, err error) {
	if len(data) < 3 {
		return "", "", fmt.Errorf("%w: record shorter than its header (data: %v)", SerializerError, data)
	}

	if data[0] != cellRecordVersion {
		return "", "", fmt.Errorf("%w: unknown record version %d", SerializerError, data[0])
	}

	referenceLength := int(binary.LittleEndian.Uint16(data[1:]))
	if len(data) < referenceLength+3 {
		return "", "", fmt.Errorf("%w: reference length %d exceeds record size %d", SerializerError, referenceLength, len(data))
	}

	reference = string(data[3 : referenceLength+3])
	rawText = string(data[referenceLength+3:])
	return
}
