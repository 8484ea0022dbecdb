package main

import (
	"fmt"
	"minisheet/contracts"

	"go.etcd.io/bbolt"
)

var gridBucket = []byte("grid")

// GridRepository keeps the raw input text of every occupied cell, keyed
// by canonical reference. The in-memory grid stays the source of truth;
// the repository only exists so a restart can replay the inputs.
type GridRepository struct {
	db         *bbolt.DB
	serializer contracts.CellSerializer
}

func NewGridRepository(db *bbolt.DB, serializer contracts.CellSerializer) *GridRepository {
	return &GridRepository{db: db, serializer: serializer}
}

func (r *GridRepository) SaveCell(reference string, rawText string) error {
	return r.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(gridBucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(reference), r.serializer.Marshal(reference, rawText))
	})
}

func (r *GridRepository) DeleteCell(reference string) error {
	return r.db.Batch(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(gridBucket)
		if bucket == nil {
			return nil
		}

		return bucket.Delete([]byte(reference))
	})
}

func (r *GridRepository) Restore() (stored []contracts.StoredCell, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(gridBucket)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			reference, rawText, recordErr := r.serializer.Unmarshal(v)
			if recordErr != nil {
				return fmt.Errorf("record %s: %w", string(k), recordErr)
			}

			stored = append(stored, contracts.StoredCell{Reference: reference, RawText: rawText})
		}

		return nil
	})

	return
}
