package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/SG-AI-Team/search-bar/core"
	"github.com/SG-AI-Team/search-bar/storage"
)

// ProgramRepository implements storage.ProgramRepository for BadgerDB.
type ProgramRepository struct {
	backend *Backend
}

var _ storage.ProgramRepository = (*ProgramRepository)(nil)

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(backend *Backend) (*ProgramRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &ProgramRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *ProgramRepository) Close() error {
	return nil
}

// PutProgramRecords stores program records, replacing existing ones by ID.
func (r *ProgramRepository) PutProgramRecords(ctx context.Context, records ...*core.ProgramRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateProgramRecord(record); err != nil {
				return err
			}
			key := makeProgramRecordKey(record.ID)
			if err := tx.Set(key, storage.MarshalProgramRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetProgramRecord retrieves a program record by ID.
func (r *ProgramRepository) GetProgramRecord(ctx context.Context, id core.ID) (*core.ProgramRecord, error) {
	var record *core.ProgramRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProgramRecordKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalProgramRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CountProgramRecords returns the number of stored program records.
func (r *ProgramRepository) CountProgramRecords(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(programRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}
