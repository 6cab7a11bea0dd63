package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/SG-AI-Team/search-bar/core"
	"github.com/SG-AI-Team/search-bar/storage"
)

// SchoolRepository implements storage.SchoolRepository for BadgerDB.
type SchoolRepository struct {
	backend *Backend
}

var _ storage.SchoolRepository = (*SchoolRepository)(nil)

// NewSchoolRepository creates a new SchoolRepository.
func NewSchoolRepository(backend *Backend) (*SchoolRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &SchoolRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *SchoolRepository) Close() error {
	return nil
}

// PutSchoolRecords stores school records, replacing existing ones by ID.
func (r *SchoolRepository) PutSchoolRecords(ctx context.Context, records ...*core.SchoolRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if err := core.ValidateSchoolRecord(record); err != nil {
				return err
			}
			key := makeSchoolRecordKey(record.ID)
			if err := tx.Set(key, storage.MarshalSchoolRecord(record)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetSchoolRecord retrieves a school record by ID.
func (r *SchoolRepository) GetSchoolRecord(ctx context.Context, id core.ID) (*core.SchoolRecord, error) {
	var record *core.SchoolRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSchoolRecordKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			record, err = storage.UnmarshalSchoolRecord(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CountSchoolRecords returns the number of stored school records.
func (r *SchoolRepository) CountSchoolRecords(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(schoolRecordPrefix + ":")
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
