// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/assessrec/catalog"
	"github.com/poiesic/assessrec/core"
)

// Repository implements catalog.Repository for BadgerDB. Assessments are
// stored under BigEndian position keys so iteration returns source order,
// with a key index for direct lookups.
type Repository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ catalog.Repository = (*Repository)(nil)

// NewRepository creates a catalog repository over the backend.
func NewRepository(backend *Backend) (*Repository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &Repository{
		backend: backend,
		logger:  slog.Default().With("component", "catalog-repository"),
	}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *Repository) Close() error {
	return nil
}

// PutCatalog replaces the stored catalog with the given one. The previous
// snapshot is dropped in the same transaction, so readers never see a mix.
func (r *Repository) PutCatalog(ctx context.Context, cat *catalog.Catalog) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := dropPrefix(tx, assessmentPosPrefix+":"); err != nil {
			return err
		}
		if err := dropPrefix(tx, assessmentKeyPrefix+":"); err != nil {
			return err
		}

		items := cat.Items()
		for i := range items {
			value := catalog.MarshalAssessment(&items[i])
			if err := tx.Set(makePositionKey(i), value); err != nil {
				return err
			}
			if err := tx.Set(makeKeyIndexKey(items[i].Key), positionValue(i)); err != nil {
				return err
			}
		}

		r.logger.Info("catalog stored", "items", len(items))
		return tx.Commit()
	}, true)
}

// GetAssessment retrieves a single assessment by key.
func (r *Repository) GetAssessment(ctx context.Context, key string) (core.Assessment, error) {
	var result core.Assessment

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeKeyIndexKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return catalog.ErrNotFound
		}
		if err != nil {
			return err
		}

		var position uint64
		if err := item.Value(func(val []byte) error {
			position = positionFromValue(val)
			return nil
		}); err != nil {
			return err
		}

		record, err := tx.Get(makePositionKey(int(position)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return catalog.ErrNotFound
		}
		if err != nil {
			return err
		}

		return record.Value(func(val []byte) error {
			a, err := catalog.UnmarshalAssessment(val)
			if err != nil {
				return err
			}
			result = *a
			return nil
		})
	}, false)

	return result, err
}

// ListAssessments returns all stored assessments in source order.
func (r *Repository) ListAssessments(ctx context.Context) ([]core.Assessment, error) {
	var items []core.Assessment

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentPosPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				a, err := catalog.UnmarshalAssessment(val)
				if err != nil {
					return err
				}
				items = append(items, *a)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	return items, err
}

// Count returns the number of stored assessments.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentPosPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	return count, err
}

// dropPrefix deletes every key under a prefix within the transaction.
func dropPrefix(tx *badger.Txn, prefix string) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
