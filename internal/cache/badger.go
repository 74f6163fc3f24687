// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/cinematch/internal/logging"
)

// Badger persists cache entries in a shared BadgerDB under a key prefix, so
// several caches can live in one database.
type Badger struct {
	db     *badger.DB
	prefix string

	hits   atomic.Int64
	misses atomic.Int64
}

// OpenBadger opens (or creates) the BadgerDB directory at path.
func OpenBadger(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for cache: %w", err)
	}
	return db, nil
}

// NewBadger returns a cache storing keys as "<namespace>:<key>" in db.
func NewBadger(db *badger.DB, namespace string) *Badger {
	return &Badger{db: db, prefix: namespace + ":"}
}

// Get implements Cacher. Read failures count as misses.
func (b *Badger) Get(key string) ([]byte, bool) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(b.prefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", b.prefix+key).Msg("badger cache read failed")
		}
		b.misses.Add(1)
		return nil, false
	}
	b.hits.Add(1)
	return value, true
}

// Set implements Cacher. Write failures are logged and otherwise ignored.
func (b *Badger) Set(key string, value []byte) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(b.prefix+key), value)
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", b.prefix+key).Msg("badger cache write failed")
	}
}

// Len implements Cacher by counting keys under the namespace prefix.
func (b *Badger) Len() int {
	count := 0
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(b.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count
}

// GetStats implements Cacher.
func (b *Badger) GetStats() Stats {
	return Stats{
		Hits:    b.hits.Load(),
		Misses:  b.misses.Load(),
		Entries: b.Len(),
	}
}
