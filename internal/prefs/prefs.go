// Package prefs persists user preferences (theme mode, locale, reduced
// motion) as string key-value pairs in a local BoltDB file — the terminal
// analog of browser local storage. No caller depends on value formats.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketPrefs = []byte("preferences")

// Store implements domain.PreferenceStore backed by BoltDB with a
// write-through in-memory cache.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex

	cache map[string]string
}

// Open creates or opens the preference store under dir. An empty dir
// selects memory-only mode: preferences live for the session but nothing
// touches disk.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return &Store{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "vitrine.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open preference db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPrefs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, cache: make(map[string]string)}
	s.warmCache()
	return s, nil
}

// warmCache loads all stored preferences up front; the set is tiny.
func (s *Store) warmCache() {
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPrefs)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			s.cache[string(k)] = string(v)
			return nil
		})
	})
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.cache[key]
	return v, ok
}

// Set stores a value, writing through to disk when persistent.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	s.cache[key] = value
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPrefs).Put([]byte(key), []byte(value))
	})
}

// Delete removes a key.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPrefs).Delete([]byte(key))
	})
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
