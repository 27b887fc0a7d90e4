// Package store persists the artifact history and the active session
// profile to durable key-value storage.
//
// Backend is a single bbolt file with one bucket per dataset. Values are
// JSON and every save is a whole-value overwrite; there is no schema
// versioning, so a value that fails to parse is treated as absent rather
// than as an error. Corruption degrades to data loss of that field, never
// to a failed load.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/flipart/flipart/internal/gallery"
	"github.com/flipart/flipart/internal/log"
	"github.com/flipart/flipart/internal/session"
)

const (
	galleryBucket = "gallery"
	sessionBucket = "session"

	historyKey = "history"
	profileKey = "profile"

	openTimeout = 2 * time.Second
)

// State is everything the store holds: the ordered artifact history and
// the optional session profile (nil = anonymous).
type State struct {
	History []gallery.Artifact
	Profile *session.Profile
}

// Store is the durable key-value persistence layer. Each operation opens
// the database, runs one transaction, and closes it again, so the file is
// never held open between workflow calls.
//
// Store is safe for concurrent use; bbolt serializes writers.
type Store struct {
	path   string
	logger log.Logger
}

// New creates a store writing to the given bbolt file path. The parent
// directory is created on first use.
func New(path string, logger log.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With("component", "store"),
	}
}

// Load reads the persisted state. Absent or malformed values load as empty
// history / absent profile. Only an I/O-level failure to open the database
// is returned as an error; callers typically log it and continue empty.
func (s *Store) Load() (State, error) {
	state := State{History: []gallery.Artifact{}}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return state, nil
	}

	db, err := s.open()
	if err != nil {
		return state, err
	}
	defer func() { _ = db.Close() }()

	err = db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket([]byte(galleryBucket)); b != nil {
			if raw := b.Get([]byte(historyKey)); len(raw) > 0 {
				var history []gallery.Artifact
				if jsonErr := json.Unmarshal(raw, &history); jsonErr != nil {
					s.logger.Warn("discarding unparseable history", "error", jsonErr)
				} else {
					state.History = history
				}
			}
		}
		if b := tx.Bucket([]byte(sessionBucket)); b != nil {
			if raw := b.Get([]byte(profileKey)); len(raw) > 0 {
				var profile session.Profile
				if jsonErr := json.Unmarshal(raw, &profile); jsonErr != nil {
					s.logger.Warn("discarding unparseable profile", "error", jsonErr)
				} else {
					state.Profile = &profile
				}
			}
		}
		return nil
	})
	if err != nil {
		return State{History: []gallery.Artifact{}}, fmt.Errorf("loading state: %w", err)
	}
	return state, nil
}

// SaveHistory overwrites the stored artifact history with the given list.
func (s *Store) SaveHistory(history []gallery.Artifact) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return s.put(galleryBucket, historyKey, raw)
}

// SaveProfile overwrites the stored session profile.
func (s *Store) SaveProfile(p *session.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return s.put(sessionBucket, profileKey, raw)
}

// ClearProfile removes the stored session profile. Called on sign-out.
func (s *Store) ClearProfile() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(profileKey))
	})
}

func (s *Store) put(bucket, key string, value []byte) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	err = db.Update(func(tx *bolt.Tx) error {
		b, createErr := tx.CreateBucketIfNotExists([]byte(bucket))
		if createErr != nil {
			return createErr
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", bucket, key, err)
	}

	s.logger.Debug("state persisted", "bucket", bucket, "key", key, "bytes", len(value))
	return nil
}

func (s *Store) open() (*bolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	return db, nil
}
