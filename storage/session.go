package storage

import (
	"encoding/json"
	"time"

	"go.etcd.io/bbolt"
)

// SessionStorage adapts the workspace database to Fiber's session
// storage interface so sessions survive restarts
type SessionStorage struct {
	db *bbolt.DB
}

type sessionEntry struct {
	Value   []byte    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// NewSessionStorage creates a session storage over an open database
func NewSessionStorage(db *bbolt.DB) *SessionStorage {
	return &SessionStorage{db: db}
}

// Get returns a session value, or nil when missing or expired
func (s *SessionStorage) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketSessions)).Get([]byte(key))
		if data == nil {
			return nil
		}
		var entry sessionEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil
		}
		if !entry.Expires.IsZero() && time.Now().After(entry.Expires) {
			return nil
		}
		value = entry.Value
		return nil
	})
	return value, err
}

// Set stores a session value with an optional expiry
func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	entry := sessionEntry{Value: val}
	if exp > 0 {
		entry.Expires = time.Now().Add(exp)
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Put([]byte(key), data)
	})
}

// Delete removes a session value
func (s *SessionStorage) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketSessions)).Delete([]byte(key))
	})
}

// Reset drops every stored session
func (s *SessionStorage) Reset() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketSessions)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketSessions))
		return err
	})
}

// Close is a no-op; the database is owned by the caller
func (s *SessionStorage) Close() error { return nil }
