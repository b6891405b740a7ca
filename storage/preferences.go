package storage

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"entitled/models"
)

// PreferencesStorage persists per-user view preferences
type PreferencesStorage struct {
	db *bbolt.DB
}

// NewPreferencesStorage creates a preferences storage over an open
// database
func NewPreferencesStorage(db *bbolt.DB) *PreferencesStorage {
	return &PreferencesStorage{db: db}
}

// Get returns the saved preferences for a user, falling back to the
// defaults when the user has never saved any
func (s *PreferencesStorage) Get(userID string) (*models.Preferences, error) {
	var prefs *models.Preferences
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketPreferences)).Get([]byte(userID))
		if data == nil {
			return nil
		}
		var p models.Preferences
		if err := json.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("failed to unmarshal preferences: %v", err)
		}
		prefs = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return models.DefaultPreferences(userID), nil
	}
	return prefs, nil
}

// Save stores the preferences for a user, replacing any previous set
func (s *PreferencesStorage) Save(prefs *models.Preferences) error {
	if prefs.UserID == "" {
		return fmt.Errorf("preferences missing user id")
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %v", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketPreferences)).Put([]byte(prefs.UserID), data)
	})
}

// Delete removes the saved preferences for a user
func (s *PreferencesStorage) Delete(userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketPreferences)).Delete([]byte(userID))
	})
}
