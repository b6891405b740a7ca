package storage

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
	"golang.org/x/crypto/bcrypt"

	"entitled/models"
)

var ErrUserNotFound = errors.New("user not found")

// storedUser is the on-disk form of a user. The password hash lives
// only here; models.User never carries it.
type storedUser struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

// UserStorage manages user records in the workspace database
type UserStorage struct {
	db *bbolt.DB
}

// NewUserStorage creates a user storage over an open database
func NewUserStorage(db *bbolt.DB) *UserStorage {
	return &UserStorage{db: db}
}

// CreateUser creates a new user with a bcrypt-hashed password
func (s *UserStorage) CreateUser(user *models.User, password string) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.Role == "" {
		user.Role = "user"
	}
	if user.Language == "" {
		user.Language = "en"
	}
	if user.Theme == "" {
		user.Theme = "light"
	}

	record := storedUser{User: *user, PasswordHash: string(hashedPassword)}

	return s.db.Update(func(tx *bbolt.Tx) error {
		emails := tx.Bucket([]byte(bucketUserEmails))
		if existing := emails.Get([]byte(user.Email)); existing != nil {
			return fmt.Errorf("email %s already registered", user.Email)
		}
		if err := saveUserRecord(tx, &record); err != nil {
			return err
		}
		return emails.Put([]byte(user.Email), []byte(user.ID))
	})
}

// GetUser retrieves a user by ID
func (s *UserStorage) GetUser(userID string) (*models.User, error) {
	var record *storedUser
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		record, err = loadUserRecord(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	user := record.User
	return &user, nil
}

// GetUserByEmail retrieves a user through the email index
func (s *UserStorage) GetUserByEmail(email string) (*models.User, error) {
	var record *storedUser
	err := s.db.View(func(tx *bbolt.Tx) error {
		id := tx.Bucket([]byte(bucketUserEmails)).Get([]byte(email))
		if id == nil {
			return ErrUserNotFound
		}
		var err error
		record, err = loadUserRecord(tx, string(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	user := record.User
	return &user, nil
}

// GetUserByUsername scans for a user with the given username
func (s *UserStorage) GetUserByUsername(username string) (*models.User, error) {
	var found *models.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketUsers)).ForEach(func(_, v []byte) error {
			var record storedUser
			if err := json.Unmarshal(v, &record); err != nil {
				return nil
			}
			if record.Username == username {
				user := record.User
				found = &user
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrUserNotFound
	}
	return found, nil
}

// UpdateUser updates an existing user, preserving its creation time and
// password hash
func (s *UserStorage) UpdateUser(user *models.User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		existing, err := loadUserRecord(tx, user.ID)
		if err != nil {
			return err
		}

		user.UpdatedAt = time.Now()
		user.CreatedAt = existing.CreatedAt

		record := storedUser{User: *user, PasswordHash: existing.PasswordHash}
		return saveUserRecord(tx, &record)
	})
}

// UpdatePassword replaces a user's password hash
func (s *UserStorage) UpdatePassword(userID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %v", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		record, err := loadUserRecord(tx, userID)
		if err != nil {
			return err
		}
		record.PasswordHash = string(hashedPassword)
		record.UpdatedAt = time.Now()
		return saveUserRecord(tx, record)
	})
}

// VerifyPassword checks a password against the stored hash
func (s *UserStorage) VerifyPassword(userID, password string) error {
	var hash string
	err := s.db.View(func(tx *bbolt.Tx) error {
		record, err := loadUserRecord(tx, userID)
		if err != nil {
			return err
		}
		hash = record.PasswordHash
		return nil
	})
	if err != nil {
		return err
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// DeleteUser removes a user and its email index entry
func (s *UserStorage) DeleteUser(userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		record, err := loadUserRecord(tx, userID)
		if err != nil {
			return err
		}
		if err := tx.Bucket([]byte(bucketUsers)).Delete([]byte(userID)); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketUserEmails)).Delete([]byte(record.Email))
	})
}

// ListUsers retrieves all users
func (s *UserStorage) ListUsers() ([]*models.User, error) {
	var users []*models.User
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketUsers)).ForEach(func(_, v []byte) error {
			var record storedUser
			if err := json.Unmarshal(v, &record); err != nil {
				return nil
			}
			user := record.User
			users = append(users, &user)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateLastLogin stamps the last login time
func (s *UserStorage) UpdateLastLogin(userID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		record, err := loadUserRecord(tx, userID)
		if err != nil {
			return err
		}
		record.LastLoginAt = time.Now()
		record.UpdatedAt = time.Now()
		return saveUserRecord(tx, record)
	})
}

func saveUserRecord(tx *bbolt.Tx, record *storedUser) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %v", err)
	}
	return tx.Bucket([]byte(bucketUsers)).Put([]byte(record.ID), data)
}

func loadUserRecord(tx *bbolt.Tx, userID string) (*storedUser, error) {
	data := tx.Bucket([]byte(bucketUsers)).Get([]byte(userID))
	if data == nil {
		return nil, ErrUserNotFound
	}
	var record storedUser
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %v", err)
	}
	return &record, nil
}

// GenerateSecureToken generates a cryptographically secure random token
func GenerateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", bytes), nil
}
