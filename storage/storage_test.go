package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitled/models"
)

func testDB(t *testing.T) *UserStorage {
	t.Helper()
	db, err := InitDB(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserStorage(db)
}

func TestCreateAndGetUser(t *testing.T) {
	users := testDB(t)

	user := &models.User{Username: "rprimero", Email: "r.primero@scalablelegal.com"}
	require.NoError(t, users.CreateUser(user, "secret"))
	require.NotEmpty(t, user.ID)
	assert.Equal(t, "user", user.Role)

	got, err := users.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "rprimero", got.Username)

	byEmail, err := users.GetUserByEmail("r.primero@scalablelegal.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestDuplicateEmailRejected(t *testing.T) {
	users := testDB(t)

	require.NoError(t, users.CreateUser(&models.User{Username: "a", Email: "x@example.com"}, "pw"))
	err := users.CreateUser(&models.User{Username: "b", Email: "x@example.com"}, "pw")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	users := testDB(t)

	user := &models.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, users.CreateUser(user, "correct-horse"))

	assert.NoError(t, users.VerifyPassword(user.ID, "correct-horse"))
	assert.Error(t, users.VerifyPassword(user.ID, "wrong"))

	require.NoError(t, users.UpdatePassword(user.ID, "new-pass"))
	assert.NoError(t, users.VerifyPassword(user.ID, "new-pass"))
	assert.Error(t, users.VerifyPassword(user.ID, "correct-horse"))
}

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	users := testDB(t)

	user := &models.User{Username: "bob", Email: "bob@example.com"}
	require.NoError(t, users.CreateUser(user, "hunter2"))

	got, err := users.GetUser(user.ID)
	require.NoError(t, err)

	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "password_hash")
	assert.NotContains(t, string(encoded), "$2a$")
}

func TestGetUserNotFound(t *testing.T) {
	users := testDB(t)
	_, err := users.GetUser("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUserClearsEmailIndex(t *testing.T) {
	users := testDB(t)

	user := &models.User{Username: "gone", Email: "gone@example.com"}
	require.NoError(t, users.CreateUser(user, "pw"))
	require.NoError(t, users.DeleteUser(user.ID))

	_, err := users.GetUserByEmail("gone@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Email is free for re-registration
	assert.NoError(t, users.CreateUser(&models.User{Username: "again", Email: "gone@example.com"}, "pw"))
}

func TestPreferencesRoundTrip(t *testing.T) {
	db, err := InitDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()
	prefs := NewPreferencesStorage(db)

	// Unsaved user gets the defaults
	got, err := prefs.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "All Emails", got.DefaultCategory)
	assert.Equal(t, 50, got.EmailsPerPage)

	got.Theme = "dark"
	got.OpenTabIDs = []string{"1", "2"}
	require.NoError(t, prefs.Save(got))

	again, err := prefs.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "dark", again.Theme)
	assert.Equal(t, []string{"1", "2"}, again.OpenTabIDs)

	require.NoError(t, prefs.Delete("u1"))
	fresh, err := prefs.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "light", fresh.Theme)
}

func TestSessionStorageExpiry(t *testing.T) {
	db, err := InitDB(t.TempDir())
	require.NoError(t, err)
	defer db.Close()
	sessions := NewSessionStorage(db)

	require.NoError(t, sessions.Set("k", []byte("v"), 0))
	val, err := sessions.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, sessions.Set("short", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	val, err = sessions.Get("short")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, sessions.Reset())
	val, err = sessions.Get("k")
	require.NoError(t, err)
	assert.Nil(t, val)
}
