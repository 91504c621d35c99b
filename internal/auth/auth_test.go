// ABOUTME: Tests for the credential store.
// ABOUTME: Covers registration, duplicate emails, login, and hash-only persistence.
package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Register("lifter@example.com", "hunter2"))
	assert.NoError(t, store.Login("lifter@example.com", "hunter2"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Register("lifter@example.com", "hunter2"))
	err := store.Register("lifter@example.com", "other-password")

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Register("lifter@example.com", "hunter2"))

	err := store.Login("lifter@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.Login("nobody@example.com", "hunter2")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPlainPasswordNeverPersisted(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Register("lifter@example.com", "hunter2"))

	data, err := os.ReadFile(filepath.Join(dir, "users.json"))
	require.NoError(t, err)

	assert.False(t, strings.Contains(string(data), "hunter2"))
	assert.True(t, strings.Contains(string(data), "lifter@example.com"))
}
