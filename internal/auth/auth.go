// ABOUTME: Credential store with bcrypt-hashed passwords.
// ABOUTME: One users.json mapping keyed by email; plain passwords are never persisted.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken means registration hit an already-registered email.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and password
	// mismatch, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const usersFile = "users.json"

type userEntry struct {
	Password string `json:"password"`
}

// Store manages registered users in a single JSON mapping file.
type Store struct {
	path string
}

// NewStore creates a credential store rooted at the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, usersFile)}
}

// Register adds a new user. Fails with ErrEmailTaken if the email is
// already registered.
func (s *Store) Register(email, password string) error {
	users, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := users[email]; exists {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	users[email] = userEntry{Password: string(hash)}
	return s.save(users)
}

// Login verifies an email/password pair against the stored hash.
func (s *Store) Login(email, password string) error {
	users, err := s.load()
	if err != nil {
		return err
	}

	entry, exists := users[email]
	if !exists {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(entry.Password), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Store) load() (map[string]userEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]userEntry{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", usersFile, err)
	}

	var users map[string]userEntry
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", usersFile, err)
	}
	if users == nil {
		users = map[string]userEntry{}
	}
	return users, nil
}

func (s *Store) save(users map[string]userEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", usersFile, err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", usersFile, err)
	}
	return nil
}
