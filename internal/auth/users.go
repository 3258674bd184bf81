package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	FullName     string    `json:"full_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileStore persists registered users as a flat JSON object keyed by
// lowercase email. All access goes through a mutex and writes replace the
// file atomically, so concurrent registrations cannot corrupt it.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create user store directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Create(email, password, fullName string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return User{}, err
	}

	key := normalizeEmail(email)
	if _, exists := users[key]; exists {
		return User{}, ErrUserExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}

	user := User{
		Email:        key,
		PasswordHash: hash,
		FullName:     fullName,
		CreatedAt:    time.Now().UTC(),
	}
	users[key] = user

	if err := s.save(users); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *FileStore) Get(email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return User{}, err
	}

	user, ok := users[normalizeEmail(email)]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// Authenticate verifies credentials and returns the stored user. A missing
// user and a wrong password both map to ErrInvalidCredentials so the login
// endpoint cannot be used to probe registered emails.
func (s *FileStore) Authenticate(email, password string) (User, error) {
	user, err := s.Get(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *FileStore) load() (map[string]User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]User), nil
		}
		return nil, fmt.Errorf("could not read user store: %w", err)
	}

	users := make(map[string]User)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &users); err != nil {
			return nil, fmt.Errorf("could not parse user store: %w", err)
		}
	}
	return users, nil
}

func (s *FileStore) save(users map[string]User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal user store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("could not write user store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("could not replace user store: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
