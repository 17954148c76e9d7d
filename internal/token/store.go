package token

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/tracy/internal/shared"
)

// FileName is the name of the token file inside the configuration directory.
const FileName = "tracy.conf"

// Store reads and writes the token file.
type Store struct {
	path string
}

// NewStore creates a [Store] backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a [Store] for tracy.conf in the per-user configuration directory.
func DefaultStore() (*Store, error) {
	dir, err := shared.TracyDirs.ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(dir, FileName)), nil
}

// Open resolves the token store for the given override path, falling back to [DefaultStore].
func Open(override string) (*Store, error) {
	if override != "" {
		return NewStore(override), nil
	}
	return DefaultStore()
}

// Path returns the location of the token file.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates the parent directory and an empty token file when they are missing.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrConfigDir, err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return fmt.Errorf("%w: could not create %s: %v", shared.ErrTokenWrite, s.path, err)
	}
	return f.Close()
}

// Get returns the stored token.
func (s *Store) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrTokenRead, err)
	}
	return string(data), nil
}

// Save replaces the stored token.
func (s *Store) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrTokenWrite, err)
	}
	return nil
}
