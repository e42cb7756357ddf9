package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File хранит токен в файле с правами 0600.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile создаёт файловое хранилище. Файл создаётся при первой записи.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Token() (string, error) {
	const op = "tokenstore.File.Token"
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *File) SetToken(token string) error {
	const op = "tokenstore.File.SetToken"
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (f *File) ClearToken() error {
	const op = "tokenstore.File.ClearToken"
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
