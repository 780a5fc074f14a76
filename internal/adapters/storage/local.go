package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// LocalStorage writes attachments as files under a fixed root directory.
type LocalStorage struct {
	fs   afero.Fs
	root string
}

var _ portsrepo.ObjectStorage = (*LocalStorage)(nil)

// NewLocalStorage creates root if needed. Pass afero.NewOsFs() in production.
func NewLocalStorage(fs afero.Fs, root string) (*LocalStorage, error) {
	if err := fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &LocalStorage{fs: fs, root: root}, nil
}

func validKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

// Put creates the file exclusively; an existing file under the same key is never overwritten.
func (s *LocalStorage) Put(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("invalid attachment key %q", key)
	}
	path := filepath.Join(s.root, key)

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("failed to close attachment file: %w", err)
	}
	return key, nil
}

func (s *LocalStorage) Delete(_ context.Context, ref string) error {
	if !validKey(ref) {
		return fmt.Errorf("invalid attachment reference %q", ref)
	}
	err := s.fs.Remove(filepath.Join(s.root, ref))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}
	return nil
}
