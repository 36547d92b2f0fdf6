// Package storage keeps uploaded files under a single media root on the
// local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrOutsideRoot is returned for relative paths that escape the media root.
var ErrOutsideRoot = errors.New("storage: path escapes media root")

// Local stores files beneath root. Paths handed in and out are slash-separated
// and relative to root; they are what the database stores.
type Local struct {
	root string
}

// NewLocal creates the root directory if needed.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create media root: %w", err)
	}
	return &Local{root: root}, nil
}

// Root returns the media root on disk.
func (l *Local) Root() string { return l.root }

// Save copies r into dir/<name> and returns the relative path. An existing
// file with the same name gets a short random prefix instead of being replaced.
func (l *Local) Save(dir, name string, r io.Reader) (string, error) {
	name = sanitizeName(name)
	rel := path.Join(dir, name)
	full, err := l.abs(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		rel = path.Join(dir, uuid.NewString()[:8]+"_"+name)
		if full, err = l.abs(rel); err != nil {
			return "", err
		}
		f, err = os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}
	return rel, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (l *Local) Remove(rel string) error {
	full, err := l.abs(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", rel, err)
	}
	return nil
}

func (l *Local) abs(rel string) (string, error) {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
		}
	}
	clean := path.Clean("/" + rel)
	if clean == "/" {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}

// ProofDir is the directory for proof images of one financial record.
func ProofDir(recordID int64, day time.Time) string {
	return fmt.Sprintf("proofs/%d-%s", recordID, day.Format("20060102"))
}

// MemoDir is the directory for images of one memo.
func MemoDir(memoID int64) string {
	return fmt.Sprintf("memos/%d", memoID)
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return uuid.NewString()[:8]
	}
	return name
}
