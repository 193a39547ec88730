// Package storage implements the file store backing attachment uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talenthub/accounts-api/internal/core/ports"
)

// publicPrefix is the URL path under which stored files are served back.
const publicPrefix = "/uploads/"

// LocalStore writes attachments into a single directory on disk and hands
// out /uploads/<name> path references.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the attachment under a generated name and returns its path
// reference. Names are <unix-nano>_<uuid><ext> so concurrent uploads of
// identically named files never collide.
func (s *LocalStore) Save(ctx context.Context, att *ports.Attachment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), safeExt(att.Filename))
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, att.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return publicPrefix + name, nil
}

// Remove deletes a stored file by its path reference. References outside
// the store and already-deleted files are ignored.
func (s *LocalStore) Remove(_ context.Context, ref string) error {
	name, ok := strings.CutPrefix(ref, publicPrefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// Dir returns the directory files are stored in, used to mount the static
// route.
func (s *LocalStore) Dir() string {
	return s.dir
}

// safeExt returns a lower-cased extension stripped of anything that is not
// a plain suffix. Uploaded filenames are untrusted input.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
