package infra

// storage.go — local document store. The original product kept attachments in
// a managed object storage bucket; here bytes live on disk under a configured
// root, addressed by a generated relative path so file names never collide.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocumentStore writes and reads attachment bytes under a root directory.
type DocumentStore struct {
	root string
}

func NewDocumentStore(root string) (*DocumentStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &DocumentStore{root: root}, nil
}

// Save streams src to disk and returns the relative storage path.
// The path is {asset_id}/{uuid}{ext} — the original file name is kept only
// in the database row.
func (s *DocumentStore) Save(assetID uuid.UUID, fileName string, src io.Reader) (string, int64, error) {
	rel := filepath.Join(assetID.String(), uuid.NewString()+strings.ToLower(filepath.Ext(fileName)))
	abs := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: create dir: %w", err)
	}

	dst, err := os.Create(abs)
	if err != nil {
		return "", 0, fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(abs)
		return "", 0, fmt.Errorf("storage: write file: %w", err)
	}
	return rel, n, nil
}

// Open returns a reader for a previously saved document.
func (s *DocumentStore) Open(rel string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, rel))
}

// Remove deletes the stored bytes; missing files are not an error.
func (s *DocumentStore) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
