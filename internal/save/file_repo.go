package save

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileRepo keeps one JSON file per slot under the data dir.
type FileRepo struct {
	mu   sync.RWMutex
	path string
}

func NewFileRepo(dataDir, slot string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	slot = strings.TrimSpace(slot)
	if slot == "" {
		slot = "default"
	}
	return &FileRepo{path: filepath.Join(dataDir, "save-"+slot+".json")}, nil
}

func (r *FileRepo) Path() string { return r.path }

func (r *FileRepo) Load(ctx context.Context) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Store writes through a temp file so a crash never leaves half a save.
func (r *FileRepo) Store(ctx context.Context, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *FileRepo) Close() error { return nil }
