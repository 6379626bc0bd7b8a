package save

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/config"
)

var ErrNotFound = errors.New("no save found")

// Repo stores raw save blobs for one slot.
type Repo interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, raw []byte) error
	Close() error
}

// Open returns the backend named by cfg.Backend.
func Open(cfg config.SaveConfig) (Repo, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileRepo(cfg.DataDir, cfg.Slot)
	case "sqlite":
		return OpenSQLite(filepath.Join(cfg.DataDir, "saves.db"), cfg.Slot)
	}
	return nil, fmt.Errorf("unknown save backend %q", cfg.Backend)
}
