package save

import (
	"context"
	"errors"

	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/game"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/hero"
	"github.com/AndersonAraujoX/rpg-eternal-sub000/internal/tavern"
)

// Store pairs a Repo with the snapshot codec. It satisfies game.Saver.
type Store struct {
	Repo      Repo
	Templates []hero.Hero
}

func NewStore(repo Repo) *Store {
	return &Store{Repo: repo, Templates: tavern.Templates()}
}

func (s *Store) Save(ctx context.Context, st *game.State) error {
	raw, err := Encode(st)
	if err != nil {
		return err
	}
	return s.Repo.Store(ctx, raw)
}

// Load returns the saved state. found is false when there is no save yet.
func (s *Store) Load(ctx context.Context) (st *game.State, found bool, err error) {
	raw, err := s.Repo.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	st, err = Decode(raw, s.Templates)
	if err != nil {
		return nil, true, err
	}
	return st, true, nil
}

// Raw returns the stored blob for export.
func (s *Store) Raw(ctx context.Context) ([]byte, error) {
	return s.Repo.Load(ctx)
}
