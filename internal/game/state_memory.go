package game

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNoState  = errors.New("game state not initialized")
	ErrNilState = errors.New("state cannot be nil")
)

// MemoryStateRepo holds the live state. Callers always work on copies; every
// Update bumps the revision.
type MemoryStateRepo struct {
	mu    sync.RWMutex
	state *State
	rev   uint64
}

func NewMemoryStateRepo(initial *State) *MemoryStateRepo {
	if initial == nil {
		initial = NewState()
	}
	return &MemoryStateRepo{state: initial.Clone(), rev: 1}
}

func (r *MemoryStateRepo) Get(_ context.Context) (*State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return nil, ErrNoState
	}
	return r.state.Clone(), nil
}

func (r *MemoryStateRepo) Update(_ context.Context, s *State) error {
	if s == nil {
		return ErrNilState
	}
	c := s.Clone()
	r.mu.Lock()
	r.state = c
	r.rev++
	r.mu.Unlock()
	return nil
}

// GetRevision returns a copy of the state and the revision it belongs to,
// read under one lock.
func (r *MemoryStateRepo) GetRevision(_ context.Context) (*State, uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return nil, 0, ErrNoState
	}
	return r.state.Clone(), r.rev, nil
}
