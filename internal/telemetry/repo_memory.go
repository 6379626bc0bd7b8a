package telemetry

import (
	"encoding/json"
	"sync"
	"time"
)

// DefaultCapacity bounds a MemoryRepository.
const DefaultCapacity = 10_000

// Repository stores telemetry events
type Repository interface {
	RecordEvent(eventType EventType, metadata EventMetadata) error
	GetEvents(since time.Time, eventTypes []EventType) ([]Event, error)
	Clear() error
}

// MemoryRepository keeps the most recent events in a ring; once full, each
// new event overwrites the oldest.
type MemoryRepository struct {
	mu     sync.RWMutex
	ring   []Event
	head   int // index of the oldest event
	size   int
	nextID int
	now    func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return NewMemoryRepositorySize(DefaultCapacity)
}

func NewMemoryRepositorySize(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryRepository{
		ring:   make([]Event, capacity),
		nextID: 1,
		now:    time.Now,
	}
}

// WithClock stamps events with now instead of the wall clock.
func (r *MemoryRepository) WithClock(now func() time.Time) *MemoryRepository {
	r.mu.Lock()
	r.now = now
	r.mu.Unlock()
	return r
}

func (r *MemoryRepository) RecordEvent(eventType EventType, metadata EventMetadata) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ev := Event{ID: r.nextID, Type: eventType, Timestamp: r.now(), Metadata: string(raw)}
	r.nextID++
	if r.size < len(r.ring) {
		r.ring[(r.head+r.size)%len(r.ring)] = ev
		r.size++
		return nil
	}
	r.ring[r.head] = ev
	r.head = (r.head + 1) % len(r.ring)
	return nil
}

// at returns the i-th oldest retained event. Callers hold the lock.
func (r *MemoryRepository) at(i int) Event {
	return r.ring[(r.head+i)%len(r.ring)]
}

// GetEvents returns events at or after since, oldest first. An empty type
// list matches every type.
func (r *MemoryRepository) GetEvents(since time.Time, eventTypes []EventType) ([]Event, error) {
	want := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		want[t] = true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Event, 0)
	for i := 0; i < r.size; i++ {
		ev := r.at(i)
		if ev.Timestamp.Before(since) {
			continue
		}
		if len(want) > 0 && !want[ev.Type] {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// Recent returns up to n of the newest events, newest first.
func (r *MemoryRepository) Recent(n int) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n = min(n, r.size)
	out := make([]Event, 0, max(n, 0))
	for i := r.size - 1; i >= r.size-n; i-- {
		out = append(out, r.at(i))
	}
	return out
}

func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}

func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.ring)
	r.head, r.size, r.nextID = 0, 0, 1
	return nil
}
