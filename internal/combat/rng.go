package combat

import (
	"math/rand"
	"sync"
)

// RNG is the randomness the combat code needs. *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// LockedRNG makes a *rand.Rand safe to share between the tick loop and
// request handlers.
type LockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRNG(seed int64) *LockedRNG {
	return &LockedRNG{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *LockedRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// FixedRNG is deterministic and test-friendly: it replays Floats and Ints in
// order and falls back to Float (default 0.5) and 0 once they run out.
type FixedRNG struct {
	mu     sync.Mutex
	Floats []float64
	Ints   []int
	Float  float64
	fi, ii int
}

func (f *FixedRNG) Float64() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fi < len(f.Floats) {
		v := f.Floats[f.fi]
		f.fi++
		return v
	}
	if f.Float == 0 {
		return 0.5
	}
	return f.Float
}

func (f *FixedRNG) Intn(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 {
		return 0
	}
	if f.ii < len(f.Ints) {
		v := f.Ints[f.ii]
		f.ii++
		return v % n
	}
	return 0
}
