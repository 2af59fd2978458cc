// internal/leaderboard/memory.go
//
// In-memory implementation of the Store interface.
// Used by tests and when no database is configured.
//
// Characteristics:
//   - Keeps the ranked board in a slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package leaderboard

import (
	"context"
	"sync"
)

// memory is an in-memory slice-based Store implementation.
type memory struct {
	mu    sync.RWMutex // guards board
	board []Entry      // always ranked and trimmed
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Submit merges e into the board.
func (m *memory) Submit(ctx context.Context, e Entry) error {
	e, err := normalize(e)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board = merge(m.board, e)
	return nil
}

// Top returns a copy of the first n entries.
func (m *memory) Top(ctx context.Context, n int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n = limit(n)
	if n > len(m.board) {
		n = len(m.board)
	}
	return append([]Entry(nil), m.board[:n]...), nil
}
