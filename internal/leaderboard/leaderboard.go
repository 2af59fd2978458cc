// internal/leaderboard/leaderboard.go
//
// Ranked top-N list of finished runs.
//
// Rules shared by every Store implementation:
//   - Sorted by score descending, then earliest RecordedAt, then name.
//   - At most MaxEntries entries are kept.
//   - A name (case-insensitive) appears once and keeps its best score.
//   - Zero scores are not recorded.

package leaderboard

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/game"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// MaxEntries is the size of the board.
const MaxEntries = 10

var (
	ErrEmptyName    = errors.New("leaderboard: empty name")
	ErrInvalidToken = errors.New("leaderboard: invalid score token")
)

// Entry is one row on the board.
type Entry struct {
	Name       string           `json:"name"`
	Score      int              `json:"score"`
	Difficulty words.Difficulty `json:"difficulty"`
	Mode       game.Mode        `json:"mode"`
	RecordedAt time.Time        `json:"recordedAt"`
}

// Store persists the board.
// Implementations may be backed by memory, SQLite or a remote service.
type Store interface {
	// Submit records a finished run. Entries that do not make the board are
	// dropped without error.
	Submit(ctx context.Context, e Entry) error

	// Top returns up to n entries in rank order. n <= 0 or n > MaxEntries
	// means MaxEntries.
	Top(ctx context.Context, n int) ([]Entry, error)
}

// FromRun builds the entry for a finished run.
func FromRun(player *game.Player, run *game.Run, res game.RunResult) Entry {
	return Entry{
		Name:       player.Name,
		Score:      res.Score,
		Difficulty: run.Difficulty(),
		Mode:       run.Mode(),
		RecordedAt: time.Now().UTC(),
	}
}

// normalize validates e and fills defaults.
func normalize(e Entry) (Entry, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return e, ErrEmptyName
	}
	if e.Score < 0 {
		e.Score = 0
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	return e, nil
}

// limit clamps a requested board size.
func limit(n int) int {
	if n <= 0 || n > MaxEntries {
		return MaxEntries
	}
	return n
}

// rank sorts entries in board order.
func rank(list []Entry) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.Before(b.RecordedAt)
		}
		return a.Name < b.Name
	})
}

// merge applies one submission to a board and returns the new, trimmed board.
func merge(board []Entry, e Entry) []Entry {
	if e.Score == 0 {
		return board
	}
	out := make([]Entry, 0, len(board)+1)
	found := false
	for _, cur := range board {
		if strings.EqualFold(cur.Name, e.Name) {
			found = true
			if e.Score > cur.Score {
				cur = e
			}
		}
		out = append(out, cur)
	}
	if !found {
		out = append(out, e)
	}
	rank(out)
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}
