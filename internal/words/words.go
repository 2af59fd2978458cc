// internal/words/words.go
//
// Word bank for the stage engine.
//
// Responsibilities:
//   - Hold one pool of (word, description) entries per difficulty.
//   - Shuffle every pool independently once after loading.
//   - Dispense words without repetition: Draw removes the front entry.
//   - Report exhaustion explicitly (ErrPoolExhausted) instead of handing
//     back an empty word.
//
// Loading lives in load.go (TOML and plain-text sources).
//
// Constraints:
//   • Words are letters only and stored upper-cased.
//   • Nothing refills a pool implicitly; callers use Reset for a fresh deck.

package words

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
)

var (
	// ErrDataLoad wraps every failure to read or parse a word source.
	ErrDataLoad = errors.New("words: data load failed")
	// ErrPoolExhausted is returned by Draw when a difficulty has no words left.
	ErrPoolExhausted = errors.New("words: pool exhausted")
)

// Entry is one immutable word pool entry.
type Entry struct {
	Text        string     // upper-case letters only
	Description string     // hint shown next to the puzzle
	Difficulty  Difficulty // pool the entry belongs to
}

// NewEntry normalizes text to upper case and validates it.
func NewEntry(text, description string, d Difficulty) (Entry, error) {
	w := strings.ToUpper(strings.TrimSpace(text))
	if w == "" {
		return Entry{}, errors.New("empty word")
	}
	if !isAlpha(w) {
		return Entry{}, fmt.Errorf("word %q: letters only", text)
	}
	if !d.Valid() {
		return Entry{}, fmt.Errorf("word %q: invalid difficulty %d", text, int(d))
	}
	return Entry{Text: w, Description: strings.TrimSpace(description), Difficulty: d}, nil
}

// Bank owns the per-difficulty pools. It is not safe for concurrent use; a
// run draws from one bank on one goroutine.
type Bank struct {
	rng    *rand.Rand
	loaded [numDifficulties][]Entry // everything ever added, in load order
	pools  [numDifficulties][]Entry // remaining draw order
}

// NewBank returns an empty bank drawing randomness from rng. A nil rng gets a
// time-seeded PCG source.
func NewBank(rng *rand.Rand) *Bank {
	if rng == nil {
		rng = random.TimeSeeded()
	}
	return &Bank{rng: rng}
}

// Add appends a validated entry to its difficulty pool.
func (b *Bank) Add(e Entry) error {
	if !e.Difficulty.Valid() {
		return fmt.Errorf("add %q: invalid difficulty %d", e.Text, int(e.Difficulty))
	}
	b.loaded[e.Difficulty] = append(b.loaded[e.Difficulty], e)
	b.pools[e.Difficulty] = append(b.pools[e.Difficulty], e)
	return nil
}

// Shuffle randomizes the draw order of every pool independently.
func (b *Bank) Shuffle() {
	for i := range b.pools {
		p := b.pools[i]
		b.rng.Shuffle(len(p), func(x, y int) { p[x], p[y] = p[y], p[x] })
	}
}

// Draw removes and returns the first entry of the pool for d.
func (b *Bank) Draw(d Difficulty) (Entry, error) {
	if !d.Valid() {
		return Entry{}, fmt.Errorf("draw: invalid difficulty %d", int(d))
	}
	p := b.pools[d]
	if len(p) == 0 {
		return Entry{}, fmt.Errorf("draw %s: %w", d, ErrPoolExhausted)
	}
	e := p[0]
	b.pools[d] = p[1:]
	return e, nil
}

// Reset restores every pool to its loaded contents and reshuffles.
func (b *Bank) Reset() {
	for i := range b.loaded {
		b.pools[i] = append([]Entry(nil), b.loaded[i]...)
	}
	b.Shuffle()
}

// Len reports how many entries remain in the pool for d.
func (b *Bank) Len(d Difficulty) int {
	if !d.Valid() {
		return 0
	}
	return len(b.pools[d])
}

// Stats returns the loaded entry count per difficulty.
func (b *Bank) Stats() map[Difficulty]int {
	out := make(map[Difficulty]int, numDifficulties)
	for _, d := range Difficulties() {
		out[d] = len(b.loaded[d])
	}
	return out
}

// isAlpha reports whether s is all upper-case ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
