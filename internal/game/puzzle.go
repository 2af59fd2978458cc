package game

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"unicode"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// Placeholder is rendered in place of every hidden letter.
const Placeholder = '_'

// RevealMargin is the number of letters guaranteed to stay visible when a
// puzzle is built at difficulty d.
func RevealMargin(d words.Difficulty) int {
	switch d {
	case words.Easy:
		return 2
	case words.Medium:
		return 1
	default:
		return 0
	}
}

// Puzzle tracks which letters of one word are still hidden.
//
// The hidden set is keyed by letter: guessing a letter once reveals every
// occurrence of it. Letters only ever leave the set.
type Puzzle struct {
	entry  words.Entry
	word   []rune
	hidden map[rune][]int // letter -> positions picked as hidden
	picked int            // number of positions picked at construction
}

// NewPuzzle hides a random subset of entry's letter positions. The subset
// size is drawn uniformly from [1, len(word) - RevealMargin(d)] and the
// positions are sampled without replacement.
func NewPuzzle(entry words.Entry, d words.Difficulty, rng *rand.Rand) (*Puzzle, error) {
	word := []rune(strings.ToUpper(entry.Text))
	margin := RevealMargin(d)
	if len(word) <= margin {
		return nil, fmt.Errorf("%w: %q has %d letters, %s needs more than %d",
			ErrInvalidWord, entry.Text, len(word), d, margin)
	}
	if rng == nil {
		rng = random.TimeSeeded()
	}

	k := 1 + rng.IntN(len(word)-margin)
	positions := rng.Perm(len(word))[:k]
	sort.Ints(positions)

	hidden := make(map[rune][]int, k)
	for _, i := range positions {
		hidden[word[i]] = append(hidden[word[i]], i)
	}
	return &Puzzle{entry: entry, word: word, hidden: hidden, picked: k}, nil
}

// Entry returns the word pool entry behind the puzzle.
func (p *Puzzle) Entry() words.Entry { return p.entry }

// Word returns the upper-cased word.
func (p *Puzzle) Word() string { return string(p.word) }

// Render returns the board: revealed letters as-is, hidden letters as '_',
// separated by single spaces.
func (p *Puzzle) Render() string {
	var b strings.Builder
	for i, r := range p.word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if _, ok := p.hidden[r]; ok {
			b.WriteRune(Placeholder)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Guess clears letter from the hidden set. Matching ignores case. A letter
// that is not hidden (never in the word or already revealed) is a Miss.
func (p *Puzzle) Guess(letter rune) Result {
	letter = unicode.ToUpper(letter)
	if _, ok := p.hidden[letter]; !ok {
		return Miss
	}
	delete(p.hidden, letter)
	return Hit
}

// Solved reports whether every hidden letter has been guessed.
func (p *Puzzle) Solved() bool { return len(p.hidden) == 0 }

// Hidden returns the letters still hidden, sorted.
func (p *Puzzle) Hidden() []rune {
	out := make([]rune, 0, len(p.hidden))
	for r := range p.hidden {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PickedPositions is how many letter positions were chosen as hidden when
// the puzzle was built.
func (p *Puzzle) PickedPositions() int { return p.picked }
