// internal/game/types.go
//
// Core type definitions for the stage engine.
// Defines:
//   - Result: outcome of one letter guess (hit/miss).
//   - State: stage state machine (awaiting guess → won/lost).
//   - Turn: what the presentation layer shows before each guess.
//   - Input / View: the collaborators a stage talks to.

package game

import (
	"context"
	"errors"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// ErrInvalidWord is returned when a word is too short for the difficulty's
// reveal margin.
var ErrInvalidWord = errors.New("game: word too short for difficulty")

// Result is the evaluation of a single guessed letter.
type Result string

const (
	Hit  Result = "hit"  // letter was hidden; every occurrence is now revealed
	Miss Result = "miss" // letter is absent or already revealed
)

// State is the stage state machine. Won and Lost are terminal.
type State string

const (
	AwaitingGuess State = "awaiting_guess"
	Won           State = "won"
	Lost          State = "lost"
)

// Turn is what a stage presents before asking for a letter.
type Turn struct {
	Stage       int    // stage number within the run (starts at 1)
	Board       string // Puzzle.Render output
	Description string // hint for the word
	Health      int
	Score       int
}

// Input obtains one guessed letter per call. Implementations block until a
// letter is available or ctx is done.
type Input interface {
	GuessLetter(ctx context.Context) (rune, error)
}

// View receives presentation events from a stage. Every method must return
// promptly; the engine does not wait on it.
type View interface {
	ShowTurn(t Turn)
	ShowGuess(letter rune, r Result)
	ShowOutcome(s State, e words.Entry)
}

type nopView struct{}

func (nopView) ShowTurn(Turn)                  {}
func (nopView) ShowGuess(rune, Result)         {}
func (nopView) ShowOutcome(State, words.Entry) {}
