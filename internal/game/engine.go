// internal/game/engine.go
//
// Stage engine: drives one puzzle to a win or a loss against one player.
// Responsibilities:
//   - Present the board and hint before each guess.
//   - Read one letter per turn from the Input collaborator.
//   - Apply the guess: a miss costs one health point.
//   - Track state transitions: awaiting guess → won/lost.
//
// Notes:
//   - A win awards one point and advances the run's stage counter.
//   - A loss leaves score and stage counter untouched.
//   - The counter belongs to the Run and is passed in by pointer, so stages
//     never share hidden state with each other.

package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// StageCounter numbers stages within a run. The zero value is stage 1.
type StageCounter struct {
	cleared int
}

// Current is the number of the stage being played.
func (c *StageCounter) Current() int { return c.cleared + 1 }

// Cleared is how many stages have been won.
func (c *StageCounter) Cleared() int { return c.cleared }

// Advance moves to the next stage after a win.
func (c *StageCounter) Advance() { c.cleared++ }

// Reset returns to stage 1 for a new run.
func (c *StageCounter) Reset() { c.cleared = 0 }

// Stage plays a single puzzle.
type Stage struct {
	puzzle  *Puzzle
	counter *StageCounter
	state   State
}

// NewStage binds a puzzle to the run's stage counter.
func NewStage(p *Puzzle, counter *StageCounter) *Stage {
	if counter == nil {
		counter = &StageCounter{}
	}
	return &Stage{puzzle: p, counter: counter, state: AwaitingGuess}
}

// State reports the stage state.
func (s *Stage) State() State { return s.state }

// Puzzle returns the puzzle being played.
func (s *Stage) Puzzle() *Puzzle { return s.puzzle }

// Play runs turns until the puzzle is solved or player health reaches zero.
// Exactly one of Won or Lost is returned per stage. An input error ends the
// stage early; the state then stays AwaitingGuess and the error is returned.
func (s *Stage) Play(ctx context.Context, player *Player, in Input, view View) (State, error) {
	if s.state != AwaitingGuess {
		return s.state, errors.New("stage already finished")
	}
	if view == nil {
		view = nopView{}
	}

	for player.Alive() && !s.puzzle.Solved() {
		view.ShowTurn(Turn{
			Stage:       s.counter.Current(),
			Board:       s.puzzle.Render(),
			Description: s.puzzle.Entry().Description,
			Health:      player.Health,
			Score:       player.Score,
		})

		letter, err := in.GuessLetter(ctx)
		if err != nil {
			return s.state, fmt.Errorf("read guess: %w", err)
		}

		res := s.puzzle.Guess(letter)
		if res == Miss {
			player.DecrementHealth()
		}
		view.ShowGuess(letter, res)
	}

	if s.puzzle.Solved() {
		s.state = Won
		player.IncrementScore()
		s.counter.Advance()
	} else {
		s.state = Lost
	}

	log.Debug().
		Str("state", string(s.state)).
		Int("stage", s.counter.Current()).
		Int("health", player.Health).
		Int("score", player.Score).
		Msg("stage finished")

	view.ShowOutcome(s.state, s.puzzle.Entry())
	return s.state, nil
}
