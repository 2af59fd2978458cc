// internal/game/run.go
//
// Run controller: sequences stages for one game session.
//
// Modes:
//   - Classic:  clear ClassicStages stages to win.
//   - Survival: keep playing until health runs out.
//
// A run ends in exactly one way (RunEnd):
//   - EndCleared:   Classic target reached.
//   - EndDefeated:  health reached zero.
//   - EndExhausted: the word pool or the mode's word budget ran out. This
//     is a graceful stop, not a loss.
//
// Words too short for the difficulty are skipped.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// ClassicStages is the number of stages a Classic run must clear.
const ClassicStages = 5

// Mode selects how a run is sequenced.
type Mode string

const (
	Classic  Mode = "classic"
	Survival Mode = "survival"
)

// ParseMode accepts "classic"/"survival" (any case) and the menu digits.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "1":
		return Classic, nil
	case "survival", "2":
		return Survival, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// MaxWords is the number of words a run of this mode may play per
// difficulty.
func (m Mode) MaxWords() int {
	if m == Survival {
		return 50
	}
	return ClassicStages
}

// RunEnd describes why a run stopped.
type RunEnd string

const (
	EndCleared   RunEnd = "cleared"
	EndDefeated  RunEnd = "defeated"
	EndExhausted RunEnd = "exhausted"
)

// RunResult summarizes a finished run.
type RunResult struct {
	ID            string
	End           RunEnd
	Score         int
	StagesCleared int
	WordsPlayed   int
	SkippedWords  int
}

// Run owns the stage counter and plays stages until the mode's end
// condition is met.
type Run struct {
	ID         string
	bank       *words.Bank
	player     *Player
	difficulty words.Difficulty
	mode       Mode
	rng        *mrand.Rand
	counter    StageCounter
}

// NewRun prepares a run. A nil rng gets a time-seeded source.
func NewRun(bank *words.Bank, player *Player, d words.Difficulty, mode Mode, rng *mrand.Rand) *Run {
	if rng == nil {
		rng = random.TimeSeeded()
	}
	return &Run{
		ID:         randomID(),
		bank:       bank,
		player:     player,
		difficulty: d,
		mode:       mode,
		rng:        rng,
	}
}

// Mode returns the run's mode.
func (r *Run) Mode() Mode { return r.mode }

// Difficulty returns the difficulty words are drawn at.
func (r *Run) Difficulty() words.Difficulty { return r.difficulty }

// Stage is the number of the stage currently being played.
func (r *Run) Stage() int { return r.counter.Current() }

// Play resets the player and stage counter, then plays stages until the run
// ends. An input error stops the run and is returned with the partial result.
func (r *Run) Play(ctx context.Context, in Input, view View) (RunResult, error) {
	r.counter.Reset()
	r.player.Reset()
	res := RunResult{ID: r.ID}

	logger := log.With().
		Str("run", r.ID).
		Str("mode", string(r.mode)).
		Str("difficulty", r.difficulty.String()).
		Logger()
	logger.Info().Msg("run started")

	finish := func(end RunEnd) RunResult {
		res.End = end
		res.Score = r.player.Score
		res.StagesCleared = r.counter.Cleared()
		logger.Info().
			Str("end", string(end)).
			Int("score", res.Score).
			Int("stages", res.StagesCleared).
			Msg("run finished")
		return res
	}

	for {
		switch {
		case r.mode == Classic && r.counter.Cleared() >= ClassicStages:
			return finish(EndCleared), nil
		case !r.player.Alive():
			return finish(EndDefeated), nil
		case res.WordsPlayed >= r.mode.MaxWords():
			return finish(EndExhausted), nil
		}

		entry, err := r.bank.Draw(r.difficulty)
		if errors.Is(err, words.ErrPoolExhausted) {
			logger.Warn().Err(err).Msg("word pool exhausted")
			return finish(EndExhausted), nil
		}
		if err != nil {
			return r.partial(res), fmt.Errorf("draw word: %w", err)
		}

		puzzle, err := NewPuzzle(entry, r.difficulty, r.rng)
		if errors.Is(err, ErrInvalidWord) {
			logger.Warn().Err(err).Msg("skipping word")
			res.SkippedWords++
			continue
		}
		if err != nil {
			return r.partial(res), err
		}
		res.WordsPlayed++

		logger.Debug().
			Int("stage", r.counter.Current()).
			Int("word_len", len(puzzle.Word())).
			Int("hidden", puzzle.PickedPositions()).
			Msg("stage started")

		if _, err := NewStage(puzzle, &r.counter).Play(ctx, r.player, in, view); err != nil {
			return r.partial(res), err
		}
	}
}

// partial fills in the progress of a run that stopped without an end.
func (r *Run) partial(res RunResult) RunResult {
	res.Score = r.player.Score
	res.StagesCleared = r.counter.Cleared()
	return res
}

// randomID returns a compact 16-hex-char identifier for log correlation.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
