// internal/cli/app.go
//
// Text menu loop around the game.
// Responsibilities:
//   - Ask for the player name, then loop over the main menu.
//   - Start Classic / Survival runs on a freshly loaded word bank.
//   - Submit finished runs to the leaderboard and show the board.
//   - Change difficulty and print instructions.
//
// EOF on the input ends the loop cleanly; a cancelled context ends it with
// the context error.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/game"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/leaderboard"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// BankLoader returns a loaded, shuffled word bank drawing from rng.
type BankLoader func(rng *rand.Rand) (*words.Bank, error)

// Config wires the app to its collaborators.
type Config struct {
	Console    *Console
	LoadBank   BankLoader
	Store      leaderboard.Store // nil disables the leaderboard
	Difficulty words.Difficulty
	// NewRand returns the random source for one run. Nil means time-seeded.
	NewRand func() *rand.Rand
}

// App is the interactive game session.
type App struct {
	con        *Console
	loadBank   BankLoader
	store      leaderboard.Store
	newRand    func() *rand.Rand
	difficulty words.Difficulty
	player     *game.Player
}

// New builds an App from cfg.
func New(cfg Config) *App {
	newRand := cfg.NewRand
	if newRand == nil {
		newRand = random.TimeSeeded
	}
	return &App{
		con:        cfg.Console,
		loadBank:   cfg.LoadBank,
		store:      cfg.Store,
		newRand:    newRand,
		difficulty: cfg.Difficulty,
		player:     game.NewPlayer(""),
	}
}

// Run shows the title, asks for a name and serves the main menu until the
// player quits or input ends.
func (a *App) Run(ctx context.Context) error {
	err := a.run(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (a *App) run(ctx context.Context) error {
	a.con.Printf("%s%s", title, kangaroo(game.MaxHealth))
	if err := a.askName(ctx); err != nil {
		return err
	}

	for {
		a.con.Printf("\nPlayer: %s    Difficulty: %s\n%s", a.player.Name, a.difficulty, menu)
		line, err := a.con.ReadLine(ctx, "Enter: ")
		if err != nil {
			return err
		}
		choice, ok := match(line, mainOptions)
		if !ok {
			a.con.Printf("Invalid choice!\n")
			continue
		}

		switch choice {
		case "name":
			err = a.askName(ctx)
		case "play":
			err = a.play(ctx)
		case "leaderboard":
			err = a.showLeaderboard(ctx)
		case "difficulty":
			err = a.askDifficulty(ctx)
		case "instructions":
			a.con.Printf("%s", instructions)
		case "quit":
			a.con.Printf("Thanks for playing, %s!\n", a.player.Name)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) askName(ctx context.Context) error {
	name, err := a.con.ReadLine(ctx, "Enter player name: ")
	if err != nil {
		return err
	}
	a.player = game.NewPlayer(name)
	return nil
}

func (a *App) askDifficulty(ctx context.Context) error {
	for {
		a.con.Printf("%s", difficultyMenu)
		line, err := a.con.ReadLine(ctx, "Select: ")
		if err != nil {
			return err
		}
		key, ok := match(line, difficultyOptions)
		if !ok {
			a.con.Printf("Invalid choice!\n")
			continue
		}
		d, err := words.ParseDifficulty(key)
		if err != nil {
			return err
		}
		a.difficulty = d
		a.con.Printf("Difficulty set to %s.\n", d)
		return nil
	}
}

func (a *App) askMode(ctx context.Context) (game.Mode, error) {
	for {
		a.con.Printf("%s", modeMenu)
		line, err := a.con.ReadLine(ctx, "Select [1] or [2]: ")
		if err != nil {
			return "", err
		}
		key, ok := match(line, modeOptions)
		if !ok {
			a.con.Printf("Invalid choice!\n")
			continue
		}
		return game.ParseMode(key)
	}
}

// play runs one Classic or Survival session and records the score.
func (a *App) play(ctx context.Context) error {
	mode, err := a.askMode(ctx)
	if err != nil {
		return err
	}

	rng := a.newRand()
	bank, err := a.loadBank(rng)
	if err != nil {
		// The bank loaded at startup, so this is a changed file on disk.
		log.Error().Err(err).Msg("reload word bank")
		a.con.Printf("Could not load the word list: %v\n", err)
		return nil
	}

	run := game.NewRun(bank, a.player, a.difficulty, mode, rng)
	res, err := run.Play(ctx, a.con, a.con)
	if err != nil {
		return err
	}

	switch res.End {
	case game.EndCleared:
		a.con.Printf("\nCongratulations! You cleared all %d stages.\n", game.ClassicStages)
	case game.EndDefeated:
		a.con.Printf("\nGame over.\n")
	case game.EndExhausted:
		a.con.Printf("\nNo more %s words left. Well played!\n", a.difficulty)
	}
	a.con.Printf("Final score: %d\n", res.Score)

	a.record(ctx, leaderboard.FromRun(a.player, run, res))
	return nil
}

// record submits e; failures are reported but never end the session.
func (a *App) record(ctx context.Context, e leaderboard.Entry) {
	if a.store == nil || e.Score == 0 {
		return
	}
	if err := a.store.Submit(ctx, e); err != nil {
		log.Warn().Err(err).Str("name", e.Name).Msg("submit score")
		a.con.Printf("Could not save your score: %v\n", err)
		return
	}
	a.con.Printf("Score saved to the leaderboard.\n")
}

func (a *App) showLeaderboard(ctx context.Context) error {
	if a.store == nil {
		a.con.Printf("The leaderboard is disabled.\n")
		return nil
	}
	entries, err := a.store.Top(ctx, leaderboard.MaxEntries)
	if err != nil {
		log.Warn().Err(err).Msg("load leaderboard")
		a.con.Printf("Could not load the leaderboard: %v\n", err)
		return nil
	}
	a.con.Printf("\nLeaderboard\n")
	if len(entries) == 0 {
		a.con.Printf("  No scores yet.\n")
		return nil
	}
	for i, e := range entries {
		a.con.Printf("%s\n", formatRow(i+1, e))
	}
	return nil
}

func formatRow(rank int, e leaderboard.Entry) string {
	return fmt.Sprintf("  %2d. %-16s %5d  %-6s %s", rank, e.Name, e.Score, e.Difficulty, e.Mode)
}
