package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jomszxcvb/BootlegHangaroo/assets"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/cli"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/config"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/daily"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/httpserver"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/leaderboard"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve(cfg)
		return
	}
	play(cfg)
}

// serve runs the leaderboard HTTP service.
func serve(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.Level(zerolog.InfoLevel))

	st, closeStore := openStore(cfg.LeaderboardDSN)
	defer closeStore()

	srv := httpserver.New(st, httpserver.Options{
		Secret:       []byte(cfg.LeaderboardSecret),
		ClientOrigin: cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Str("dsn", cfg.LeaderboardDSN).Msg("starting leaderboard server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// play runs the interactive game on the terminal.
func play(cfg config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(cfg.Level(zerolog.WarnLevel))

	load := bankLoader(cfg)
	// Fail before the menu if the word list is unusable.
	if _, err := load(random.TimeSeeded()); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	var st leaderboard.Store
	if cfg.LeaderboardURL != "" {
		st = leaderboard.NewRemote(cfg.LeaderboardURL, []byte(cfg.LeaderboardSecret))
	} else {
		var closeStore func()
		st, closeStore = openStore(cfg.LeaderboardDSN)
		defer closeStore()
	}

	newRand := random.TimeSeeded
	if cfg.Daily {
		key := daily.For(time.Now(), cfg.DailySalt)
		log.Info().Str("date", key.Date()).Msg("daily challenge")
		newRand = key.Rand
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(cli.Config{
		Console:    cli.NewConsole(os.Stdin, os.Stdout),
		LoadBank:   load,
		Store:      st,
		Difficulty: cfg.Difficulty,
		NewRand:    newRand,
	})
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("game exited")
		stop()
		os.Exit(1)
	}
}

// bankLoader picks the word source: a TOML file, a directory of
// Easy/Medium/Hard.txt files, or the embedded list.
func bankLoader(cfg config.Config) cli.BankLoader {
	return func(rng *rand.Rand) (*words.Bank, error) {
		b := words.NewBank(rng)
		var err error
		switch {
		case cfg.WordsFile != "":
			err = b.LoadTOMLFile(cfg.WordsFile)
		case cfg.WordsDir != "":
			err = b.LoadText(os.DirFS(cfg.WordsDir))
		default:
			err = loadEmbedded(b)
		}
		if err != nil {
			return nil, err
		}
		b.Shuffle()
		return b, nil
	}
}

func loadEmbedded(b *words.Bank) error {
	f, err := assets.OpenWords()
	if err != nil {
		return err
	}
	defer f.Close()
	return b.LoadTOML(f)
}

// openStore opens the SQLite leaderboard, falling back to memory so a
// broken database never blocks play.
func openStore(dsn string) (leaderboard.Store, func()) {
	db, err := leaderboard.OpenSQLite(dsn)
	if err != nil {
		log.Warn().Err(err).Str("dsn", dsn).Msg("leaderboard database unavailable, scores kept in memory")
		return leaderboard.NewMemoryStore(), func() {}
	}
	return db, func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("close leaderboard database")
		}
	}
}
