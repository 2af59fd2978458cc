package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/game"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/leaderboard"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

func TestMatchMenu(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "2", want: "play", ok: true},
		{in: "  PLAY ", want: "play", ok: true},
		{in: "scores", want: "leaderboard", ok: true},
		{in: "leaderbord", want: "leaderboard", ok: true},
		{in: "instrctions", want: "instructions", ok: true},
		{in: "how  to   play", want: "instructions", ok: true},
		{in: "quitt", want: "quit", ok: true},
		{in: "9", ok: false},
		{in: "", ok: false},
		{in: "xyzzy", ok: false},
	}
	for _, tc := range tests {
		got, ok := match(tc.in, mainOptions)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("match(%q)=%q,%v want=%q,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchModeAndDifficulty(t *testing.T) {
	if got, ok := match("survivl", modeOptions); !ok || got != "survival" {
		t.Fatalf("match(survivl)=%q,%v", got, ok)
	}
	if got, ok := match("3", difficultyOptions); !ok || got != "hard" {
		t.Fatalf("match(3)=%q,%v", got, ok)
	}
	if got, ok := match("meduim", difficultyOptions); !ok || got != "medium" {
		t.Fatalf("match(meduim)=%q,%v", got, ok)
	}
}

func TestGuessLetterSkipsNonLetters(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(strings.NewReader("7\n\n  \nkoala\n"), &out)
	got, err := con.GuessLetter(context.Background())
	if err != nil {
		t.Fatalf("GuessLetter: %v", err)
	}
	if got != 'K' {
		t.Fatalf("letter=%q want=K", got)
	}
	if n := strings.Count(out.String(), "Please enter a letter."); n != 3 {
		t.Fatalf("re-prompted %d times want 3:\n%s", n, out.String())
	}
}

func TestGuessLetterEOF(t *testing.T) {
	con := NewConsole(strings.NewReader(""), io.Discard)
	if _, err := con.GuessLetter(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v want io.EOF", err)
	}
	if _, err := con.ReadLine(context.Background(), ""); !errors.Is(err, io.EOF) {
		t.Fatalf("second read err=%v want io.EOF", err)
	}
}

func TestReadLineHonoursContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	con := NewConsole(pr, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := con.ReadLine(ctx, "> "); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v want deadline exceeded", err)
	}
}

func TestShowTurnRendersBoard(t *testing.T) {
	var out bytes.Buffer
	con := NewConsole(strings.NewReader(""), &out)
	con.ShowTurn(game.Turn{Stage: 2, Board: "K _ A L A", Description: "Tree dweller", Health: 2, Score: 1})
	for _, want := range []string{"Stage 2", "Score 1", "Hint: Tree dweller", "K _ A L A", "<3 <3"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func aaaBank(n int) BankLoader {
	return func(rng *rand.Rand) (*words.Bank, error) {
		b := words.NewBank(rng)
		for i := 0; i < n; i++ {
			e, err := words.NewEntry("aaa", "three of a kind", words.Hard)
			if err != nil {
				return nil, err
			}
			_ = b.Add(e)
		}
		b.Shuffle()
		return b, nil
	}
}

func TestAppClassicSessionRecordsScore(t *testing.T) {
	script := strings.Join([]string{
		"roo",    // name
		"4", "3", // difficulty → hard
		"play", "classic",
		"a", "a", "a", "a", "a",
		"leaderboard",
		"quit",
	}, "\n") + "\n"

	var out bytes.Buffer
	store := leaderboard.NewMemoryStore()
	app := New(Config{
		Console:    NewConsole(strings.NewReader(script), &out),
		LoadBank:   aaaBank(8),
		Store:      store,
		Difficulty: words.Easy,
		NewRand:    func() *rand.Rand { return random.New(1) },
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, _ := store.Top(context.Background(), 0)
	if len(got) != 1 || got[0].Name != "roo" || got[0].Score != game.ClassicStages || got[0].Difficulty != words.Hard {
		t.Fatalf("board=%+v", got)
	}
	for _, want := range []string{"Congratulations", "Final score: 5", "Score saved", " 1. roo", "Thanks for playing, roo!"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAppSurvivalDefeatNoScore(t *testing.T) {
	script := "joey\n2\n2\nz\nz\nz\n6\n"
	var out bytes.Buffer
	store := leaderboard.NewMemoryStore()
	app := New(Config{
		Console:    NewConsole(strings.NewReader(script), &out),
		LoadBank:   aaaBank(3),
		Store:      store,
		Difficulty: words.Hard,
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Game over.") || !strings.Contains(out.String(), "The word was A A A") {
		t.Fatalf("missing defeat output:\n%s", out.String())
	}
	if got, _ := store.Top(context.Background(), 0); len(got) != 0 {
		t.Fatalf("zero score recorded: %+v", got)
	}
}

func TestAppEOFEndsCleanly(t *testing.T) {
	app := New(Config{
		Console:  NewConsole(strings.NewReader("roo\n2\n"), io.Discard),
		LoadBank: aaaBank(3),
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestAppInvalidChoice(t *testing.T) {
	var out bytes.Buffer
	app := New(Config{
		Console:  NewConsole(strings.NewReader("roo\nbanana\n3\n6\n"), &out),
		LoadBank: aaaBank(1),
	})
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid choice!") || !strings.Contains(out.String(), "leaderboard is disabled") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
