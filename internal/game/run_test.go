package game

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/random"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// repeatInput always guesses the same letter.
type repeatInput rune

func (r repeatInput) GuessLetter(ctx context.Context) (rune, error) {
	return rune(r), ctx.Err()
}

func bankOf(t *testing.T, d words.Difficulty, texts ...string) *words.Bank {
	t.Helper()
	b := words.NewBank(random.New(7))
	for _, w := range texts {
		if err := b.Add(entry(t, w, d)); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}
	b.Shuffle()
	return b
}

func repeated(w string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = w
	}
	return out
}

func TestClassicRunCleared(t *testing.T) {
	bank := bankOf(t, words.Hard, repeated("AAA", 8)...)
	player := NewPlayer("roo")
	run := NewRun(bank, player, words.Hard, Classic, random.New(1))

	res, err := run.Play(context.Background(), repeatInput('a'), nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.End != EndCleared {
		t.Fatalf("end=%s want=cleared", res.End)
	}
	if res.Score != ClassicStages || res.StagesCleared != ClassicStages {
		t.Fatalf("score=%d stages=%d want %d", res.Score, res.StagesCleared, ClassicStages)
	}
	if got := bank.Len(words.Hard); got != 8-ClassicStages {
		t.Fatalf("bank left=%d want=%d", got, 8-ClassicStages)
	}
	if run.Stage() != ClassicStages+1 {
		t.Fatalf("stage=%d want=%d", run.Stage(), ClassicStages+1)
	}
}

func TestRunDefeated(t *testing.T) {
	bank := bankOf(t, words.Hard, repeated("AAA", 3)...)
	player := NewPlayer("roo")
	run := NewRun(bank, player, words.Hard, Survival, random.New(1))

	res, err := run.Play(context.Background(), repeatInput('z'), nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.End != EndDefeated {
		t.Fatalf("end=%s want=defeated", res.End)
	}
	if res.Score != 0 || player.Health != 0 {
		t.Fatalf("score=%d health=%d want 0/0", res.Score, player.Health)
	}
	if res.WordsPlayed != 1 {
		t.Fatalf("words played=%d want=1", res.WordsPlayed)
	}
}

func TestSurvivalEndsWhenPoolRunsOut(t *testing.T) {
	bank := bankOf(t, words.Hard, repeated("AAA", 4)...)
	run := NewRun(bank, NewPlayer("roo"), words.Hard, Survival, random.New(2))

	res, err := run.Play(context.Background(), repeatInput('A'), nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.End != EndExhausted {
		t.Fatalf("end=%s want=exhausted", res.End)
	}
	if res.Score != 4 {
		t.Fatalf("score=%d want=4", res.Score)
	}
}

func TestSurvivalWordBudget(t *testing.T) {
	bank := bankOf(t, words.Hard, repeated("AAA", 60)...)
	run := NewRun(bank, NewPlayer("roo"), words.Hard, Survival, random.New(3))

	res, err := run.Play(context.Background(), repeatInput('A'), nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.End != EndExhausted || res.WordsPlayed != Survival.MaxWords() {
		t.Fatalf("end=%s played=%d want exhausted/%d", res.End, res.WordsPlayed, Survival.MaxWords())
	}
}

func TestRunSkipsInvalidWords(t *testing.T) {
	bank := words.NewBank(random.New(4))
	for _, w := range append(repeated("AB", 3), repeated("AAA", 5)...) {
		_ = bank.Add(entry(t, w, words.Easy))
	}
	run := NewRun(bank, NewPlayer("roo"), words.Easy, Classic, random.New(4))

	res, err := run.Play(context.Background(), repeatInput('A'), nil)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if res.End != EndCleared {
		t.Fatalf("end=%s want=cleared", res.End)
	}
	if res.SkippedWords != 3 {
		t.Fatalf("skipped=%d want=3", res.SkippedWords)
	}
}

func TestRunResetsCounterAndPlayer(t *testing.T) {
	bank := bankOf(t, words.Hard, repeated("AAA", 5)...)
	player := NewPlayer("roo")
	player.Score = 42
	player.Health = 1
	run := NewRun(bank, player, words.Hard, Classic, random.New(5))

	if _, err := run.Play(context.Background(), repeatInput('A'), nil); err != nil {
		t.Fatalf("first Play: %v", err)
	}
	bank.Reset()
	res, err := run.Play(context.Background(), repeatInput('A'), nil)
	if err != nil {
		t.Fatalf("second Play: %v", err)
	}
	if res.Score != ClassicStages || player.Health != MaxHealth {
		t.Fatalf("score=%d health=%d want %d/%d", res.Score, player.Health, ClassicStages, MaxHealth)
	}
}

func TestRunInputErrorReturnsPartialResult(t *testing.T) {
	bank := bankOf(t, words.Hard, repeated("AAA", 5)...)
	run := NewRun(bank, NewPlayer("roo"), words.Hard, Classic, random.New(6))

	res, err := run.Play(context.Background(), script("AA"), nil)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("err=%v want io.EOF", err)
	}
	if res.End != "" || res.StagesCleared != 2 {
		t.Fatalf("result=%+v want no end and 2 stages", res)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"classic": Classic, "2": Survival, " SURVIVAL ": Survival} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q)=%q,%v want=%q", in, got, err, want)
		}
	}
	if _, err := ParseMode("arcade"); err == nil {
		t.Fatalf("expected error")
	}
}
