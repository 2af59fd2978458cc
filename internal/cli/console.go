package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/Jomszxcvb/BootlegHangaroo/internal/game"
	"github.com/Jomszxcvb/BootlegHangaroo/internal/words"
)

// Console is the terminal side of the game: it reads lines from an input
// stream and writes the board. It implements game.Input and game.View.
type Console struct {
	out   io.Writer
	lines chan string
	errc  chan error
}

// NewConsole starts reading lines from in. The reader goroutine exits when
// in reaches EOF or fails.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out:   out,
		lines: make(chan string),
		errc:  make(chan error, 1),
	}
	go c.read(in)
	return c
}

func (c *Console) read(in io.Reader) {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		c.lines <- sc.Text()
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	c.errc <- err
	close(c.lines)
}

// ReadLine prints prompt and waits for one line of input.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.readErr()
		}
		return strings.TrimSpace(line), nil
	}
}

// readErr returns the error that ended the input stream.
func (c *Console) readErr() error {
	select {
	case err := <-c.errc:
		// keep it available for later callers
		c.errc <- err
		return err
	default:
		return io.EOF
	}
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// GuessLetter asks until the player enters a line starting with a letter.
func (c *Console) GuessLetter(ctx context.Context) (rune, error) {
	for {
		line, err := c.ReadLine(ctx, "Guess a letter: ")
		if err != nil {
			return 0, err
		}
		for _, r := range line {
			if unicode.IsLetter(r) {
				return unicode.ToUpper(r), nil
			}
			break
		}
		c.Printf("Please enter a letter.\n")
	}
}

// ShowTurn prints the stage header, hint and board.
func (c *Console) ShowTurn(t game.Turn) {
	c.Printf("\nStage %d    Health %s    Score %d\n", t.Stage, hearts(t.Health), t.Score)
	c.Printf("%s", kangaroo(t.Health))
	if t.Description != "" {
		c.Printf("Hint: %s\n", t.Description)
	}
	c.Printf("\n    %s\n\n", t.Board)
}

// ShowGuess prints hit/miss feedback.
func (c *Console) ShowGuess(letter rune, r game.Result) {
	if r == game.Hit {
		c.Printf("Correct! %c is in the word.\n", letter)
		return
	}
	c.Printf("Wrong! %c is not hidden in the word.\n", letter)
}

// ShowOutcome prints the stage result and the full word.
func (c *Console) ShowOutcome(s game.State, e words.Entry) {
	switch s {
	case game.Won:
		c.Printf("\nYou got it: %s\n", spaced(e.Text))
	case game.Lost:
		c.Printf("%s", kangaroo(0))
		c.Printf("\nOut of health! The word was %s\n", spaced(e.Text))
	}
}

func hearts(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("<3 ", n-1) + "<3"
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
