package words

import (
	"fmt"
	"strings"
)

// Difficulty tags a word pool entry and selects how much of a word is hidden.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

const numDifficulties = 3

// Difficulties lists every difficulty in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Valid reports whether d is one of Easy, Medium or Hard.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ParseDifficulty accepts the names "easy", "medium", "hard" (any case) and
// the menu digits "1", "2", "3".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// UnmarshalText lets TOML documents and env vars carry difficulties by name.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}
