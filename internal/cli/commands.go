package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// option is one selectable menu entry.
type option struct {
	key     string   // canonical value returned to the caller
	digit   string   // menu number
	aliases []string // accepted words, first one is the display name
}

var mainOptions = []option{
	{key: "name", digit: "1", aliases: []string{"name", "rename", "player"}},
	{key: "play", digit: "2", aliases: []string{"play", "start", "new game"}},
	{key: "leaderboard", digit: "3", aliases: []string{"leaderboard", "scores", "board", "top"}},
	{key: "difficulty", digit: "4", aliases: []string{"difficulty", "level"}},
	{key: "instructions", digit: "5", aliases: []string{"instructions", "help", "how to play"}},
	{key: "quit", digit: "6", aliases: []string{"quit", "exit", "bye"}},
}

var modeOptions = []option{
	{key: "classic", digit: "1", aliases: []string{"classic"}},
	{key: "survival", digit: "2", aliases: []string{"survival", "endless"}},
}

var difficultyOptions = []option{
	{key: "easy", digit: "1", aliases: []string{"easy"}},
	{key: "medium", digit: "2", aliases: []string{"medium", "normal"}},
	{key: "hard", digit: "3", aliases: []string{"hard"}},
}

// match resolves raw input to an option key. Digits and aliases match
// exactly; otherwise the closest alias within the typo limit wins. A tie
// between different options is no match.
func match(raw string, opts []option) (string, bool) {
	in := strings.Join(strings.Fields(strings.ToLower(raw)), " ")
	if in == "" {
		return "", false
	}
	for _, o := range opts {
		if in == o.digit {
			return o.key, true
		}
		for _, a := range o.aliases {
			if in == a {
				return o.key, true
			}
		}
	}

	if len(in) < 3 {
		return "", false
	}
	best, bestDist, tied := "", -1, false
	for _, o := range opts {
		for _, a := range o.aliases {
			dist := levenshtein.ComputeDistance(in, a)
			if dist > typoLimit(len(a)) {
				continue
			}
			switch {
			case bestDist < 0 || dist < bestDist:
				best, bestDist, tied = o.key, dist, false
			case dist == bestDist && o.key != best:
				tied = true
			}
		}
	}
	if bestDist < 0 || tied {
		return "", false
	}
	return best, true
}

// typoLimit is the edit distance tolerated for an alias of the given length.
func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
