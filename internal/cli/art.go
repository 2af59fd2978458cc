package cli

const title = `
 ____              _   _              _   _
| __ )  ___   ___ | |_| | ___  __ _  | | | | __ _ _ __   __ _  __ _ _ __ ___   ___
|  _ \ / _ \ / _ \| __| |/ _ \/ _' | | |_| |/ _' | '_ \ / _' |/ _' | '__/ _ \ / _ \
| |_) | (_) | (_) | |_| |  __/ (_| | |  _  | (_| | | | | (_| | (_| | | | (_) | (_) |
|____/ \___/ \___/ \__|_|\___|\__, | |_| |_|\__,_|_| |_|\__, |\__,_|_|  \___/ \___/
                              |___/                     |___/
`

const menu = `
  [1] Change name
  [2] Play
  [3] Leaderboard
  [4] Difficulty
  [5] Instructions
  [6] Quit
`

const modeMenu = `
  [1] Classic   clear 5 words to win
  [2] Survival  keep going until your health runs out
`

const difficultyMenu = `
  [1] Easy    at least two letters shown
  [2] Medium  at least one letter shown
  [3] Hard    the whole word may be hidden
`

const instructions = `
Every stage hides some letters of a word. Guess one letter per turn.

  * A hidden letter is revealed everywhere it appears in the word.
  * A letter that is not hidden costs one health, even if it is
    already on the board.
  * Reveal the whole word to clear the stage and score a point.
  * You start a run with 3 health. At zero the run is over.

Classic ends after 5 cleared stages. Survival goes on until you run
out of health or words. Good scores go on the leaderboard.
`

// kangarooStates is indexed by remaining health.
var kangarooStates = [...]string{
	`
     (\_/)     x_x
     ( x.x)    the kangaroo is out cold
    c(")(")
`,
	`
     (\_/)
     ( ;.;)    one hop left
    c(")(")
`,
	`
     (\_/)
     ( o.o)    steady
    c(")(")
`,
	`
     (\_/)
     ( ^.^)    full of bounce
    c(")(")
`,
}

func kangaroo(health int) string {
	if health < 0 {
		health = 0
	}
	if health >= len(kangarooStates) {
		health = len(kangarooStates) - 1
	}
	return kangarooStates[health]
}
