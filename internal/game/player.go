package game

// MaxHealth is the health a player starts every run with.
const MaxHealth = 3

// Player is the health and score pool shared by every stage of a run.
type Player struct {
	Name   string
	Health int
	Score  int
}

// NewPlayer returns a player at full health with no score. An empty name
// becomes "Player".
func NewPlayer(name string) *Player {
	if name == "" {
		name = "Player"
	}
	return &Player{Name: name, Health: MaxHealth}
}

// IncrementScore awards one point for a cleared stage.
func (p *Player) IncrementScore() { p.Score++ }

// DecrementHealth removes one health point; health never drops below zero.
func (p *Player) DecrementHealth() {
	if p.Health > 0 {
		p.Health--
	}
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool { return p.Health > 0 }

// Reset restores full health and clears the score for a new run.
func (p *Player) Reset() {
	p.Health = MaxHealth
	p.Score = 0
}
