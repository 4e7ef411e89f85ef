package core

// PlayerID identifies one of the two seats. The zero value means nobody.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Opponent returns the other seat. NoPlayer has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "nobody"
	}
}
