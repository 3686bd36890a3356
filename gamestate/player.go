package gamestate

import "fmt"

// Player represents the identity of a player in the game.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

var playerStr = [...]string{
	"PlayerOne",
	"PlayerTwo",
}

func (p Player) String() string {
	return playerStr[p]
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p != PlayerOne && p != PlayerTwo {
		panic(fmt.Sprintf("cannot call Opponent with player %v", p))
	}

	return 1 - p
}

// Number returns the 1-based seat number of the player, as shown to people.
func (p Player) Number() int {
	return int(p) + 1
}
