// Package components defines ECS components for the game.
package components

// Organism bundles identity and appearance of a non-player fish.
type Organism struct {
	ID    uint32 // spawn sequence within the session; higher = spawned later
	Color uint8  // palette index
}

// Player is the single player-controlled fish. It lives outside the ECS world
// so the fish movement pass never touches it.
type Player struct {
	Position
	Rotation
	Body
	Swim
}

// NewPlayer creates a player fish at (x, y) facing right.
func NewPlayer(x, y, size, speed float32) Player {
	return Player{
		Position: Position{X: x, Y: y},
		Body:     Body{Size: size},
		Swim:     Swim{Speed: speed},
	}
}
