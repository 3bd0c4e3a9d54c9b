package components

// Body holds the physical size of a fish. Size acts as a radius for
// collisions and grows as the player eats.
type Body struct {
	Size float32
}

// Swim holds a fish's scalar speed in canvas units per tick.
type Swim struct {
	Speed float32
}
