package systems

import "github.com/parry-123/fish-eating-game/components"

// Swim advances a non-player fish by its speed along its heading, then wraps
// it to the opposite edge once it leaves the canvas by more than its size.
func Swim(pos *components.Position, rot components.Rotation, body components.Body, swim components.Swim, width, height float32) {
	dx, dy := polar(rot.Heading, swim.Speed)
	pos.X += dx
	pos.Y += dy

	if pos.X < -body.Size {
		pos.X = width + body.Size
	}
	if pos.X > width+body.Size {
		pos.X = -body.Size
	}
	if pos.Y < -body.Size {
		pos.Y = height + body.Size
	}
	if pos.Y > height+body.Size {
		pos.Y = -body.Size
	}
}
