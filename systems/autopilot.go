package systems

import "github.com/parry-123/fish-eating-game/components"

// SteerParams configures the headless autopilot.
type SteerParams struct {
	DangerRadius  float32 // gap between bodies at which a bigger fish is a threat
	Width, Height float32
}

// fleeReach is how far ahead, in player steps, the flee target is placed.
const fleeReach = 10

// Steer picks a pointer target for the player: away from the closest threat
// inside the danger radius, otherwise toward the closest edible fish.
// Returns false when there is nothing worth reacting to.
func Steer(p components.Player, prey []Prey, params SteerParams) (components.Position, bool) {
	var (
		threat, food       *Prey
		threatGap, foodGap float32
	)

	for i := range prey {
		f := &prey[i]
		gap := distance(p.X, p.Y, f.Pos.X, f.Pos.Y) - p.Size - f.Size
		if f.Size >= p.Size {
			if gap < params.DangerRadius && (threat == nil || gap < threatGap) {
				threat, threatGap = f, gap
			}
			continue
		}
		if food == nil || gap < foodGap {
			food, foodGap = f, gap
		}
	}

	if threat != nil {
		dx := p.X - threat.Pos.X
		dy := p.Y - threat.Pos.Y
		angle := float32(0)
		if dx != 0 || dy != 0 {
			angle = atan2(dy, dx)
		}
		fx, fy := polar(angle, p.Speed*fleeReach)
		return components.Position{
			X: clampFloat(p.X+fx, 0, params.Width),
			Y: clampFloat(p.Y+fy, 0, params.Height),
		}, true
	}

	if food != nil {
		return food.Pos, true
	}
	return components.Position{}, false
}
