package systems

import (
	"math"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/config"
)

// Prey is a snapshot of one non-player fish taken after movement.
type Prey struct {
	Entity ecs.Entity
	ID     uint32
	Pos    components.Position
	Size   float32
}

// GrowthParams holds eating rewards.
type GrowthParams struct {
	Increment    float32
	LevelDivisor float32
}

// GrowthParamsFromConfig converts the growth config section.
func GrowthParamsFromConfig(c config.GrowthConfig) GrowthParams {
	return GrowthParams{
		Increment:    float32(c.Increment),
		LevelDivisor: float32(c.LevelDivisor),
	}
}

// GrowthResult describes what happened to the player this tick.
type GrowthResult struct {
	Eaten       []Prey // in processing order
	ScoreGained int
	Lethal      bool
	Killer      Prey // valid when Lethal
}

// ResolveGrowth checks every fish against the player, most recently spawned
// first. A smaller fish is eaten: score += floor(size) and the player grows
// by Increment before the next fish is tested. The first fish at least as big
// as the player is lethal and ends processing; later fish are left untouched.
// prey is reordered in place.
func ResolveGrowth(p *components.Player, prey []Prey, params GrowthParams) GrowthResult {
	sort.Slice(prey, func(i, j int) bool {
		return prey[i].ID > prey[j].ID
	})

	var res GrowthResult
	for _, f := range prey {
		if !Overlaps(p.Position, p.Size, f.Pos, f.Size) {
			continue
		}
		if p.Size > f.Size {
			res.Eaten = append(res.Eaten, f)
			res.ScoreGained += ScoreFor(f.Size)
			p.Size += params.Increment
			continue
		}
		res.Lethal = true
		res.Killer = f
		return res
	}
	return res
}

// ScoreFor returns the points awarded for eating a fish of the given size.
func ScoreFor(size float32) int {
	return int(math.Floor(float64(size)))
}

// SizeLevel returns the displayed size level for a player size.
func SizeLevel(size, divisor float32) int {
	return int(math.Floor(float64(size / divisor)))
}
