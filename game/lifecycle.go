package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/systems"
)

// resetWorld replaces the fish world with an empty one and restarts the
// spawn sequence.
func (g *Game) resetWorld() {
	world := ecs.NewWorld()
	g.world = world
	g.fishMapper = ecs.NewMap5[
		components.Position,
		components.Rotation,
		components.Body,
		components.Swim,
		components.Organism,
	](world)
	g.fishFilter = ecs.NewFilter5[
		components.Position,
		components.Rotation,
		components.Body,
		components.Swim,
		components.Organism,
	](world)
	g.fishCount = 0
	g.nextID = 0
	g.spawnCapped = false
}

// newPlayer creates the player at the canvas centre.
func (g *Game) newPlayer() components.Player {
	return components.NewPlayer(
		g.width/2,
		g.height/2,
		float32(g.cfg.Player.Size),
		float32(g.cfg.Player.Speed),
	)
}

// spawnFish rolls the per-tick spawn chance and adds one fish on success,
// unless the fish cap is reached.
func (g *Game) spawnFish() {
	if !systems.RollSpawn(g.rng, g.spawnParams) {
		return
	}

	if limit := g.cfg.Spawn.MaxFish; limit > 0 && g.fishCount >= limit {
		g.collector.RecordSpawnCapped()
		if !g.spawnCapped {
			g.spawnCapped = true
			slog.Debug("spawn_capped", "fish", g.fishCount, "tick", g.tick)
		}
		return
	}
	g.spawnCapped = false

	g.addFish(systems.NewFish(g.rng, g.spawnParams, g.width, g.height))
}

// addFish creates a fish entity with the next spawn sequence ID.
func (g *Game) addFish(f systems.SpawnedFish) ecs.Entity {
	org := components.Organism{ID: g.nextID, Color: f.Color}
	g.nextID++

	entity := g.fishMapper.NewEntity(&f.Pos, &f.Rot, &f.Body, &f.Swim, &org)
	g.fishCount++
	g.collector.RecordSpawn()
	return entity
}

// removeFish destroys a fish entity. Must not be called while a query is open.
func (g *Game) removeFish(e ecs.Entity) {
	g.world.RemoveEntity(e)
	g.fishCount--
}

// snapshotPrey collects every fish's entity, ID, position and size.
func (g *Game) snapshotPrey(dst []systems.Prey) []systems.Prey {
	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, body, _, org := query.Get()
		dst = append(dst, systems.Prey{
			Entity: query.Entity(),
			ID:     org.ID,
			Pos:    *pos,
			Size:   body.Size,
		})
	}
	return dst
}

// cullFish removes fish that drifted far outside the canvas.
func (g *Game) cullFish() {
	// First pass: collect (must complete before modifying)
	var toRemove []ecs.Entity

	query := g.fishFilter.Query()
	for query.Next() {
		pos, _, body, _, _ := query.Get()
		if systems.OutOfBounds(*pos, body.Size, g.width, g.height, g.cullMargin) {
			toRemove = append(toRemove, query.Entity())
		}
	}

	// Second pass: remove entities (query iteration complete)
	for _, e := range toRemove {
		g.removeFish(e)
	}
	if len(toRemove) > 0 {
		g.collector.RecordCulled(len(toRemove))
	}
}
