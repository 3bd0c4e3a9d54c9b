package game

import (
	"log/slog"

	"github.com/parry-123/fish-eating-game/components"
	"github.com/parry-123/fish-eating-game/systems"
	"github.com/parry-123/fish-eating-game/telemetry"
)

// Update advances the game by dt seconds of wall time and returns the number
// of ticks run. Nothing is accumulated unless the game is Running, so a
// resumed game does not burst.
func (g *Game) Update(dt float64) int {
	if g.state != Running {
		g.clock.Reset()
		return 0
	}

	due := g.clock.Advance(dt) * g.stepsPerUpdate
	ran := 0
	for i := 0; i < due && g.state == Running; i++ {
		g.Step()
		ran++
	}
	return ran
}

// UpdateHeadless runs StepsPerUpdate ticks without consulting the clock.
func (g *Game) UpdateHeadless() int {
	ran := 0
	for i := 0; i < g.stepsPerUpdate && g.state == Running; i++ {
		g.Step()
		ran++
	}
	return ran
}

// Step runs one tick. It does nothing unless the game is Running.
func (g *Game) Step() {
	if g.state != Running {
		return
	}

	g.perfCollector.StartTick()
	g.renderer.Clear(g.width, g.height)

	g.perfCollector.StartPhase(telemetry.PhaseSpawn)
	g.spawnFish()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.resolveInput()

	g.perfCollector.StartPhase(telemetry.PhaseMove)
	prey := g.moveAndDrawFish()
	g.renderer.DrawFish(playerView(g.player))

	g.perfCollector.StartPhase(telemetry.PhaseCollide)
	g.resolveCollisions(prey)

	// Cull still runs on a lethal tick
	g.perfCollector.StartPhase(telemetry.PhaseCull)
	g.cullFish()

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	g.present()
}

// resolveInput moves the player from held keys and the pointer target.
func (g *Game) resolveInput() {
	var ptr systems.Pointer
	if g.autopilot {
		if target, ok := systems.Steer(g.player, g.snapshotPrey(nil), g.steerParams); ok {
			ptr = systems.Pointer{X: target.X, Y: target.Y, Active: true}
		}
	} else if pos, ok := g.input.Pointer(); ok {
		ptr = systems.Pointer{X: pos.X, Y: pos.Y, Active: true}
	}

	systems.ResolveInput(&g.player, g.input, ptr, g.width, g.height)
}

// moveAndDrawFish moves every fish, draws it, and returns the post-move
// snapshot used for collision resolution.
func (g *Game) moveAndDrawFish() []systems.Prey {
	prey := make([]systems.Prey, 0, g.fishCount)

	query := g.fishFilter.Query()
	for query.Next() {
		pos, rot, body, swim, org := query.Get()

		systems.Swim(pos, *rot, *body, *swim, g.width, g.height)

		g.renderer.DrawFish(FishView{
			X:       pos.X,
			Y:       pos.Y,
			Size:    body.Size,
			Heading: rot.Heading,
			Color:   org.Color,
		})

		prey = append(prey, systems.Prey{
			Entity: query.Entity(),
			ID:     org.ID,
			Pos:    *pos,
			Size:   body.Size,
		})
	}
	return prey
}

// resolveCollisions applies eating and lethal collisions against the player.
func (g *Game) resolveCollisions(prey []systems.Prey) {
	res := systems.ResolveGrowth(&g.player, prey, g.growthParams)

	for _, eaten := range res.Eaten {
		g.removeFish(eaten.Entity)
		g.sessions.RecordEat(eaten.Size)
	}
	if len(res.Eaten) > 0 {
		g.score += res.ScoreGained
		g.collector.RecordEaten(len(res.Eaten))
		g.sink.ScoreChanged(g.score, g.SizeLevel())
	}

	if res.Lethal {
		g.state = GameOver
		g.collector.RecordDeath()
		slog.Info("game_over",
			"session", g.SessionID(),
			"score", g.score,
			"player_size", g.player.Size,
			"killer_size", res.Killer.Size,
			"tick", g.tick,
		)
		g.endSession(telemetry.OutcomeEaten, res.Killer.Size)
		g.sink.GameOver(g.score)
	}
}

func (g *Game) present() {
	if p, ok := g.renderer.(Presenter); ok {
		p.Present()
	}
}

func playerView(p components.Player) FishView {
	return FishView{
		X:       p.X,
		Y:       p.Y,
		Size:    p.Size,
		Heading: p.Heading,
		Player:  true,
	}
}
