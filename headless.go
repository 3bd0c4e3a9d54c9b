package main

import (
	"context"
	"log/slog"

	"github.com/parry-123/fish-eating-game/game"
)

// headlessLimits bounds a headless run. Zero means unlimited.
type headlessLimits struct {
	MaxTicks    int
	MaxSessions int
}

// headlessResult summarises a headless run.
type headlessResult struct {
	Ticks     int32
	Sessions  int
	BestScore int
}

// runHeadless plays sessions back to back until a limit is hit or ctx is
// cancelled.
func runHeadless(ctx context.Context, opts game.Options, limits headlessLimits) (headlessResult, error) {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return headlessResult{}, err
	}
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", g.Seed(),
		"max_ticks", limits.MaxTicks,
		"max_sessions", limits.MaxSessions,
		"steps_per_update", g.StepsPerUpdate(),
	)

	var res headlessResult
	g.Start()
	for {
		if err := ctx.Err(); err != nil {
			slog.Info("headless run interrupted", "tick", g.Tick())
			break
		}

		g.UpdateHeadless()

		if g.State() == game.GameOver {
			res.Sessions++
			res.BestScore = max(res.BestScore, g.Score())
			if limits.MaxSessions > 0 && res.Sessions >= limits.MaxSessions {
				slog.Info("session limit reached", "sessions", res.Sessions, "tick", g.Tick())
				break
			}
			g.Restart()
		}

		if limits.MaxTicks > 0 && int(g.Tick()) >= limits.MaxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}

	// Unload records a session cut short by a limit as abandoned.
	if g.State() != game.GameOver {
		res.BestScore = max(res.BestScore, g.Score())
	}
	res.Ticks = g.Tick()
	return res, nil
}
