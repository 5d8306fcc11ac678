package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/wurm/input"
	"github.com/lixenwraith/wurm/render"
)

// IntentSource yields at most one input per tick without blocking
type IntentSource interface {
	Poll() input.Intent
}

// Frame is whatever presents the grid and overlay after each tick
type Frame interface {
	RenderFrame(overlay *render.Window)
	Repaint()
}

// Loop paces the game: one poll, one tick, one frame, then wait for the next tick
type Loop struct {
	game     *Game
	source   IntentSource
	frame    Frame
	interval time.Duration
}

// NewLoop creates a loop ticking every interval
func NewLoop(game *Game, source IntentSource, frame Frame, interval time.Duration) *Loop {
	return &Loop{
		game:     game,
		source:   source,
		frame:    frame,
		interval: interval,
	}
}

// Run blocks until the game quits or ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.frame.RenderFrame(l.game.Overlay())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		in := l.source.Poll()
		if in.Type == input.IntentResize {
			l.frame.Repaint()
		}

		if l.game.Tick(in) == PhaseQuit {
			return nil
		}
		l.frame.RenderFrame(l.game.Overlay())
	}
}
