package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/flanker/input"
	"github.com/lixenwraith/flanker/parameter"
)

// EventSource yields terminal events; tcell.Screen satisfies it
// PollEvent returns nil once the source is finalised
type EventSource interface {
	PollEvent() tcell.Event
}

// FrameSink consumes finished frames: renderer, sound, telemetry
// Draw runs on the frame goroutine and must not block
type FrameSink interface {
	Draw(f Frame)
}

// FrameSinkFunc adapts a function to FrameSink
type FrameSinkFunc func(f Frame)

func (fn FrameSinkFunc) Draw(f Frame) { fn(f) }

// Runner drives a Game from terminal events and a frame ticker
type Runner struct {
	Game     *Game
	Events   EventSource
	Keys     *input.KeyTable
	Latch    *input.Latch
	Clock    *FrameClock
	Interval time.Duration
	Sinks    []FrameSink

	// OnAction receives one-shot actions other than quit (help, mute)
	OnAction func(a input.Action)
	// OnResize is called when the terminal changes size
	OnResize func()
}

// Run pumps events and steps the game until quit or ctx is done
func (r *Runner) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = parameter.FrameUpdateInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Flag keys are latched on the poll goroutine; only one-shot keys and resizes cross the channel
	events := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		for {
			ev := r.Events.PollEvent()
			if ev == nil {
				return
			}
			if r.latchEvent(ev) {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Prime the clock so the first stepped frame has a real dt
	r.Clock.Tick()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !r.handleEvent(ev) {
				log.Info().Msg("quit requested")
				return nil
			}

		case <-ticker.C:
			r.stepFrame()
		}
	}
}

// stepFrame samples input, advances the game one frame and fans the result out
func (r *Runner) stepFrame() {
	dt, frameTime := r.Clock.Tick()
	in := r.Latch.Snapshot(r.Clock.Now())
	f := r.Game.Step(dt, frameTime, in)

	if dt > 0 {
		m := r.Game.Metrics()
		// Exponential moving average over roughly 20 frames
		fps := m.FPS.Get()
		if fps == 0 {
			fps = 1 / dt
		}
		m.FPS.Set(fps*0.95 + (1/dt)*0.05)
	}

	for _, s := range r.Sinks {
		s.Draw(f)
	}
}

// latchEvent records a held-flag key press, returns false for events the frame loop routes
func (r *Runner) latchEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	a, ok := r.Keys.Lookup(key)
	if !ok || !a.IsFlag() {
		return false
	}
	r.Latch.Press(a, r.Clock.Now())
	return true
}

// handleEvent routes one-shot keys and resizes, returns false on quit
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := r.Keys.Lookup(ev)
		if !ok || a.IsFlag() {
			return true
		}
		switch {
		case a == input.ActionQuit:
			return false
		case r.OnAction != nil:
			r.OnAction(a)
		}

	case *tcell.EventResize:
		if r.OnResize != nil {
			r.OnResize()
		}
	}
	return true
}
