package engine

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/flanker/input"
)

// chanEvents is an EventSource fed by the test, closing it yields nil
type chanEvents chan tcell.Event

func (c chanEvents) PollEvent() tcell.Event {
	return <-c
}

func newTestRunner(mock *MockTimeProvider) (*Runner, *[]Frame) {
	frames := &[]Frame{}
	r := &Runner{
		Game:  NewGame(testConfig(), nil, nil),
		Keys:  input.DefaultKeyTable(),
		Latch: input.NewLatch(500 * time.Millisecond),
		Clock: NewFrameClock(mock, 250*time.Millisecond),
		Sinks: []FrameSink{FrameSinkFunc(func(f Frame) {
			*frames = append(*frames, f)
		})},
	}
	return r, frames
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestHandleEventRoutesActions(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	r, _ := newTestRunner(mock)

	var actions []input.Action
	resized := 0
	r.OnAction = func(a input.Action) { actions = append(actions, a) }
	r.OnResize = func() { resized++ }

	assert.True(t, r.latchEvent(key('a')))
	assert.True(t, r.Latch.Snapshot(mock.Now()).Accelerate)
	assert.False(t, r.latchEvent(key('?')), "one-shot keys go to the frame loop")
	assert.False(t, r.latchEvent(tcell.NewEventResize(80, 24)))

	r.Latch.Reset()
	assert.True(t, r.handleEvent(key('a')))
	assert.False(t, r.Latch.Snapshot(mock.Now()).Accelerate, "the frame loop never latches flags")

	assert.True(t, r.handleEvent(key('?')))
	assert.True(t, r.handleEvent(key('m')))
	assert.Equal(t, []input.Action{input.ActionToggleHelp, input.ActionToggleMute}, actions)

	assert.True(t, r.handleEvent(key('x')), "unbound keys are ignored")
	assert.True(t, r.handleEvent(tcell.NewEventResize(80, 24)))
	assert.Equal(t, 1, resized)

	assert.False(t, r.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, r.handleEvent(key('q')))
}

func TestStepFrameSamplesLatch(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	r, frames := newTestRunner(mock)
	r.Clock.Tick()

	r.latchEvent(key('a'))
	mock.Advance(16 * time.Millisecond)
	r.stepFrame()

	require.Len(t, *frames, 1)
	f := (*frames)[0]
	assert.True(t, f.Input.Accelerate)
	assert.Equal(t, 51.0, f.Speed)
	assert.InDelta(t, 62.5, r.Game.Metrics().FPS.Get(), 1e-9)

	// Without repeats the key releases after the hold window
	mock.Advance(600 * time.Millisecond)
	r.stepFrame()
	require.Len(t, *frames, 2)
	assert.False(t, (*frames)[1].Input.Accelerate)
	assert.Equal(t, 51.0, (*frames)[1].Speed)
}

func TestRunStopsOnQuit(t *testing.T) {
	events := make(chanEvents, 4)
	r, _ := newTestRunner(NewMockTimeProvider(time.Unix(1000, 0)))
	r.Events = events
	r.Interval = time.Millisecond

	events <- key('q')

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not quit")
	}
	close(events)
}

func TestRunStopsOnContext(t *testing.T) {
	events := make(chanEvents)
	r, _ := newTestRunner(NewMockTimeProvider(time.Unix(1000, 0)))
	r.Events = events
	r.Interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
	close(events)
}

func TestRunLatchesFlagsOnPoller(t *testing.T) {
	events := make(chanEvents, 4)
	r, _ := newTestRunner(NewMockTimeProvider(time.Unix(1000, 0)))
	r.Events = events
	r.Interval = time.Millisecond

	held := make(chan struct{}, 1)
	r.Sinks = []FrameSink{FrameSinkFunc(func(f Frame) {
		if f.Input.Accelerate {
			select {
			case held <- struct{}{}:
			default:
			}
		}
	})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	events <- key('a')
	select {
	case <-held:
	case <-time.After(5 * time.Second):
		t.Fatal("accelerate never reached a frame")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	close(events)
}
