package app

import (
	"sync/atomic"

	"github.com/dshills/inputq/internal/window"
)

// Source is a window the application can pump.
type Source interface {
	window.Window

	// Init prepares the window; Shutdown undoes it.
	Init() error
	Shutdown()

	// Pump dispatches the next batch of events to the registered callbacks.
	Pump() error

	// Done reports that no more events will be pumped.
	Done() bool

	// Interrupt asks the source to finish. Safe from any goroutine.
	Interrupt()

	// Name describes the source in logs.
	Name() string
}

// terminalSource pumps a tcell terminal until it is asked to close.
type terminalSource struct {
	*window.Terminal
}

func (s terminalSource) Pump() error  { return s.WaitEvents() }
func (s terminalSource) Done() bool   { return s.ShouldClose() }
func (s terminalSource) Interrupt()   { s.RequestClose() }
func (s terminalSource) Name() string { return "terminal" }

// replaySource fires up to batch recorded events per pump, or all of the
// remaining ones when batch is zero.
type replaySource struct {
	*window.Replay
	batch       int
	interrupted *atomic.Bool
}

func newReplaySource(r *window.Replay, batch int) replaySource {
	return replaySource{Replay: r, batch: batch, interrupted: new(atomic.Bool)}
}

func (s replaySource) Init() error { return nil }
func (s replaySource) Shutdown()   {}

func (s replaySource) Pump() error {
	if s.batch <= 0 {
		return s.PollEvents()
	}
	for i := 0; i < s.batch; i++ {
		more, err := s.Step()
		if err != nil || !more {
			return err
		}
	}
	return nil
}

func (s replaySource) Done() bool { return s.interrupted.Load() || s.Replay.Done() }
func (s replaySource) Interrupt() { s.interrupted.Store(true) }

func (s replaySource) Name() string {
	if n := s.Replay.Name(); n != "" {
		return "replay " + n
	}
	return "replay"
}
