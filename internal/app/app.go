// Package app wires the event queue to a window, drains it, and reports
// what it saw. It is the engine behind the inputq command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"

	"github.com/dshills/inputq/internal/config"
	"github.com/dshills/inputq/internal/event"
	"github.com/dshills/inputq/internal/logging"
	"github.com/dshills/inputq/internal/queue"
	"github.com/dshills/inputq/internal/report"
	"github.com/dshills/inputq/internal/script"
	"github.com/dshills/inputq/internal/window"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Options configures the application. Zero values leave the configured
// setting alone.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Capacity overrides queue.capacity.
	Capacity int

	// Overflow overrides queue.overflow.
	Overflow string

	// LogLevel overrides log.level.
	LogLevel string

	// ReplayPath replays a recorded scenario instead of reading the terminal.
	ReplayPath string

	// ReplayBatch is the number of recorded events fired between drains.
	// Zero fires the whole scenario at once.
	ReplayBatch int

	// ScriptPath overrides script.path.
	ScriptPath string

	// Watch reloads the script when it changes.
	Watch bool

	// Format is FormatText (default), FormatYAML or FormatJSON.
	Format string

	// Stats prints queue statistics on exit.
	Stats bool

	// Output receives events and statistics. Defaults to os.Stdout.
	Output io.Writer

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Screen is used for the terminal source instead of the controlling
	// terminal.
	Screen tcell.Screen

	// Clock stamps queued events. Defaults to the real clock.
	Clock clockwork.Clock
}

// EventWriter receives every drained event.
type EventWriter interface {
	Write(ev event.Event) error
	Close() error
}

// Application owns the queue, the window it tracks and the consumers of
// drained events.
type Application struct {
	cfg     config.Config
	opts    Options
	logger  *logging.Logger
	clock   clockwork.Clock
	metrics *Metrics

	queue  *queue.Queue
	source Source
	script *script.Script
	events EventWriter
	screen *screenLog
	out    io.Writer

	running atomic.Bool
}

// New loads configuration, applies opts on top of it and creates every
// component. Nothing touches the terminal until Run.
func New(opts Options) (*Application, error) {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	switch opts.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, opts.Format)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		cfg:     cfg,
		opts:    opts,
		clock:   opts.Clock,
		metrics: NewMetrics(),
		out:     opts.Output,
	}
	logCfg := logging.DefaultLoggerConfig()
	logCfg.Level = logging.ParseLogLevel(cfg.Log.Level)
	logCfg.Output = opts.LogOutput
	app.logger = logging.NewLogger(logCfg)

	qopts := append(cfg.QueueOptions(),
		queue.WithLogger(app.logger),
		queue.WithClock(app.clock),
		queue.WithErrorHandler(app.onQueueError),
	)
	if app.queue, err = queue.New(qopts...); err != nil {
		return nil, &InitError{Component: "queue", Err: err}
	}

	if err := app.createSource(); err != nil {
		return nil, &InitError{Component: "window", Err: err}
	}

	if cfg.Script.Path != "" {
		app.script = script.New(script.WithLogger(app.logger))
		if err := app.script.LoadFile(cfg.Script.Path); err != nil {
			return nil, &InitError{Component: "script", Err: err}
		}
		if !app.script.HasHandler() {
			app.script.Close()
			return nil, &InitError{Component: "script", Err: script.ErrNoHandler}
		}
	}

	app.createWriter()
	return app, nil
}

// loadConfig layers defaults, file, environment and flags.
func loadConfig(opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		if err := cfg.LoadFile(opts.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}

	if opts.Capacity != 0 {
		cfg.Queue.Capacity = opts.Capacity
	}
	if opts.Overflow != "" {
		cfg.Queue.Overflow = opts.Overflow
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.ScriptPath != "" {
		cfg.Script.Path = opts.ScriptPath
	}
	if opts.Watch {
		cfg.Script.Watch = true
	}
	return cfg, cfg.Validate()
}

func (app *Application) createSource() error {
	if app.opts.ReplayPath != "" {
		r, err := window.LoadReplayFile(app.opts.ReplayPath)
		if err != nil {
			return err
		}
		app.source = newReplaySource(r, app.opts.ReplayBatch)
		return nil
	}

	screen := app.opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return err
		}
	}
	term := window.NewTerminalWithScreen(screen,
		window.WithRepeatInterval(app.cfg.Terminal.RepeatInterval.Std()),
		window.WithCloseOnInterrupt(app.cfg.Terminal.CloseOnInterrupt),
	)
	app.source = terminalSource{Terminal: term}
	return nil
}

// createWriter picks the event writer. Text for a live terminal goes to
// the screen itself, since stdout is hidden behind it.
func (app *Application) createWriter() {
	switch app.opts.Format {
	case FormatYAML:
		app.events = report.NewYAMLWriter(app.out, app.source.Name())
		return
	case FormatJSON:
		app.events = report.NewJSONWriter(app.out)
		return
	}

	out := app.out
	if term, ok := app.source.(terminalSource); ok && out == io.Writer(os.Stdout) {
		app.screen = newScreenLog(term.Screen(), "inputq: events appear below, Ctrl-C to quit")
		out = app.screen
	}
	app.events = report.NewTextWriter(out, false)
}

// Run pumps the source and drains the queue until the source is done, a
// window close event is drained, the script asks to stop, or ctx is
// cancelled.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.source.Init(); err != nil {
		return &InitError{Component: app.source.Name(), Err: err}
	}
	shutdown := sync.OnceFunc(app.source.Shutdown)
	defer shutdown()

	app.queue.TrackWindow(app.source)
	defer app.queue.UntrackWindow(app.source)

	if app.screen != nil {
		app.screen.Redraw()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		app.source.Interrupt()
	}()

	if app.script != nil && app.cfg.Script.Watch {
		go func() {
			if err := app.script.Watch(ctx, app.cfg.Script.Path); err != nil {
				app.logger.Error("script watch: %v", err)
			}
		}()
	}

	app.logger.Info("reading events from %s", app.source.Name())

	var runErr error
	for !app.source.Done() {
		if err := app.pump(); err != nil {
			if !errors.Is(err, window.ErrTerminalClosed) {
				runErr = err
			}
			break
		}
		stop, err := app.drain()
		if err != nil {
			runErr = err
			break
		}
		if stop {
			break
		}
	}

	shutdown()
	return errors.Join(runErr, app.finish())
}

// pump runs one source step, turning a panic from a callback shim into an
// error.
func (app *Application) pump() (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
			app.logger.Debug("recovered panic while pumping %s:\n%s", app.source.Name(), perr.Stack)
			err = perr
		}
	}()
	return app.source.Pump()
}

// drain handles every queued event. It reports stop when the remaining
// events should be left unread.
func (app *Application) drain() (stop bool, err error) {
	n := 0
	defer func() { app.metrics.RecordBatch(n) }()

	for {
		ev, ok := app.queue.NextEvent()
		if !ok {
			return false, nil
		}
		n++
		stop, err = app.handle(ev)
		app.queue.FreeEvent(&ev)
		if stop || err != nil {
			return stop, err
		}
	}
}

func (app *Application) handle(ev event.Event) (stop bool, err error) {
	app.metrics.RecordEvent(ev.Kind(), app.clock.Since(ev.Time()))

	if err := app.events.Write(ev); err != nil {
		return true, fmt.Errorf("writing event: %w", err)
	}

	if app.script != nil {
		more, err := app.script.Handle(ev)
		if err != nil {
			app.metrics.RecordScriptError()
			app.logger.Error("%v", err)
		} else if !more {
			app.logger.Info("script requested stop")
			return true, nil
		}
	}

	return ev.Kind() == event.KindWindowClosed, nil
}

// finish discards unread events and writes the trailing output.
func (app *Application) finish() error {
	if n := app.queue.Clear(); n > 0 {
		app.logger.Debug("discarded %d unread events", n)
	}

	var errs []error
	if err := app.events.Close(); err != nil {
		errs = append(errs, err)
	}
	if app.script != nil {
		if err := app.script.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if app.opts.Stats {
		report.WriteStats(app.out, app.queue.Stats())
		m := app.metrics.Snapshot()
		report.WriteDrainStats(app.out, report.DrainStats{
			Batches:      m.Batches,
			Events:       m.Events,
			AvgLatency:   m.AvgLatency,
			MaxLatency:   m.MaxLatency,
			QueueErrors:  m.QueueErrors,
			ScriptErrors: m.ScriptErrors,
			Uptime:       m.Uptime,
		})
		report.WriteKindCounts(app.out, m.ByKind)
	}

	_ = app.logger.Sync()
	return errors.Join(errs...)
}

func (app *Application) onQueueError(err error) {
	if errors.Is(err, queue.ErrQueueFull) {
		app.metrics.RecordQueueError()
	}
}

// IsRunning returns true while Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the effective configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Queue returns the event queue.
func (app *Application) Queue() *queue.Queue {
	return app.queue
}

// Metrics returns the drain metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
