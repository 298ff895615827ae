// Package config loads inputq settings.
//
// Settings come from three places, later ones overriding earlier ones:
// built-in defaults, a TOML file, and INPUTQ_* environment variables.
// Command-line flags are applied by the caller after Load.
//
// Example file:
//
//	[queue]
//	capacity = 256
//	overflow = "drop-oldest"
//
//	[log]
//	level = "debug"
//
//	[terminal]
//	repeat_interval = "80ms"
//	close_on_interrupt = true
//
//	[script]
//	path = "handlers.lua"
//	watch = true
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/inputq/internal/logging"
	"github.com/dshills/inputq/internal/queue"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "INPUTQ_"

// Config holds all inputq settings.
type Config struct {
	Queue    QueueConfig    `toml:"queue" envPrefix:"QUEUE_"`
	Log      LogConfig      `toml:"log" envPrefix:"LOG_"`
	Terminal TerminalConfig `toml:"terminal" envPrefix:"TERMINAL_"`
	Script   ScriptConfig   `toml:"script" envPrefix:"SCRIPT_"`
}

// QueueConfig configures the event queue.
type QueueConfig struct {
	// Capacity is the number of ring slots; one stays unused.
	Capacity int `toml:"capacity" env:"CAPACITY"`
	// Overflow is "reject", "drop-oldest" or "panic".
	Overflow string `toml:"overflow" env:"OVERFLOW"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
}

// TerminalConfig configures the terminal window.
type TerminalConfig struct {
	// RepeatInterval is how soon a repeated key counts as held down.
	RepeatInterval Duration `toml:"repeat_interval" env:"REPEAT_INTERVAL"`
	// CloseOnInterrupt makes Ctrl-C request window close.
	CloseOnInterrupt bool `toml:"close_on_interrupt" env:"CLOSE_ON_INTERRUPT"`
}

// ScriptConfig configures the Lua event handler.
type ScriptConfig struct {
	Path  string `toml:"path" env:"PATH"`
	Watch bool   `toml:"watch" env:"WATCH"`
}

// Duration is a time.Duration written as a string such as "60ms".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Queue: QueueConfig{
			Capacity: queue.DefaultCapacity,
			Overflow: queue.OverflowReject.String(),
		},
		Log: LogConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			RepeatInterval:   Duration(60 * time.Millisecond),
			CloseOnInterrupt: true,
		},
	}
}

// Load returns the defaults overlaid with the file at path (skipped when
// path is empty) and the process environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile overlays the TOML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.decode(path, bytes.NewReader(data))
}

// LoadReader overlays TOML read from r onto c.
func (c *Config) LoadReader(r io.Reader) error {
	return c.decode("<reader>", r)
}

// decode rejects unknown keys so that typos surface instead of being ignored.
func (c *Config) decode(source string, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Source: source, Err: err}

		var derr *toml.DecodeError
		var serr *toml.StrictMissingError
		switch {
		case errors.As(err, &derr):
			perr.Line, perr.Column = derr.Position()
		case errors.As(err, &serr) && len(serr.Errors) > 0:
			perr.Line, perr.Column = serr.Errors[0].Position()
			perr.Key = strings.Join(serr.Errors[0].Key(), ".")
		}
		return perr
	}
	return nil
}

// ApplyEnv overlays INPUTQ_* variables onto c. A nil environ reads the
// process environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if c.Queue.Capacity < 2 {
		return &ValidationError{Setting: "queue.capacity", Value: c.Queue.Capacity, Message: "must be at least 2"}
	}
	if _, ok := queue.ParseOverflowPolicy(c.Queue.Overflow); !ok {
		return &ValidationError{Setting: "queue.overflow", Value: c.Queue.Overflow, Message: `must be "reject", "drop-oldest" or "panic"`}
	}
	if !logging.ValidLogLevel(c.Log.Level) {
		return &ValidationError{Setting: "log.level", Value: c.Log.Level, Message: "must be debug, info, warn or error"}
	}
	if c.Terminal.RepeatInterval <= 0 {
		return &ValidationError{Setting: "terminal.repeat_interval", Value: c.Terminal.RepeatInterval.Std(), Message: "must be positive"}
	}
	if c.Script.Watch && c.Script.Path == "" {
		return &ValidationError{Setting: "script.watch", Value: true, Message: "requires script.path"}
	}
	return nil
}

// OverflowPolicy returns the configured queue overflow policy.
func (c *Config) OverflowPolicy() queue.OverflowPolicy {
	p, _ := queue.ParseOverflowPolicy(c.Queue.Overflow)
	return p
}

// QueueOptions returns the queue options described by c.
func (c *Config) QueueOptions() []queue.Option {
	return []queue.Option{
		queue.WithCapacity(c.Queue.Capacity),
		queue.WithOverflowPolicy(c.OverflowPolicy()),
	}
}
