package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/inputq/internal/queue"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Queue.Capacity != queue.DefaultCapacity {
		t.Errorf("Queue.Capacity = %d, want %d", cfg.Queue.Capacity, queue.DefaultCapacity)
	}
	if cfg.OverflowPolicy() != queue.OverflowReject {
		t.Errorf("OverflowPolicy() = %v, want reject", cfg.OverflowPolicy())
	}
	if cfg.Terminal.RepeatInterval.Std() != 60*time.Millisecond {
		t.Errorf("RepeatInterval = %v, want 60ms", cfg.Terminal.RepeatInterval.Std())
	}
}

func TestLoadReader(t *testing.T) {
	cfg := Default()
	err := cfg.LoadReader(strings.NewReader(`
[queue]
capacity = 16
overflow = "drop-oldest"

[log]
level = "debug"

[terminal]
repeat_interval = "150ms"
close_on_interrupt = false

[script]
path = "handlers.lua"
watch = true
`))
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}

	if cfg.Queue.Capacity != 16 {
		t.Errorf("Queue.Capacity = %d, want 16", cfg.Queue.Capacity)
	}
	if cfg.OverflowPolicy() != queue.OverflowDropOldest {
		t.Errorf("OverflowPolicy() = %v, want drop-oldest", cfg.OverflowPolicy())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Terminal.RepeatInterval.Std() != 150*time.Millisecond {
		t.Errorf("RepeatInterval = %v, want 150ms", cfg.Terminal.RepeatInterval.Std())
	}
	if cfg.Terminal.CloseOnInterrupt {
		t.Error("CloseOnInterrupt = true, want false")
	}
	if cfg.Script.Path != "handlers.lua" || !cfg.Script.Watch {
		t.Errorf("Script = %+v", cfg.Script)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadReaderPartial(t *testing.T) {
	cfg := Default()
	if err := cfg.LoadReader(strings.NewReader("[log]\nlevel = \"warn\"\n")); err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Queue.Capacity != queue.DefaultCapacity {
		t.Errorf("Queue.Capacity = %d, default lost", cfg.Queue.Capacity)
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "[queue\ncapacity = 1"},
		{"unknown key", "[queue]\nslots = 4\n"},
		{"bad duration", "[terminal]\nrepeat_interval = \"soon\"\n"},
		{"wrong type", "[queue]\ncapacity = \"many\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := cfg.LoadReader(strings.NewReader(tt.input))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("LoadReader error = %v, want *ParseError", err)
			}
			if perr.Source != "<reader>" {
				t.Errorf("Source = %q, want <reader>", perr.Source)
			}
		})
	}
}

func TestLoadReaderUnknownKeyMessage(t *testing.T) {
	cfg := Default()
	err := cfg.LoadReader(strings.NewReader("[queue]\nslots = 4\n"))
	if err == nil || !strings.Contains(err.Error(), "queue.slots") {
		t.Errorf("error = %v, want mention of queue.slots", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputq.toml")
	if err := os.WriteFile(path, []byte("[queue]\ncapacity = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Queue.Capacity != 8 {
		t.Errorf("Queue.Capacity = %d, want 8", cfg.Queue.Capacity)
	}

	err := cfg.LoadFile(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("LoadFile(missing) = %v, want ErrFileNotFound", err)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"INPUTQ_QUEUE_CAPACITY":           "32",
		"INPUTQ_QUEUE_OVERFLOW":           "panic",
		"INPUTQ_LOG_LEVEL":                "error",
		"INPUTQ_TERMINAL_REPEAT_INTERVAL": "1s",
		"INPUTQ_SCRIPT_PATH":              "x.lua",
		"QUEUE_CAPACITY":                  "999",
	})
	if err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Queue.Capacity != 32 {
		t.Errorf("Queue.Capacity = %d, want 32", cfg.Queue.Capacity)
	}
	if cfg.OverflowPolicy() != queue.OverflowPanic {
		t.Errorf("OverflowPolicy() = %v, want panic", cfg.OverflowPolicy())
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Terminal.RepeatInterval.Std() != time.Second {
		t.Errorf("RepeatInterval = %v, want 1s", cfg.Terminal.RepeatInterval.Std())
	}
	if !cfg.Terminal.CloseOnInterrupt {
		t.Error("unset variable cleared CloseOnInterrupt")
	}
	if cfg.Script.Path != "x.lua" {
		t.Errorf("Script.Path = %q, want x.lua", cfg.Script.Path)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(map[string]string{"INPUTQ_QUEUE_CAPACITY": "lots"}); err == nil {
		t.Error("expected error for non-numeric capacity")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputq.toml")
	if err := os.WriteFile(path, []byte("[queue]\ncapacity = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INPUTQ_QUEUE_CAPACITY", "128")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Queue.Capacity != 128 {
		t.Errorf("Queue.Capacity = %d, want environment value 128", cfg.Queue.Capacity)
	}

	t.Setenv("INPUTQ_QUEUE_CAPACITY", "1")
	if _, err := Load(""); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Load with capacity 1 = %v, want ErrValidationFailed", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		setting string
	}{
		{"capacity", func(c *Config) { c.Queue.Capacity = 1 }, "queue.capacity"},
		{"overflow", func(c *Config) { c.Queue.Overflow = "overwrite" }, "queue.overflow"},
		{"level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"repeat", func(c *Config) { c.Terminal.RepeatInterval = 0 }, "terminal.repeat_interval"},
		{"watch", func(c *Config) { c.Script.Watch = true }, "script.watch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Setting != tt.setting {
				t.Errorf("Setting = %q, want %q", verr.Setting, tt.setting)
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Error("error does not wrap ErrValidationFailed")
			}
		})
	}
}

func TestQueueOptions(t *testing.T) {
	cfg := Default()
	cfg.Queue.Capacity = 3
	q, err := queue.New(cfg.QueueOptions()...)
	if err != nil {
		t.Fatalf("queue.New failed: %v", err)
	}
	if q.Cap() != 3 {
		t.Errorf("Cap() = %d, want 3", q.Cap())
	}
}
