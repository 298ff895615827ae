// Package main is the entry point for the inputq event queue demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/inputq/internal/app"
	"github.com/dshills/inputq/internal/logging"
	"github.com/dshills/inputq/internal/queue"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, ok := parseFlags(os.Args[1:])
	if !ok {
		return code
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags returns the options, or ok=false with the exit code when the
// program should stop (help, version, bad flags).
func parseFlags(args []string) (opts app.Options, code int, ok bool) {
	fs := flag.NewFlagSet("inputq", flag.ContinueOnError)
	var showVersion bool

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.IntVar(&opts.Capacity, "capacity", 0, "Queue slots; one stays unused (default from config)")
	fs.StringVar(&opts.Overflow, "overflow", "", "Overflow policy (reject, drop-oldest, panic)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.ReplayPath, "replay", "", "Replay a recorded scenario (.yaml, or .jsonl) instead of reading the terminal")
	fs.IntVar(&opts.ReplayBatch, "batch", 0, "Replayed events per drain (0 = all at once)")
	fs.StringVar(&opts.ScriptPath, "script", "", "Lua script defining on_event(ev)")
	fs.BoolVar(&opts.Watch, "watch", false, "Reload the script when it changes")
	fs.StringVar(&opts.Format, "format", app.FormatText, "Output format (text, yaml, json)")
	fs.BoolVar(&opts.Stats, "stats", false, "Print queue statistics on exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "inputq - window event queue demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputq [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inputq                              Print terminal events until Ctrl-C\n")
		fmt.Fprintf(os.Stderr, "  inputq -format yaml > session.yaml  Record a session\n")
		fmt.Fprintf(os.Stderr, "  inputq -replay session.yaml -stats  Replay it and show queue counters\n")
		fmt.Fprintf(os.Stderr, "  inputq -format json | jq .kind      Stream events as JSON Lines\n")
		fmt.Fprintf(os.Stderr, "  inputq -script handlers.lua -watch  Handle events in Lua\n")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, 0, false
		}
		return opts, 2, false
	}

	if showVersion {
		fmt.Printf("inputq %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return opts, 0, false
	}

	if opts.LogLevel != "" && !logging.ValidLogLevel(opts.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		return opts, 1, false
	}
	if opts.Overflow != "" {
		if _, valid := queue.ParseOverflowPolicy(opts.Overflow); !valid {
			fmt.Fprintf(os.Stderr, "Error: invalid overflow policy %q (must be reject, drop-oldest, or panic)\n", opts.Overflow)
			return opts, 1, false
		}
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", fs.Args())
		return opts, 2, false
	}

	return opts, 0, true
}
