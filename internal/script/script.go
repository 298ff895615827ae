// Package script runs drained events through a sandboxed Lua handler.
//
// A script defines a global function on_event that receives each event as
// a table:
//
//	function on_event(ev)
//	    if ev.kind == "key_pressed" and ev.key == 256 then
//	        return false -- stop
//	    end
//	    inputq.log(ev.kind .. " from " .. ev.window)
//	end
//
// Returning false asks the caller to stop draining. Any other return
// value, including none, continues.
package script

import (
	"context"
	"fmt"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputq/internal/event"
	"github.com/dshills/inputq/internal/logging"
)

// HandlerName is the global function called for every event.
const HandlerName = "on_event"

// DefaultTimeout bounds a single on_event call.
const DefaultTimeout = time.Second

// Script owns a Lua state and the source it was loaded from. The mutex
// serializes Handle against reloads triggered by Watch.
type Script struct {
	mu sync.Mutex

	L      *lua.LState
	source string
	path   string
	closed bool

	timeout  time.Duration
	logger   *logging.Logger
	onReload func(error)
}

// Option configures a Script.
type Option func(*Script)

// WithTimeout bounds each on_event call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Script) {
		s.timeout = d
	}
}

// WithLogger sets the logger used by reloads and inputq.log.
func WithLogger(l *logging.Logger) Option {
	return func(s *Script) {
		s.logger = l
	}
}

// WithReloadHook sets a function called after every reload attempt made
// by Watch, with the reload error or nil.
func WithReloadHook(fn func(error)) Option {
	return func(s *Script) {
		s.onReload = fn
	}
}

// New creates a script with an empty sandboxed state.
func New(opts ...Option) *Script {
	s := &Script{
		timeout: DefaultTimeout,
		logger:  logging.NullLogger,
		source:  "<string>",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("script")
	s.L = s.newState()
	return s
}

// newState creates a Lua state with only the base, table, string and
// math libraries, and the inputq module.
func (s *Script) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("inputq", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"log": s.luaLog,
	}))
	return L
}

// luaLog implements inputq.log(msg [, level]).
func (s *Script) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	switch L.OptString(2, "info") {
	case "debug":
		s.logger.Debug("%s", msg)
	case "warn":
		s.logger.Warn("%s", msg)
	case "error":
		s.logger.Error("%s", msg)
	default:
		s.logger.Info("%s", msg)
	}
	return 0
}

// LoadFile executes the Lua file at path and remembers it for Reload.
func (s *Script) LoadFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if err := s.L.DoFile(path); err != nil {
		return &ScriptError{Source: path, Op: "load", Err: err}
	}
	s.path = path
	s.source = path
	return nil
}

// LoadString executes Lua source code.
func (s *Script) LoadString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if err := s.L.DoString(code); err != nil {
		return &ScriptError{Source: "<string>", Op: "load", Err: err}
	}
	return nil
}

// Reload re-reads the file last passed to LoadFile into a fresh state.
// On failure the previous state stays in use.
func (s *Script) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.path == "" {
		return ErrNotLoaded
	}

	L := s.newState()
	if err := L.DoFile(s.path); err != nil {
		L.Close()
		return &ScriptError{Source: s.path, Op: "load", Err: err}
	}
	s.L.Close()
	s.L = L
	s.logger.Info("reloaded %s", s.path)
	return nil
}

// HasHandler reports whether on_event is defined.
func (s *Script) HasHandler() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	return s.L.GetGlobal(HandlerName).Type() == lua.LTFunction
}

// Handle passes ev to on_event. It returns false when the handler
// returned false.
func (s *Script) Handle(ev event.Event) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrClosed
	}

	fn := s.L.GetGlobal(HandlerName)
	if fn.Type() != lua.LTFunction {
		return false, ErrNoHandler
	}

	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	err := s.call(fn, eventTable(s.L, ev))
	if err != nil {
		return false, &ScriptError{Source: s.source, Op: HandlerName, Err: err}
	}

	ret := s.L.Get(-1)
	s.L.Pop(1)
	return ret != lua.LFalse, nil
}

// call runs fn with one argument, keeping exactly one result on the stack.
func (s *Script) call(fn lua.LValue, arg lua.LValue) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, arg)
}

// Close releases the Lua state. Further calls return ErrClosed.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
