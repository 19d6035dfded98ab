// Package hook subscribes to system-wide window events and forwards them to
// a Handler on a dedicated OS thread.
package hook

import (
	"errors"
	"sync/atomic"

	"github.com/kakaoadblock/kakaoadblock/internal/logging"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
)

var (
	// ErrInstall is returned when the event hook cannot be registered.
	ErrInstall = errors.New("failed to install window event hook")

	// ErrActive is returned when another listener is already running.
	ErrActive = errors.New("a window event listener is already running")

	// ErrUnsupported is returned on platforms without window events.
	ErrUnsupported = errors.New("window event hooks are only supported on Windows")
)

// Handler receives one window event at a time.
type Handler interface {
	HandleEvent(event uint32, hwnd winapi.Handle)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(event uint32, hwnd winapi.Handle)

// HandleEvent calls f(event, hwnd).
func (f HandlerFunc) HandleEvent(event uint32, hwnd winapi.Handle) {
	f(event, hwnd)
}

// Listener owns one event hook registration.
type Listener struct {
	handler Handler
	log     *logging.Logger

	// OnInstalled, when set, runs on the hook thread right after the hook
	// is registered and before the first event is delivered.
	OnInstalled func()
}

// New creates a listener forwarding events to h.
func New(h Handler, logger *logging.Logger) *Listener {
	return &Listener{handler: h, log: logger}
}

// The native callback has no context argument, so the running listener is
// published here for it.
var active atomic.Pointer[Listener]

func activate(l *Listener) error {
	if !active.CompareAndSwap(nil, l) {
		return ErrActive
	}
	return nil
}

func deactivate(l *Listener) {
	active.CompareAndSwap(l, nil)
}

// dispatch delivers one event to the active listener. A panic in the
// handler is logged and swallowed so it cannot unwind through native code.
func dispatch(event uint32, hwnd winapi.Handle) {
	l := active.Load()
	if l == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().
				Interface("panic", r).
				Uint32("event", event).
				Stringer("hwnd", hwnd).
				Msg("window event handler panicked")
		}
	}()
	l.handler.HandleEvent(event, hwnd)
}
