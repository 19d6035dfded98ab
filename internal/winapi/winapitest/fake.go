// Package winapitest provides an in-memory window tree implementing
// winapi.API, for tests of code that inspects and rearranges windows.
package winapitest

import (
	"errors"
	"sync"

	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
)

// ErrInjected is returned by mutations on windows marked with FailMutations.
var ErrInjected = errors.New("winapitest: injected failure")

// Window describes one fake window.
type Window struct {
	Handle winapi.Handle
	Parent winapi.Handle // zero for top-level windows
	Class  string
	Title  string
	Rect   winapi.Rect

	// Destroyed makes WindowRect fail, as for a window torn down between
	// the event and the read.
	Destroyed bool

	// FailMutations makes SetWindowPos and PostClose return ErrInjected.
	FailMutations bool
}

// MoveCall records one SetWindowPos invocation.
type MoveCall struct {
	Handle              winapi.Handle
	X, Y, Width, Height int32
}

// Fake is a mutable window tree. SetWindowPos updates the stored bounds so
// repeated passes observe their own effects. It is safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	order   []winapi.Handle
	windows map[winapi.Handle]*Window

	moves  []MoveCall
	closes []winapi.Handle

	// OnSetWindowPos, when set, runs after every successful SetWindowPos,
	// outside the fake's lock.
	OnSetWindowPos func(MoveCall)
}

// New returns an empty fake.
func New() *Fake {
	return &Fake{windows: make(map[winapi.Handle]*Window)}
}

var _ winapi.API = (*Fake)(nil)

// Add inserts w. Windows are enumerated in insertion order.
func (f *Fake) Add(w Window) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := w
	if _, exists := f.windows[w.Handle]; !exists {
		f.order = append(f.order, w.Handle)
	}
	f.windows[w.Handle] = &cp
	return f
}

// Window returns a copy of the stored window.
func (f *Fake) Window(h winapi.Handle) (Window, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.windows[h]
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// Moves returns every SetWindowPos call made so far.
func (f *Fake) Moves() []MoveCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]MoveCall(nil), f.moves...)
}

// Closes returns every window PostClose was called for.
func (f *Fake) Closes() []winapi.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]winapi.Handle(nil), f.closes...)
}

// MutationCount is len(Moves()) + len(Closes()).
func (f *Fake) MutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.moves) + len(f.closes)
}

// Reset forgets recorded calls but keeps the window tree.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.moves = nil
	f.closes = nil
}

// WindowRect implements winapi.API.
func (f *Fake) WindowRect(h winapi.Handle) (winapi.Rect, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.windows[h]
	if !ok || w.Destroyed {
		return winapi.Rect{}, false
	}
	return w.Rect, true
}

// WindowText implements winapi.API.
func (f *Fake) WindowText(h winapi.Handle) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.windows[h]; ok {
		return truncate(w.Title)
	}
	return ""
}

// ClassName implements winapi.API.
func (f *Fake) ClassName(h winapi.Handle) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w, ok := f.windows[h]; ok {
		return truncate(w.Class)
	}
	return ""
}

// EnumWindows implements winapi.API.
func (f *Fake) EnumWindows(v winapi.Visitor) {
	for _, h := range f.children(0) {
		if !v.Visit(h) {
			return
		}
	}
}

// EnumChildWindows implements winapi.API. Like the native call it visits
// every descendant, depth first.
func (f *Fake) EnumChildWindows(parent winapi.Handle, v winapi.Visitor) {
	f.walk(parent, v)
}

func (f *Fake) walk(parent winapi.Handle, v winapi.Visitor) bool {
	for _, h := range f.children(parent) {
		if !v.Visit(h) {
			return false
		}
		if !f.walk(h, v) {
			return false
		}
	}
	return true
}

// children snapshots the direct children of parent so visitors may call
// back into the fake.
func (f *Fake) children(parent winapi.Handle) []winapi.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []winapi.Handle
	for _, h := range f.order {
		if f.windows[h].Parent == parent {
			out = append(out, h)
		}
	}
	return out
}

// SetWindowPos implements winapi.API.
func (f *Fake) SetWindowPos(h winapi.Handle, x, y, width, height int32) error {
	call := MoveCall{Handle: h, X: x, Y: y, Width: width, Height: height}

	f.mu.Lock()
	w, ok := f.windows[h]
	if !ok || w.Destroyed || w.FailMutations {
		f.mu.Unlock()
		return ErrInjected
	}
	f.moves = append(f.moves, call)
	w.Rect = winapi.Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
	hook := f.OnSetWindowPos
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	return nil
}

// PostClose implements winapi.API.
func (f *Fake) PostClose(h winapi.Handle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.windows[h]
	if !ok || w.FailMutations {
		return ErrInjected
	}
	f.closes = append(f.closes, h)
	return nil
}

// truncate keeps what a MaxTextLength buffer returns: the text plus its
// terminating NUL must fit.
func truncate(s string) string {
	u := []rune(s)
	n := 0
	for i, r := range u {
		units := 1
		if r >= 0x10000 {
			units = 2
		}
		if n+units > winapi.MaxTextLength-1 {
			return string(u[:i])
		}
		n += units
	}
	return s
}
