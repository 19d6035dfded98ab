package winapi

import (
	"sync"
	"unsafe"
)

// Native enumeration takes a single C callback plus an LPARAM. Go callbacks
// created with windows.NewCallback are never freed, so one trampoline is
// shared by every enumeration and the LPARAM carries the address of the
// registry entry that selects the visitor for that call.
var visitors = &visitorRegistry{entries: make(map[uintptr]*visitorEntry)}

type visitorEntry struct {
	v Visitor
}

// visitorRegistry keeps entries reachable while native code holds their
// address, and resolves an LPARAM back to its entry without converting the
// integer into a pointer.
type visitorRegistry struct {
	mu      sync.Mutex
	entries map[uintptr]*visitorEntry
}

func (r *visitorRegistry) register(v Visitor) *visitorEntry {
	e := &visitorEntry{v: v}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[uintptr(unsafe.Pointer(e))] = e
	return e
}

func (r *visitorRegistry) unregister(e *visitorEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, uintptr(unsafe.Pointer(e)))
}

func (r *visitorRegistry) lookup(lparam uintptr) (Visitor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[lparam]
	if !ok {
		return nil, false
	}
	return e.v, true
}

func (r *visitorRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// withVisitor registers v for the duration of call, which receives the
// LPARAM to hand to the native enumeration. The registration is removed
// when call returns, whether the enumeration ran to completion, stopped
// early or panicked.
func withVisitor(v Visitor, call func(param unsafe.Pointer)) {
	e := visitors.register(v)
	defer visitors.unregister(e)
	call(unsafe.Pointer(e))
}

// enumProc is the body of the native WNDENUMPROC trampoline.
// It returns 1 to continue and 0 to stop.
func enumProc(hwnd, lparam uintptr) uintptr {
	v, ok := visitors.lookup(lparam)
	if !ok {
		return 0
	}
	if v.Visit(Handle(hwnd)) {
		return 1
	}
	return 0
}
