// Package winapi is the boundary between the ad remover and the native
// window manager.
//
// Everything above this package talks to the API interface, so matching and
// layout correction can be exercised off-Windows against winapitest.Fake.
// The user32.dll implementation lives in user32_windows.go.
package winapi

import "fmt"

// Handle is a native window handle (HWND).
type Handle uintptr

func (h Handle) String() string {
	return fmt.Sprintf("0x%08X", uintptr(h))
}

// Rect has the memory layout of a Win32 RECT, in screen coordinates.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Right - r.Left, Height: r.Bottom - r.Top}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int32
	Height int32
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// MaxTextLength is the buffer length, in UTF-16 units, used when reading
// window titles and class names. Longer values are truncated.
const MaxTextLength = 255

// WinEvent codes the listener subscribes to.
const (
	EventSystemMoveSizeEnd       uint32 = 0x000B
	EventObjectCreate            uint32 = 0x8000
	EventObjectLocationChange    uint32 = 0x800B
	EventObjectLiveRegionChanged uint32 = 0x8019
)

// InterestedEvents lists every event the ad remover reacts to. The hook is
// registered for the contiguous range [min, max] over this list.
var InterestedEvents = []uint32{
	EventObjectCreate,
	EventSystemMoveSizeEnd,
	EventObjectLocationChange,
	EventObjectLiveRegionChanged,
}

// EventRange returns the smallest and largest code in InterestedEvents.
func EventRange() (lo, hi uint32) {
	lo, hi = InterestedEvents[0], InterestedEvents[0]
	for _, e := range InterestedEvents[1:] {
		if e < lo {
			lo = e
		}
		if e > hi {
			hi = e
		}
	}
	return lo, hi
}

// Visitor receives window handles during an enumeration.
// Returning false stops the enumeration.
type Visitor interface {
	Visit(h Handle) bool
}

// VisitorFunc adapts an ordinary function to the Visitor interface.
type VisitorFunc func(h Handle) bool

// Visit calls f(h).
func (f VisitorFunc) Visit(h Handle) bool {
	return f(h)
}

// API is the set of native window operations the ad remover needs.
type API interface {
	// WindowRect returns the bounds of h, or false if they cannot be read
	// (typically because the window is already destroyed).
	WindowRect(h Handle) (Rect, bool)

	// WindowText returns the title of h, truncated to MaxTextLength-1 units.
	WindowText(h Handle) string

	// ClassName returns the window class of h, truncated to MaxTextLength-1 units.
	ClassName(h Handle) string

	// EnumWindows visits every top-level window.
	EnumWindows(v Visitor)

	// EnumChildWindows visits every child window of parent.
	EnumChildWindows(parent Handle, v Visitor)

	// SetWindowPos moves and resizes h.
	SetWindowPos(h Handle, x, y, width, height int32) error

	// PostClose posts WM_CLOSE to h.
	PostClose(h Handle) error
}
