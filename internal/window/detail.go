// Package window reads window details from the native window tree.
package window

import (
	"github.com/rs/zerolog"

	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
)

// Detail is what is known about one window at enumeration time.
type Detail struct {
	Handle winapi.Handle
	// Parent is the top-level window the detail was collected under, or
	// zero when the window itself is the top-level one.
	Parent winapi.Handle
	Class  string
	Title  string
}

// HasParent reports whether the detail was collected as a child.
func (d Detail) HasParent() bool {
	return d.Parent != 0
}

// MarshalZerologObject lets details be logged with Object().
func (d Detail) MarshalZerologObject(e *zerolog.Event) {
	e.Stringer("hwnd", d.Handle)
	if d.HasParent() {
		e.Stringer("parent", d.Parent)
	}
	e.Str("class", d.Class).Str("title", d.Title)
}

// Read returns the class and title of h. The parent is left empty.
func Read(api winapi.API, h winapi.Handle) Detail {
	return Detail{
		Handle: h,
		Class:  api.ClassName(h),
		Title:  api.WindowText(h),
	}
}

// Snapshot finds the first top-level window whose title equals title and
// returns the details of all its child windows followed by the top-level
// window itself. Children carry the top-level handle as Parent. The result
// is empty when no such window exists.
func Snapshot(api winapi.API, title string) []Detail {
	var details []Detail

	api.EnumWindows(winapi.VisitorFunc(func(h winapi.Handle) bool {
		top := Read(api, h)
		if top.Title != title {
			return true
		}

		api.EnumChildWindows(h, winapi.VisitorFunc(func(child winapi.Handle) bool {
			d := Read(api, child)
			d.Parent = h
			details = append(details, d)
			return true
		}))
		details = append(details, top)
		return false
	}))

	return details
}
