package adblock

import (
	"strings"

	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
	"github.com/kakaoadblock/kakaoadblock/internal/window"
)

// Target is one matched ad layout: the ad banner, the main view whose space
// it took, their shared parent and, in locked state, the lock overlay.
type Target struct {
	Parent   winapi.Handle
	MainView winapi.Handle
	AdView   winapi.Handle
	LockView winapi.Handle // zero when the app is not locked
}

// HasLockView reports whether a lock overlay was matched.
func (t Target) HasLockView() bool {
	return t.LockView != 0
}

func isMainView(d window.Detail) bool {
	return NormalizeClass(d.Class) == ClassMainView && strings.HasPrefix(d.Title, TitleMainViewPrefix)
}

func isAdView(d window.Detail) bool {
	return NormalizeClass(d.Class) == ClassAdView && d.Title == ""
}

func isLockView(d window.Detail) bool {
	return NormalizeClass(d.Class) == ClassLockView && strings.HasPrefix(d.Title, TitleLockViewPrefix)
}

// IsPopup reports whether a freshly created window is an ad popup.
func IsPopup(d window.Detail) bool {
	return NormalizeClass(d.Class) == ClassPopup && d.Title == ""
}

// Match looks for the ad layout in a snapshot produced by window.Snapshot.
// It returns false whenever the layout is not recognisable; a KakaoTalk
// version or state with a different window structure is not an error.
func Match(details []window.Detail) (Target, bool) {
	main, ok := find(details, isMainView)
	if !ok || !main.HasParent() {
		return Target{}, false
	}
	ad, ok := find(details, isAdView)
	if !ok || ad.Parent != main.Parent {
		return Target{}, false
	}

	target := Target{
		Parent:   main.Parent,
		MainView: main.Handle,
		AdView:   ad.Handle,
	}
	if lock, ok := find(details, isLockView); ok && lock.Parent == main.Parent {
		target.LockView = lock.Handle
	}
	return target, true
}

func find(details []window.Detail, pred func(window.Detail) bool) (window.Detail, bool) {
	for _, d := range details {
		if pred(d) {
			return d, true
		}
	}
	return window.Detail{}, false
}
