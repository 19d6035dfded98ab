package adblock

import (
	"testing"

	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi/winapitest"
)

func defaultTarget() Target {
	return Target{Parent: hwndParent, MainView: hwndMain, AdView: hwndAd}
}

func TestCorrect_ResizesMainView(t *testing.T) {
	l := defaultLayout()
	l.adHeight = 0
	api := l.build()
	c, diag := newTestCorrector(api)

	if moved := c.Correct(defaultTarget()); moved != 1 {
		t.Errorf("Expected 1 move, got %d", moved)
	}

	moves := api.Moves()
	if len(moves) != 1 {
		t.Fatalf("Expected 1 SetWindowPos call, got %d: %+v", len(moves), moves)
	}
	want := winapitest.MoveCall{Handle: hwndMain, X: 1, Y: 30, Width: 398, Height: 769}
	if moves[0] != want {
		t.Errorf("Expected %+v, got %+v", want, moves[0])
	}

	snap := diag.Snapshot()
	if snap.RemoveAdLayoutCount != 1 {
		t.Errorf("Expected layout count 1, got %d", snap.RemoveAdLayoutCount)
	}
	if !snap.RemoveAdLayoutLast.Equal(fixedNow) {
		t.Errorf("Expected layout timestamp %v, got %v", fixedNow, snap.RemoveAdLayoutLast)
	}
}

func TestCorrect_AlreadyCorrectMainView(t *testing.T) {
	l := defaultLayout()
	l.adHeight = 0
	l.mainHeight = 769
	api := l.build()
	c, diag := newTestCorrector(api)

	if moved := c.Correct(defaultTarget()); moved != 0 {
		t.Errorf("Expected no moves, got %d", moved)
	}
	if n := api.MutationCount(); n != 0 {
		t.Errorf("Expected no native mutations, got %d", n)
	}
	if got := diag.Snapshot().RemoveAdLayoutCount; got != 0 {
		t.Errorf("Expected layout count 0, got %d", got)
	}
}

func TestCorrect_CollapsesVisibleAdView(t *testing.T) {
	for _, mainHeight := range []int32{800, 769} {
		l := defaultLayout()
		l.mainHeight = mainHeight
		api := l.build()
		c, _ := newTestCorrector(api)

		c.Correct(defaultTarget())

		moves := api.Moves()
		if len(moves) == 0 || moves[0] != (winapitest.MoveCall{Handle: hwndAd}) {
			t.Errorf("main height %d: expected ad view collapsed to zero first, got %+v", mainHeight, moves)
		}
		w, _ := api.Window(hwndAd)
		if w.Rect.Size() != (winapi.Size{}) {
			t.Errorf("main height %d: expected ad view size 0x0, got %v", mainHeight, w.Rect.Size())
		}
	}
}

func TestCorrect_AdCollapseDoesNotCount(t *testing.T) {
	l := defaultLayout()
	l.mainHeight = 769
	api := l.build()
	c, diag := newTestCorrector(api)

	if moved := c.Correct(defaultTarget()); moved != 1 {
		t.Errorf("Expected only the ad collapse, got %d moves", moved)
	}
	if got := diag.Snapshot().RemoveAdLayoutCount; got != 0 {
		t.Errorf("Expected layout count 0 for ad collapse alone, got %d", got)
	}
}

func TestCorrect_Idempotent(t *testing.T) {
	l := defaultLayout()
	l.lockHeight = 300
	api := l.build()
	c, diag := newTestCorrector(api)
	target := defaultTarget()
	target.LockView = hwndLock

	if moved := c.Correct(target); moved != 3 {
		t.Fatalf("Expected 3 moves on first pass, got %d", moved)
	}
	first := diag.Snapshot()
	api.Reset()

	if moved := c.Correct(target); moved != 0 {
		t.Errorf("Expected no moves on second pass, got %d", moved)
	}
	if n := api.MutationCount(); n != 0 {
		t.Errorf("Expected no native mutations on second pass, got %d", n)
	}
	if second := diag.Snapshot(); second != first {
		t.Errorf("Counters changed on second pass: %+v -> %+v", first, second)
	}
}

func TestCorrect_ResizesLockView(t *testing.T) {
	l := defaultLayout()
	l.adHeight = 0
	l.mainHeight = 769
	l.lockHeight = 500
	api := l.build()
	c, diag := newTestCorrector(api)
	target := defaultTarget()
	target.LockView = hwndLock

	if moved := c.Correct(target); moved != 1 {
		t.Fatalf("Expected 1 move, got %d", moved)
	}
	want := winapitest.MoveCall{Handle: hwndLock, X: 1, Y: 1, Width: 398, Height: 798}
	if got := api.Moves()[0]; got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if got := diag.Snapshot().RemoveAdLayoutCount; got != 1 {
		t.Errorf("Expected layout count 1, got %d", got)
	}
}

func TestCorrect_UnreadableBoundsSkipTarget(t *testing.T) {
	for _, h := range []winapi.Handle{hwndParent, hwndMain, hwndAd} {
		api := defaultLayout().build()
		w, _ := api.Window(h)
		w.Destroyed = true
		api.Add(w)
		c, diag := newTestCorrector(api)

		if moved := c.Correct(defaultTarget()); moved != 0 {
			t.Errorf("%s destroyed: expected no moves, got %d", h, moved)
		}
		if n := api.MutationCount(); n != 0 {
			t.Errorf("%s destroyed: expected no native mutations, got %d", h, n)
		}
		if got := diag.Snapshot().RemoveAdLayoutCount; got != 0 {
			t.Errorf("%s destroyed: expected layout count 0, got %d", h, got)
		}
	}
}

func TestCorrect_UnreadableLockViewKeepsMainFix(t *testing.T) {
	l := defaultLayout()
	l.lockHeight = 500
	api := l.build()
	w, _ := api.Window(hwndLock)
	w.Destroyed = true
	api.Add(w)
	c, _ := newTestCorrector(api)
	target := defaultTarget()
	target.LockView = hwndLock

	if moved := c.Correct(target); moved != 2 {
		t.Errorf("Expected ad collapse and main resize, got %d moves", moved)
	}
}

func TestCorrect_FailedMoveDoesNotCount(t *testing.T) {
	api := defaultLayout().build()
	w, _ := api.Window(hwndMain)
	w.FailMutations = true
	api.Add(w)
	c, diag := newTestCorrector(api)

	if moved := c.Correct(defaultTarget()); moved != 1 {
		t.Errorf("Expected only the ad collapse to succeed, got %d", moved)
	}
	if got := diag.Snapshot().RemoveAdLayoutCount; got != 0 {
		t.Errorf("Expected layout count 0 after failed resize, got %d", got)
	}
}
