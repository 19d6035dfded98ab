package adblock

import (
	"time"

	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
	"github.com/kakaoadblock/kakaoadblock/internal/logging"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
)

// Offsets of KakaoTalk's window chrome. They belong to a specific build of
// the client and are kept literal.
const (
	mainViewX            = 1
	mainViewY            = 30
	mainViewHeightOffset = 31
	lockViewX            = 1
	lockViewY            = 1
	lockViewHeightOffset = 2
)

// Corrector rearranges a matched ad layout.
type Corrector struct {
	api   winapi.API
	diag  *diagnostics.Diagnostics
	log   *logging.Logger
	clock func() time.Time
}

// NewCorrector creates a corrector recording into diag.
func NewCorrector(api winapi.API, diag *diagnostics.Diagnostics, logger *logging.Logger) *Corrector {
	return &Corrector{api: api, diag: diag, log: logger, clock: time.Now}
}

// Correct collapses the ad view and stretches the main view, and the lock
// view when present, over the freed space. It returns the number of
// SetWindowPos calls that succeeded.
//
// Each step is guarded by a height comparison, so a layout that is already
// correct produces no calls and no counter changes. If the bounds of the
// parent, main view or ad view cannot be read nothing is changed.
func (c *Corrector) Correct(t Target) int {
	mainRect, ok := c.api.WindowRect(t.MainView)
	if !ok {
		return 0
	}
	adRect, ok := c.api.WindowRect(t.AdView)
	if !ok {
		return 0
	}
	parentRect, ok := c.api.WindowRect(t.Parent)
	if !ok {
		return 0
	}
	mainSize, adSize, parentSize := mainRect.Size(), adRect.Size(), parentRect.Size()

	moved := 0

	if adSize.Height != 0 {
		if c.move(t.AdView, 0, 0, 0, 0) {
			moved++
		}
	}

	if want := parentSize.Height - mainViewHeightOffset; mainSize.Height != want {
		if c.move(t.MainView, mainViewX, mainViewY, mainSize.Width, want) {
			moved++
			c.diag.RecordLayoutRemoval(c.clock())
		}
	}

	if t.HasLockView() {
		lockRect, ok := c.api.WindowRect(t.LockView)
		if !ok {
			return moved
		}
		lockSize := lockRect.Size()
		if want := parentSize.Height - lockViewHeightOffset; lockSize.Height != want {
			if c.move(t.LockView, lockViewX, lockViewY, lockSize.Width, want) {
				moved++
				c.diag.RecordLayoutRemoval(c.clock())
			}
		}
	}

	return moved
}

func (c *Corrector) move(h winapi.Handle, x, y, width, height int32) bool {
	if err := c.api.SetWindowPos(h, x, y, width, height); err != nil {
		c.log.Warn().Err(err).Stringer("hwnd", h).Msg("failed to reposition window")
		return false
	}
	c.log.Debug().
		Stringer("hwnd", h).
		Int32("x", x).Int32("y", y).
		Int32("width", width).Int32("height", height).
		Msg("repositioned window")
	return true
}
