package adblock

import (
	"time"

	"github.com/kakaoadblock/kakaoadblock/internal/config"
	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
	"github.com/kakaoadblock/kakaoadblock/internal/logging"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi/winapitest"
)

const (
	hwndOther  winapi.Handle = 0x10
	hwndParent winapi.Handle = 0x100
	hwndMain   winapi.Handle = 0x101
	hwndAd     winapi.Handle = 0x102
	hwndLock   winapi.Handle = 0x103
	hwndEdge   winapi.Handle = 0x200
	hwndPopup  winapi.Handle = 0x300
)

var fixedNow = time.Date(2026, 10, 19, 12, 30, 0, 0, time.Local)

// layout describes the KakaoTalk window tree a test starts from.
type layout struct {
	parentHeight int32
	mainHeight   int32
	adHeight     int32
	lockHeight   int32 // 0 means no lock view
	classPrefix  string
}

func defaultLayout() layout {
	return layout{parentHeight: 800, mainHeight: 800, adHeight: 40}
}

func (l layout) build() *winapitest.Fake {
	f := winapitest.New().
		Add(winapitest.Window{Handle: hwndOther, Class: "Chrome_WidgetWin_1", Title: "Browser",
			Rect: winapi.Rect{Right: 1024, Bottom: 768}}).
		Add(winapitest.Window{Handle: hwndParent, Class: l.classPrefix + "EVA_Window_Dblclk", Title: TitleMainWindow,
			Rect: winapi.Rect{Left: 100, Top: 100, Right: 500, Bottom: 100 + l.parentHeight}}).
		Add(winapitest.Window{Handle: hwndMain, Parent: hwndParent, Class: l.classPrefix + ClassMainView,
			Title: TitleMainViewPrefix + "_0x0002F3A8",
			Rect:  winapi.Rect{Left: 101, Top: 100, Right: 499, Bottom: 100 + l.mainHeight}}).
		Add(winapitest.Window{Handle: hwndAd, Parent: hwndParent, Class: l.classPrefix + ClassAdView,
			Rect: winapi.Rect{Left: 101, Top: 700, Right: 499, Bottom: 700 + l.adHeight}})
	if l.lockHeight != 0 {
		f.Add(winapitest.Window{Handle: hwndLock, Parent: hwndParent, Class: l.classPrefix + ClassLockView,
			Title: TitleLockViewPrefix + "0x0004",
			Rect:  winapi.Rect{Left: 101, Top: 101, Right: 499, Bottom: 101 + l.lockHeight}})
	}
	f.Add(winapitest.Window{Handle: hwndEdge, Class: "EVA_Window", Title: TitleEdgeWindow,
		Rect: winapi.Rect{Right: 10, Bottom: 10}})
	return f
}

func newTestDispatcher(api winapi.API, cfg config.Config) *Dispatcher {
	d := NewDispatcher(api, cfg, diagnostics.New(fixedNow.Add(-time.Hour)), logging.Nop())
	clock := func() time.Time { return fixedNow }
	d.clock = clock
	d.corrector.clock = clock
	return d
}

func newTestCorrector(api winapi.API) (*Corrector, *diagnostics.Diagnostics) {
	diag := diagnostics.New(fixedNow.Add(-time.Hour))
	c := NewCorrector(api, diag, logging.Nop())
	c.clock = func() time.Time { return fixedNow }
	return c, diag
}
