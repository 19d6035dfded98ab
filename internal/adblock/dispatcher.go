package adblock

import (
	"time"

	"github.com/kakaoadblock/kakaoadblock/internal/config"
	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
	"github.com/kakaoadblock/kakaoadblock/internal/logging"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
	"github.com/kakaoadblock/kakaoadblock/internal/window"
)

// State is the dispatcher's processing state.
type State int

const (
	StateIdle State = iota
	StateHandling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHandling:
		return "handling"
	default:
		return "unknown"
	}
}

// Dispatcher reacts to window events. It owns the diagnostics counters and
// the configuration the event handlers read.
//
// Events arrive one at a time on the hook thread, so the dispatcher keeps no
// queue. A native call made during a layout scan can pump messages and
// deliver another event before the scan returns. Nested popup creations are
// handled immediately; nested re-scan requests collapse into a single extra
// scan once the current one finishes.
type Dispatcher struct {
	api       winapi.API
	cfg       config.Config
	diag      *diagnostics.Diagnostics
	corrector *Corrector
	log       *logging.Logger
	clock     func() time.Time

	state         State
	rescanPending bool
}

// NewDispatcher wires a dispatcher to the native API.
func NewDispatcher(api winapi.API, cfg config.Config, diag *diagnostics.Diagnostics, logger *logging.Logger) *Dispatcher {
	return &Dispatcher{
		api:       api,
		cfg:       cfg,
		diag:      diag,
		corrector: NewCorrector(api, diag, logger),
		log:       logger,
		clock:     time.Now,
	}
}

// Diagnostics returns the counters updated by this dispatcher.
func (d *Dispatcher) Diagnostics() *diagnostics.Diagnostics {
	return d.diag
}

// State returns the current processing state.
func (d *Dispatcher) State() State {
	return d.state
}

// HandleEvent processes one WinEvent for window h.
func (d *Dispatcher) HandleEvent(event uint32, h winapi.Handle) {
	detail := window.Read(d.api, h)
	rect, ok := d.api.WindowRect(h)
	if !ok {
		return
	}

	if d.cfg.Debug && event == winapi.EventObjectCreate {
		d.log.Info().Object("window", detail).Stringer("size", rect.Size()).Msg("window created")
	}

	switch {
	case event == winapi.EventObjectCreate && IsPopup(detail):
		d.suppressPopup(detail)
	case detail.Title == TitleEdgeWindow:
		// The edge window changes on most KakaoTalk layout changes; it is
		// used as a signal to re-check everything, not as the window to fix.
		d.rescan(event)
	}
}

// rescan runs RemoveAdLayout unless a scan is already in progress, in which
// case one more scan is queued behind it.
func (d *Dispatcher) rescan(event uint32) {
	if d.state == StateHandling {
		d.log.Debug().Uint32("event", event).Msg("deferred nested re-scan")
		d.rescanPending = true
		return
	}
	d.state = StateHandling
	defer func() { d.state = StateIdle }()

	d.RemoveAdLayout()
	if d.rescanPending {
		d.RemoveAdLayout()
		d.rescanPending = false
	}
}

// suppressPopup asks the popup to close before it finishes rendering.
func (d *Dispatcher) suppressPopup(detail window.Detail) {
	if err := d.api.PostClose(detail.Handle); err != nil {
		d.log.Warn().Err(err).Object("window", detail).Msg("failed to close ad popup")
		return
	}
	d.diag.RecordPopupRemoval(d.clock())
	d.log.Debug().Object("window", detail).Msg("closed ad popup")
}

// RemoveAdLayout scans the window tree from scratch and corrects the ad
// layout if one is found. It returns the number of windows repositioned.
func (d *Dispatcher) RemoveAdLayout() int {
	target, ok := Match(window.Snapshot(d.api, TitleMainWindow))
	if !ok {
		return 0
	}
	return d.corrector.Correct(target)
}
