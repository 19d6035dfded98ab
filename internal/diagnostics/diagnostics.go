// Package diagnostics counts the remediations performed since start.
package diagnostics

import (
	"sync"
	"time"
)

// TimeLayout is the format used for timestamps in the about box.
const TimeLayout = "2006-01-02 15:04:05"

// Snapshot is a point-in-time copy of the counters. Zero times mean the
// action has not happened yet.
type Snapshot struct {
	RemoveAdLayoutCount uint32    `json:"remove_ad_layout_count"`
	RemoveAdLayoutLast  time.Time `json:"remove_ad_layout_last"`
	RemoveAdPopupCount  uint32    `json:"remove_ad_popup_count"`
	RemoveAdPopupLast   time.Time `json:"remove_ad_popup_last"`
	Started             time.Time `json:"started"`
}

// Diagnostics holds the process-wide counters. Counters only grow.
//
// Writes come from the hook thread, reads from the tray menu goroutine.
type Diagnostics struct {
	mu   sync.RWMutex
	snap Snapshot
}

// New returns zeroed counters stamped with the start time.
func New(started time.Time) *Diagnostics {
	return &Diagnostics{snap: Snapshot{Started: started}}
}

// RecordLayoutRemoval counts one ad-layout resize at t.
func (d *Diagnostics) RecordLayoutRemoval(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.RemoveAdLayoutCount++
	d.snap.RemoveAdLayoutLast = t
}

// RecordPopupRemoval counts one closed ad popup at t.
func (d *Diagnostics) RecordPopupRemoval(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.snap.RemoveAdPopupCount++
	d.snap.RemoveAdPopupLast = t
}

// Snapshot returns a copy of the current counters.
func (d *Diagnostics) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap
}

// FormatTime renders t in local time using TimeLayout, or "None" for the
// zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "None"
	}
	return t.Local().Format(TimeLayout)
}
