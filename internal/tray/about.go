// Package tray is the notification-area icon and its menu.
package tray

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
	"github.com/kakaoadblock/kakaoadblock/internal/version"
)

// AboutText renders the about box body for snap as seen at now.
func AboutText(ver string, snap diagnostics.Snapshot, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", version.AppName, ver)
	fmt.Fprintf(&b, "remove ad layout #: %d (%s)\n", snap.RemoveAdLayoutCount, when(snap.RemoveAdLayoutLast, now))
	fmt.Fprintf(&b, "remove ad popup #: %d (%s)\n", snap.RemoveAdPopupCount, when(snap.RemoveAdPopupLast, now))
	fmt.Fprintf(&b, "start: %s", when(snap.Started, now))
	return b.String()
}

func when(t, now time.Time) string {
	if t.IsZero() {
		return diagnostics.FormatTime(t)
	}
	return diagnostics.FormatTime(t) + ", " + humanize.RelTime(t, now, "ago", "from now")
}

// Tooltip is the tray icon tooltip.
func Tooltip(snap diagnostics.Snapshot) string {
	return fmt.Sprintf("%s\nAd layouts removed: %d\nAd popups closed: %d",
		version.AppName, snap.RemoveAdLayoutCount, snap.RemoveAdPopupCount)
}
