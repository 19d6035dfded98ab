package tray

import (
	"strings"
	"testing"
	"time"

	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
)

func TestAboutText_NoActivity(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)
	snap := diagnostics.Snapshot{Started: now.Add(-2 * time.Hour)}

	text := AboutText("v1.2.0", snap, now)

	want := []string{
		"KakaoTalk Adblock for Win32 v1.2.0",
		"remove ad layout #: 0 (None)",
		"remove ad popup #: 0 (None)",
		"start: 2026-10-19 10:00:00, 2 hours ago",
	}
	for _, w := range want {
		if !strings.Contains(text, w) {
			t.Errorf("Expected %q in about text:\n%s", w, text)
		}
	}
}

func TestAboutText_WithActivity(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)
	snap := diagnostics.Snapshot{
		RemoveAdLayoutCount: 4,
		RemoveAdLayoutLast:  now.Add(-3 * time.Minute),
		RemoveAdPopupCount:  1,
		RemoveAdPopupLast:   now.Add(-30 * time.Second),
		Started:             now.Add(-time.Hour),
	}

	text := AboutText("v1.2.0", snap, now)

	want := []string{
		"remove ad layout #: 4 (2026-10-19 11:57:00, 3 minutes ago)",
		"remove ad popup #: 1 (2026-10-19 11:59:30, 30 seconds ago)",
	}
	for _, w := range want {
		if !strings.Contains(text, w) {
			t.Errorf("Expected %q in about text:\n%s", w, text)
		}
	}
}

func TestTooltip(t *testing.T) {
	got := Tooltip(diagnostics.Snapshot{RemoveAdLayoutCount: 2, RemoveAdPopupCount: 5})
	if !strings.Contains(got, "Ad layouts removed: 2") || !strings.Contains(got, "Ad popups closed: 5") {
		t.Errorf("Unexpected tooltip: %q", got)
	}
}
