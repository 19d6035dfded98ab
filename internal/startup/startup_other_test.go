//go:build !windows

package startup

import (
	"errors"
	"testing"
)

func TestUnsupported(t *testing.T) {
	if _, err := Current(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Current: expected ErrUnsupported, got %v", err)
	}

	e := Entry{KeyPath: RunKeyPath, Name: ValueName, Executable: "/usr/bin/kakaoadblock"}
	if _, err := e.Toggle(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Toggle: expected ErrUnsupported, got %v", err)
	}
	if err := e.Enable(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Enable: expected ErrUnsupported, got %v", err)
	}
}
