// Package startup manages the "run on startup" entry in the current user's
// Run registry key.
package startup

import "errors"

// ErrUnsupported is returned on platforms without a Run key.
var ErrUnsupported = errors.New("run on startup is only supported on Windows")

const (
	// RunKeyPath is the per-user autostart key, relative to HKEY_CURRENT_USER.
	RunKeyPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`

	// ValueName is the registry value holding the executable path.
	ValueName = "KakaoAdblock"
)

// Entry is one autostart value in a registry key.
type Entry struct {
	KeyPath string
	Name    string
	// Executable is the path the value must hold for the entry to count as
	// enabled.
	Executable string
}

// Toggle enables the entry when it is disabled and disables it otherwise.
// It returns the new state.
func (e Entry) Toggle() (bool, error) {
	enabled, err := e.Enabled()
	if err != nil {
		return false, err
	}
	if enabled {
		return false, e.Disable()
	}
	return true, e.Enable()
}
