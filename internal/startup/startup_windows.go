//go:build windows

package startup

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"
)

// Current returns the entry for the running executable.
func Current() (Entry, error) {
	exe, err := os.Executable()
	if err != nil {
		return Entry{}, fmt.Errorf("failed to find executable path: %w", err)
	}
	return Entry{KeyPath: RunKeyPath, Name: ValueName, Executable: exe}, nil
}

// Enabled reports whether the value exists and points at e.Executable.
// A value pointing at another copy of the program counts as disabled.
func (e Entry) Enabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, e.KeyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open %s: %w", e.KeyPath, err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(e.Name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", e.Name, err)
	}
	return value == e.Executable, nil
}

// Enable writes the executable path to the Run key.
func (e Entry) Enable() error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, e.KeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.KeyPath, err)
	}
	defer key.Close()

	if err := key.SetStringValue(e.Name, e.Executable); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.Name, err)
	}
	return nil
}

// Disable removes the value. Removing a missing value is not an error.
func (e Entry) Disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, e.KeyPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", e.KeyPath, err)
	}
	defer key.Close()

	if err := key.DeleteValue(e.Name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", e.Name, err)
	}
	return nil
}
