//go:build !windows

package startup

// Current is a stub for non-Windows platforms.
func Current() (Entry, error) {
	return Entry{}, ErrUnsupported
}

// Enabled always reports ErrUnsupported on non-Windows platforms.
func (e Entry) Enabled() (bool, error) {
	return false, ErrUnsupported
}

// Enable always reports ErrUnsupported on non-Windows platforms.
func (e Entry) Enable() error {
	return ErrUnsupported
}

// Disable always reports ErrUnsupported on non-Windows platforms.
func (e Entry) Disable() error {
	return ErrUnsupported
}
