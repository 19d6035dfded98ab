//go:build !windows

package hook

import "context"

// Run is a stub for non-Windows platforms.
func (l *Listener) Run(ctx context.Context) error {
	return ErrUnsupported
}
