//go:build !windows

package tray

import (
	"fmt"
	"os"
)

// ShowError prints to stderr on non-Windows platforms.
func ShowError(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
