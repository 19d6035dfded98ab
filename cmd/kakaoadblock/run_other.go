//go:build !windows

package main

import (
	"github.com/kakaoadblock/kakaoadblock/internal/config"
	"github.com/kakaoadblock/kakaoadblock/internal/hook"
)

// run is a stub for non-Windows platforms.
func run(cfg config.Config) error {
	return hook.ErrUnsupported
}
