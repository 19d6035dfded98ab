//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kakaoadblock/kakaoadblock/internal/adblock"
	"github.com/kakaoadblock/kakaoadblock/internal/config"
	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
	"github.com/kakaoadblock/kakaoadblock/internal/hook"
	"github.com/kakaoadblock/kakaoadblock/internal/logging"
	"github.com/kakaoadblock/kakaoadblock/internal/tray"
	"github.com/kakaoadblock/kakaoadblock/internal/version"
	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
)

// run starts the event listener and the tray and blocks until the user
// exits from the tray menu or the listener fails.
func run(cfg config.Config) error {
	logger, err := logging.New(cfg)
	if err != nil {
		// Fall back to stderr only; a missing log file is not fatal.
		logger = logging.NewConsoleLogger()
		logger.Warn().Err(err).Msg("logging to stderr only")
	}
	defer logger.Close()

	logger.Info().
		Str("version", version.Version).
		Bool("debug", cfg.Debug).
		Msg("starting")

	diag := diagnostics.New(time.Now())
	dispatcher := adblock.NewDispatcher(winapi.NewUser32(), cfg, diag, logger.Component("adblock"))

	listener := hook.New(dispatcher, logger.Component("hook"))
	listener.OnInstalled = func() {
		if n := dispatcher.RemoveAdLayout(); n > 0 {
			logger.Info().Int("moved", n).Msg("removed ad layout at startup")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	trayReady := make(chan struct{})
	trayDone := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return listener.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		select {
		case <-trayReady:
			tray.Quit()
		case <-trayDone:
		}
		return nil
	})

	tray.Run(tray.Options{
		Version:     version.Version,
		Diagnostics: diag,
		Logger:      logger.Component("tray"),
		OnReady:     func() { close(trayReady) },
	})
	close(trayDone)
	cancel()

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("stopped with error")
		tray.ShowError(version.AppName+" - Error", err.Error())
		return err
	}

	snap := diag.Snapshot()
	logger.Info().
		Uint32("ad_layouts_removed", snap.RemoveAdLayoutCount).
		Uint32("ad_popups_closed", snap.RemoveAdPopupCount).
		Msg("exiting")
	return nil
}
