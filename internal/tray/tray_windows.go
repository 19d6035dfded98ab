//go:build windows

package tray

import (
	_ "embed"
	"time"

	"fyne.io/systray"

	"github.com/kakaoadblock/kakaoadblock/internal/diagnostics"
	"github.com/kakaoadblock/kakaoadblock/internal/logging"
	"github.com/kakaoadblock/kakaoadblock/internal/startup"
	"github.com/kakaoadblock/kakaoadblock/internal/version"
)

// Tooltip refresh interval
const refreshInterval = 5 * time.Second

//go:embed assets/icon.ico
var iconData []byte

// Options configures the tray.
type Options struct {
	Version     string
	Diagnostics *diagnostics.Diagnostics
	Logger      *logging.Logger

	// OnReady is called once the icon is shown.
	OnReady func()
}

// trayApp manages the tray menu state.
type trayApp struct {
	opts Options
	log  *logging.Logger

	mAbout   *systray.MenuItem
	mStartup *systray.MenuItem
	mExit    *systray.MenuItem

	setTooltip func(string)
	showInfo   func(title, message string)

	done chan struct{}
}

// Run shows the tray icon and blocks until Quit is called or the user picks
// Exit.
func Run(opts Options) {
	app := &trayApp{
		opts:       opts,
		log:        opts.Logger,
		setTooltip: systray.SetTooltip,
		showInfo:   ShowInfo,
		done:       make(chan struct{}),
	}
	systray.Run(app.onReady, app.onExit)
}

// Quit removes the icon and makes Run return.
func Quit() {
	systray.Quit()
}

func (a *trayApp) onReady() {
	systray.SetIcon(iconData)
	systray.SetTitle(version.AppName)
	systray.SetTooltip(version.AppName)

	a.mAbout = systray.AddMenuItem("About", "Show version and statistics")
	a.mStartup = systray.AddMenuItemCheckbox("Run on startup", "Start with Windows", false)
	systray.AddSeparator()
	a.mExit = systray.AddMenuItem("Exit", "Stop removing ads and exit")

	a.refreshStartup()

	go a.refreshLoop()
	go a.handleMenuClicks()

	if a.opts.OnReady != nil {
		a.opts.OnReady()
	}
}

func (a *trayApp) onExit() {
	close(a.done)
}

// refreshLoop keeps the tooltip counters current.
func (a *trayApp) refreshLoop() {
	a.refreshTooltip()

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refreshTooltip()
		case <-a.done:
			return
		}
	}
}

func (a *trayApp) refreshTooltip() {
	a.setTooltip(Tooltip(a.opts.Diagnostics.Snapshot()))
}

// handleMenuClicks processes menu item clicks.
func (a *trayApp) handleMenuClicks() {
	for {
		select {
		case <-a.mAbout.ClickedCh:
			// The box is modal; keep serving Exit while it is open.
			go a.showAbout()

		case <-a.mStartup.ClickedCh:
			a.toggleStartup()

		case <-a.mExit.ClickedCh:
			systray.Quit()
			return

		case <-a.done:
			return
		}
	}
}

func (a *trayApp) showAbout() {
	text := AboutText(a.opts.Version, a.opts.Diagnostics.Snapshot(), time.Now())
	a.showInfo("About", text)
}

// refreshStartup syncs the checkbox with the registry.
func (a *trayApp) refreshStartup() {
	entry, err := startup.Current()
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to resolve startup entry")
		a.mStartup.Disable()
		return
	}
	enabled, err := entry.Enabled()
	if err != nil {
		a.log.Warn().Err(err).Msg("failed to read startup entry")
		return
	}
	if enabled {
		a.mStartup.Check()
	} else {
		a.mStartup.Uncheck()
	}
}

func (a *trayApp) toggleStartup() {
	entry, err := startup.Current()
	if err == nil {
		var enabled bool
		enabled, err = entry.Toggle()
		if err == nil {
			a.log.Info().Bool("enabled", enabled).Msg("run on startup changed")
		}
	}
	if err != nil {
		a.log.Error().Err(err).Msg("failed to toggle run on startup")
		ShowError("Run On Startup - Error", err.Error())
	}
	a.refreshStartup()
}
