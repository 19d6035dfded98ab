// KakaoTalk Adblock for Win32 - removes the ad banner and ad popups from the
// KakaoTalk desktop client.
//
// Build for Windows:
//
//	GOOS=windows go build -ldflags "-H=windowsgui" ./cmd/kakaoadblock
//
// The program sits in the notification area. It listens for window events
// system-wide, collapses KakaoTalk's banner ad and gives the space back to
// the chat list, and closes ad popups as soon as they are created.
package main

import (
	"os"

	"github.com/kakaoadblock/kakaoadblock/internal/version"
)

// Version information, overridable with -ldflags "-X main.Version=...".
var (
	Version   = "v1.2.0"
	BuildTime = "unknown"
)

func main() {
	version.Version = Version
	version.BuildTime = BuildTime

	if err := newRootCmd(run).Execute(); err != nil {
		os.Exit(1)
	}
}
