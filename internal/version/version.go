// Package version provides build version information for the application.
// This is a separate package so the tray and the CLI can both read it.
package version

// AppName is shown in the tray tooltip and the about box.
const AppName = "KakaoTalk Adblock for Win32"

// Version is the build version string, set by ldflags during build.
// Format: vX.Y.Z or vX.Y.Z-dev for development builds.
var Version = "v1.2.0"

// BuildTime is the build timestamp, set by ldflags during build.
var BuildTime = "unknown"
