// Package adblock finds the KakaoTalk ad banner in the window tree, gives its
// space back to the main view, and closes ad popups as they are created.
package adblock

import "strings"

// Window classes used by KakaoTalk.
const (
	ClassAdView   = "BannerAdWnd"
	ClassLockView = "EVA_ChildWindow_Dblclk"
	ClassMainView = "EVA_ChildWindow"
	ClassPopup    = "RichPopWnd"
)

// Window titles used by KakaoTalk.
const (
	TitleMainWindow     = "카카오톡"
	TitleEdgeWindow     = "KakaoTalkEdgeWnd"
	TitleLockViewPrefix = "LockModeView_"
	TitleMainViewPrefix = "OnlineMainView"
)

// SandboxPrefix is prepended to class names of windows running inside the
// Sandboxie default box.
const SandboxPrefix = "Sandbox:DefaultBox:"

// NormalizeClass strips the sandbox prefix from a class name.
// Every class comparison goes through it.
func NormalizeClass(class string) string {
	return strings.TrimPrefix(class, SandboxPrefix)
}
