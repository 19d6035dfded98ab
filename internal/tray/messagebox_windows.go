//go:build windows

package tray

import (
	"golang.org/x/sys/windows"
)

const (
	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconInformation = 0x00000040
	mbSetForeground   = 0x00010000
)

// ShowInfo displays a modal information box.
func ShowInfo(title, message string) {
	showMessageBox(title, message, mbOK|mbIconInformation|mbSetForeground)
}

// ShowError displays a modal error box. It works before the tray is up,
// so startup failures can use it too.
func ShowError(title, message string) {
	showMessageBox(title, message, mbOK|mbIconError|mbSetForeground)
}

func showMessageBox(title, message string, flags uint32) {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	windows.MessageBox(0, messagePtr, titlePtr, flags)
}
