//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetWindowRect = user32.NewProc("GetWindowRect")
	procSetWindowPos  = user32.NewProc("SetWindowPos")
	procPostMessageW  = user32.NewProc("PostMessageW")

	// Created once: NewCallback slots are a finite, never-released resource.
	enumCallback = windows.NewCallback(enumProc)
)

const wmClose = 0x0010

// User32 implements API on top of user32.dll.
type User32 struct{}

var _ API = (*User32)(nil)

// NewUser32 returns the native API implementation.
func NewUser32() *User32 {
	return &User32{}
}

// WindowRect calls GetWindowRect.
func (User32) WindowRect(h Handle) (Rect, bool) {
	var r Rect
	ret, _, _ := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, false
	}
	return r, true
}

// WindowText calls GetWindowTextW with a MaxTextLength buffer.
func (User32) WindowText(h Handle) string {
	var buf [MaxTextLength]uint16
	n, err := windows.GetWindowText(windows.HWND(h), &buf[0], int32(len(buf)))
	return textFrom(buf[:], n, err)
}

// ClassName calls GetClassNameW with a MaxTextLength buffer.
func (User32) ClassName(h Handle) string {
	var buf [MaxTextLength]uint16
	n, err := windows.GetClassName(windows.HWND(h), &buf[0], int32(len(buf)))
	return textFrom(buf[:], n, err)
}

func textFrom(buf []uint16, n int32, err error) string {
	if err != nil || n <= 0 || int(n) > len(buf) {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// EnumWindows calls EnumWindows through the shared trampoline.
func (User32) EnumWindows(v Visitor) {
	withVisitor(v, func(param unsafe.Pointer) {
		// Reports an error when the visitor stops early; that is not a failure.
		_ = windows.EnumWindows(enumCallback, param)
	})
}

// EnumChildWindows calls EnumChildWindows through the shared trampoline.
func (User32) EnumChildWindows(parent Handle, v Visitor) {
	withVisitor(v, func(param unsafe.Pointer) {
		windows.EnumChildWindows(windows.HWND(parent), enumCallback, param)
	})
}

// SetWindowPos calls SetWindowPos with HWND_TOP and no flags.
func (User32) SetWindowPos(h Handle, x, y, width, height int32) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(h),
		0, // HWND_TOP
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		0,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos %s: %w", h, err)
	}
	return nil
}

// PostClose posts WM_CLOSE so the window can shut down on its own thread.
func (User32) PostClose(h Handle) error {
	ret, _, err := procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostMessage WM_CLOSE %s: %w", h, err)
	}
	return nil
}
