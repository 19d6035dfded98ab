//go:build windows

package hook

import (
	"context"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/kakaoadblock/kakaoadblock/internal/winapi"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWinEventHook    = user32.NewProc("SetWinEventHook")
	procUnhookWinEvent     = user32.NewProc("UnhookWinEvent")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")

	winEventCallback = windows.NewCallback(winEventProc)
)

const (
	winEventOutOfContext   = 0x0000
	winEventSkipOwnProcess = 0x0002

	wmQuit     = 0x0012
	pmNoRemove = 0x0000
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

func winEventProc(hWinEventHook, event, hwnd, idObject, idChild, idEventThread, dwmsEventTime uintptr) uintptr {
	dispatch(uint32(event), winapi.Handle(hwnd))
	return 0
}

// Run installs the hook and pumps messages on a locked OS thread until ctx
// is cancelled. The hook is always removed before Run returns.
func (l *Listener) Run(ctx context.Context) error {
	if err := activate(l); err != nil {
		return err
	}
	defer deactivate(l)

	// Out-of-context events are delivered to the installing thread's queue.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// Make sure the thread has a message queue before anyone posts WM_QUIT.
	var m msg
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmNoRemove)
	threadID := windows.GetCurrentThreadId()

	lo, hi := winapi.EventRange()
	h, _, err := procSetWinEventHook.Call(
		uintptr(lo),
		uintptr(hi),
		0, // no DLL, out-of-context
		winEventCallback,
		0, // all processes
		0, // all threads
		winEventOutOfContext|winEventSkipOwnProcess,
	)
	if h == 0 {
		return fmt.Errorf("%w: %v", ErrInstall, err)
	}
	defer func() {
		if ret, _, err := procUnhookWinEvent.Call(h); ret == 0 {
			l.log.Warnf("failed to remove window event hook 0x%X: %v", h, err)
		} else {
			l.log.Debugf("window event hook 0x%X removed", h)
		}
	}()
	l.log.Info().
		Uint32("event_min", lo).
		Uint32("event_max", hi).
		Uint32("thread", threadID).
		Msg("window event hook installed")

	stop := context.AfterFunc(ctx, func() {
		procPostThreadMessageW.Call(uintptr(threadID), wmQuit, 0, 0)
	})
	defer stop()

	if l.OnInstalled != nil {
		l.OnInstalled()
	}

	for {
		ret, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case 0:
			return nil
		case -1:
			return fmt.Errorf("message loop failed: %w", err)
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}
