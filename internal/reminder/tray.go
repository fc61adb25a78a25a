//go:build windows
// +build windows

package reminder

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"

	"fyne.io/systray"
	"go.uber.org/zap"
)

var (
	user32      = syscall.NewLazyDLL("user32.dll")
	messageBoxW = user32.NewProc("MessageBoxW")
)

const (
	MB_OK              = 0x00000000
	MB_ICONINFORMATION = 0x00000040
)

// TrayApp represents the system tray application
type TrayApp struct {
	daemon *Daemon
	logger *zap.Logger
	quit   chan struct{}
}

// NewTrayApp creates a new system tray application
func NewTrayApp(daemon *Daemon, logger *zap.Logger) (*TrayApp, error) {
	return &TrayApp{
		daemon: daemon,
		logger: logger,
		quit:   make(chan struct{}),
	}, nil
}

// Run starts the system tray application (blocks until Quit)
func (t *TrayApp) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *TrayApp) onReady() {
	systray.SetTitle("CB")
	systray.SetTooltip("Contact Book Birthday Reminder")

	mRemindNow := systray.AddMenuItem("Remind Now", "Check upcoming birthdays immediately")
	systray.AddSeparator()
	mStatus := systray.AddMenuItem("Status", "Show last reminder run")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Exit the application")

	// Start daemon logic in background
	go t.daemon.runScheduledLogic()

	go func() {
		for {
			select {
			case <-mRemindNow.ClickedCh:
				t.logger.Info("Remind Now clicked from tray")
				go t.remindNow()
			case <-mStatus.ClickedCh:
				t.logger.Info("Status clicked from tray")
				t.showStatus()
			case <-mQuit.ClickedCh:
				t.logger.Info("Quit clicked from tray")
				t.daemon.Stop()
				systray.Quit()
				return
			case <-t.quit:
				systray.Quit()
				return
			}
		}
	}()
}

func (t *TrayApp) onExit() {
	t.logger.Info("System tray exited")
}

// Stop stops the system tray application
func (t *TrayApp) Stop() {
	close(t.quit)
}

// ShowNotification shows a notification (Windows only)
func (t *TrayApp) ShowNotification(title, message string) {
	// fyne.io/systray has no built-in notification support
	t.logger.Info("Notification", zap.String("title", title), zap.String("message", message))
	showMessageBox(title, message)
}

func (t *TrayApp) remindNow() {
	lines, err := t.daemon.RemindNow()
	if err != nil {
		t.ShowNotification("Reminder Failed", fmt.Sprintf("Error: %v", err))
		return
	}
	if len(lines) == 0 {
		t.ShowNotification("Upcoming Birthdays", "No upcoming birthdays")
		return
	}
	t.ShowNotification("Upcoming Birthdays", strings.Join(lines, "\n"))
}

// showStatus shows the last reminder run
func (t *TrayApp) showStatus() {
	status := t.daemon.GetStatus()
	t.logger.Info("Current status", zap.Any("status", status))

	message := fmt.Sprintf(
		"Last run: %v\nWindow: %v days\nDaily time: %v",
		status["last_run_date"],
		status["window_days"],
		status["daily_time"],
	)
	systray.SetTooltip(message)

	showMessageBox("Birthday Reminder Status", message)
}

func showMessageBox(title, message string) {
	titlePtr, _ := syscall.UTF16PtrFromString(title)
	messagePtr, _ := syscall.UTF16PtrFromString(message)
	messageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(messagePtr)),
		uintptr(unsafe.Pointer(titlePtr)),
		uintptr(MB_OK|MB_ICONINFORMATION),
	)
}
