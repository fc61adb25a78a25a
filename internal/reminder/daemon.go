package reminder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/username/contact-book-bot/internal/calendar"
	"github.com/username/contact-book-bot/internal/storage"
	"github.com/username/contact-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

// Daemon runs the birthday reminder once per day at a scheduled time.
// Reminders are skipped on days off, nobody reads a congratulation list
// on a Sunday, the weekend birthdays were already shifted to Monday by
// the book's query.
type Daemon struct {
	store       *storage.Store
	calendar    calendar.Calendar
	windowDays  int
	dailyHour   int // Hour to run the daily reminder (0-23)
	dailyMinute int // Minute to run the daily reminder (0-59)
	systemTray  bool
	logger      *zap.Logger
	ctx         context.Context
	cancel      context.CancelFunc
	trayApp     *TrayApp
	lastRunDate string // Last successful run date, guards against duplicate runs
	lastResult  []string
}

// NewDaemon creates a daemon that reminds daily at dailyHour:dailyMinute
func NewDaemon(store *storage.Store, cal calendar.Calendar, windowDays, dailyHour, dailyMinute int, systemTray bool, logger *zap.Logger) *Daemon {
	ctx, cancel := context.WithCancel(context.Background())

	return &Daemon{
		store:       store,
		calendar:    cal,
		windowDays:  windowDays,
		dailyHour:   dailyHour,
		dailyMinute: dailyMinute,
		systemTray:  systemTray,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start starts the daemon, blocking until it is stopped
func (d *Daemon) Start() error {
	if d.systemTray {
		d.logger.Info("Initializing system tray")
		trayApp, err := NewTrayApp(d, d.logger)
		if err != nil {
			d.logger.Warn("Failed to initialize system tray", zap.Error(err))
			d.runScheduledLogic()
			return nil
		}
		d.trayApp = trayApp
		// Blocks until Quit
		d.trayApp.Run()
		return nil
	}

	d.logger.Info("Running without system tray")
	d.runScheduledLogic()
	return nil
}

// Stop stops the daemon
func (d *Daemon) Stop() {
	d.cancel()
}

// runScheduledLogic is the daemon main loop (called from tray or standalone)
func (d *Daemon) runScheduledLogic() {
	d.logger.Info("Reminder daemon started",
		zap.Int("daily_hour", d.dailyHour),
		zap.Int("daily_minute", d.dailyMinute),
		zap.Int("window_days", d.windowDays))

	// Run immediately if today's scheduled time has already passed
	now := time.Now()
	today := now.Format("2006-01-02")
	scheduledToday := time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, now.Location())

	if now.After(scheduledToday) && d.lastRunDate != today {
		d.logger.Info("Scheduled time already passed today, running reminder now",
			zap.Time("scheduled_time", scheduledToday))
		d.runOnce(today)
	}

	nextRun := d.calculateNextRun()
	d.logger.Info("Next reminder scheduled",
		zap.Time("next_run", nextRun),
		zap.Duration("wait_duration", time.Until(nextRun)))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Check every minute if it's time to run
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			d.logger.Info("Daemon stopped")
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			return

		case sig := <-sigChan:
			d.logger.Info("Received signal, shutting down",
				zap.String("signal", sig.String()))
			if d.trayApp != nil {
				d.trayApp.Stop()
			}
			d.Stop()
			return

		case now := <-ticker.C:
			if !d.shouldRunAt(now) {
				continue
			}

			today := now.Format("2006-01-02")
			if d.lastRunDate == today {
				d.logger.Debug("Already ran today, skipping")
				continue
			}

			d.runOnce(today)

			nextRun = d.calculateNextRun()
			d.logger.Info("Next reminder scheduled",
				zap.Time("next_run", nextRun),
				zap.Duration("wait_duration", time.Until(nextRun)))
		}
	}
}

// runOnce runs the reminder and records the run date on success
func (d *Daemon) runOnce(today string) {
	reminders, err := d.RemindNow()
	if err != nil {
		d.logger.Error("Reminder run failed", zap.Error(err))
		if d.trayApp != nil {
			d.trayApp.ShowNotification("Reminder Failed", fmt.Sprintf("Error: %v", err))
		}
		return
	}

	d.lastRunDate = today
	d.lastResult = reminders
	if d.trayApp != nil && len(reminders) > 0 {
		d.trayApp.ShowNotification("Upcoming Birthdays",
			fmt.Sprintf("%d birthday(s) in the next %d days", len(reminders), d.windowDays))
	}
}

// RemindNow loads the book and logs the upcoming birthday list. On days
// off the run counts as done but stays silent. Returns the reminder
// lines that were reported.
func (d *Daemon) RemindNow() ([]string, error) {
	today := dateutil.Today()

	dayOff, err := d.calendar.IsDayOff(today)
	if err != nil {
		return nil, fmt.Errorf("failed to check day off: %w", err)
	}
	if dayOff {
		d.logger.Info("Today is a day off, skipping reminders",
			zap.Time("date", today))
		return nil, nil
	}

	book, err := d.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load book: %w", err)
	}

	reminders := book.UpcomingBirthdays(today, d.windowDays)
	if len(reminders) == 0 {
		d.logger.Info("No upcoming birthdays",
			zap.Time("date", today),
			zap.Int("window_days", d.windowDays))
		return nil, nil
	}

	lines := make([]string, len(reminders))
	for i, reminder := range reminders {
		lines[i] = fmt.Sprintf("%s on %s", reminder.Name, reminder.Occurrence.Format("02.01.2006"))
		d.logger.Info("Upcoming birthday",
			zap.String("name", reminder.Name),
			zap.Time("occurrence", reminder.Occurrence))
	}

	return lines, nil
}

// GetStatus returns current daemon status (for the tray UI)
func (d *Daemon) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"last_run_date": d.lastRunDate,
		"window_days":   d.windowDays,
		"daily_time":    fmt.Sprintf("%02d:%02d", d.dailyHour, d.dailyMinute),
		"last_result":   d.lastResult,
	}
}

// shouldRunAt checks if the given time matches the daily schedule
func (d *Daemon) shouldRunAt(now time.Time) bool {
	return now.Hour() == d.dailyHour && now.Minute() == d.dailyMinute
}

// calculateNextRun returns the next scheduled run time
func (d *Daemon) calculateNextRun() time.Time {
	now := time.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(),
		d.dailyHour, d.dailyMinute, 0, 0, now.Location())

	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
