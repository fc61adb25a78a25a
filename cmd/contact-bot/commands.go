package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/username/contact-book-bot/internal/addressbook"
	"github.com/username/contact-book-bot/internal/calendar"
	"github.com/username/contact-book-bot/internal/config"
	"github.com/username/contact-book-bot/internal/reminder"
	"github.com/username/contact-book-bot/internal/session"
	"github.com/username/contact-book-bot/internal/storage"
	"github.com/username/contact-book-bot/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start an interactive assistant session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			store := storage.NewStore(cfg.Book.File, logger)
			book, err := store.Load()
			if err != nil {
				return fmt.Errorf("failed to load book: %w", err)
			}

			s := session.NewSession(book, store, cfg.Book.DefaultWindowDays, logger)
			return s.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			book, err := storage.NewStore(cfg.Book.File, logger).Load()
			if err != nil {
				return fmt.Errorf("failed to load book: %w", err)
			}

			if book.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No contacts saved.")
				return nil
			}
			for _, record := range book.Records() {
				fmt.Fprintln(cmd.OutOrStdout(), record)
			}
			return nil
		},
	}
}

func birthdaysCmd() *cobra.Command {
	var days int
	var dateStr string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show upcoming birthdays, weekend dates moved to Monday",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			today := dateutil.Today()
			if dateStr != "" {
				today, err = dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}

			windowDays := cfg.Book.DefaultWindowDays
			if cmd.Flags().Changed("days") {
				if days < 0 {
					return fmt.Errorf("--days must not be negative")
				}
				windowDays = days
			}

			book, err := storage.NewStore(cfg.Book.File, logger).Load()
			if err != nil {
				return fmt.Errorf("failed to load book: %w", err)
			}

			reminders := book.UpcomingBirthdays(today, windowDays)
			if len(reminders) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No upcoming birthdays.")
				return nil
			}
			for _, r := range reminders {
				fmt.Fprintf(cmd.OutOrStdout(), "Contact name: %s, birthday: %s\n",
					r.Name, r.Occurrence.Format(addressbook.BirthdayLayout))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Lookahead window in days")
	cmd.Flags().StringVar(&dateStr, "date", "", "Override today's date (YYYY-MM-DD or DD.MM.YYYY)")

	return cmd
}

func remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Run the daily birthday reminder daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			cal, err := buildCalendar(cfg)
			if err != nil {
				return err
			}

			store := storage.NewStore(cfg.Book.File, logger)
			hour, minute := cfg.Daemon.GetDailyTime()

			daemon := reminder.NewDaemon(store, cal,
				cfg.Book.DefaultWindowDays, hour, minute,
				cfg.Daemon.SystemTray, logger)
			return daemon.Start()
		},
	}
}

func buildCalendar(cfg *config.Config) (calendar.Calendar, error) {
	switch cfg.Calendar.Type {
	case "", "weekday":
		logger.Info("Using weekday calendar")
		return calendar.NewWeekdayCalendar(), nil

	case "isdayoff":
		logger.Info("Using isdayoff.ru calendar API")
		primary := calendar.NewIsDayOffCalendar(
			cfg.Calendar.Country,
			cfg.Calendar.GetCacheTTL(),
			logger,
		)
		// Fall back to the plain weekend rule when the API is unreachable
		return calendar.NewCompositeCalendar(primary, calendar.NewWeekdayCalendar(), logger), nil

	default:
		return nil, fmt.Errorf("unknown calendar type: %s", cfg.Calendar.Type)
	}
}

func initConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default config.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}

			data, err := yaml.Marshal(config.Default())
			if err != nil {
				return fmt.Errorf("failed to marshal default config: %w", err)
			}

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create config directory: %w", err)
				}
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
