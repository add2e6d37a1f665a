package suptrack

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/app"
	"github.com/daniazubel1/suptrack/internal/service"
)

var remindInterval time.Duration

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Check and watch supplement reminders",
}

var remindCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate reminders once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			due := engine.DueReminders(time.Now())
			if len(due) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No reminders due")
				return nil
			}
			printReminders(cmd, due)
			return nil
		})
	},
}

var remindWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll reminders until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := remindInterval
		if !cmd.Flags().Changed("interval") {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			interval = cfg.RemindInterval
		}
		if interval <= 0 {
			return fmt.Errorf("interval must be positive")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		check := func() error {
			return withEngine(func(engine *service.Engine) error {
				printReminders(cmd, engine.DueReminders(time.Now()))
				return nil
			})
		}

		// Evaluate immediately on load, then on the fixed interval.
		if err := check(); err != nil {
			return err
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := check(); err != nil {
					return err
				}
			}
		}
	},
}

func printReminders(cmd *cobra.Command, due []service.Reminder) {
	for _, reminder := range due {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] Reminder (%s): still to take %s\n",
			time.Now().Format("15:04"), reminder.Category, strings.Join(reminder.Missing, ", "))
	}
}

func init() {
	remindWatchCmd.Flags().DurationVar(&remindInterval, "interval", time.Minute, "Poll interval")
	remindCmd.AddCommand(remindCheckCmd)
	remindCmd.AddCommand(remindWatchCmd)
	rootCmd.AddCommand(remindCmd)
}
