package suptrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/service"
)

var (
	logDate    string
	logTime    string
	logContext string
)

var logCmd = &cobra.Command{
	Use:   "log <name-or-id>",
	Short: "Toggle an intake log entry for a supplement",
	Long:  "Toggles the intake entry for the day: logging a supplement that is already logged removes the entry and restores the serving.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		if logTime != "" {
			if err := validateClock(logTime); err != nil {
				return err
			}
		}
		return withEngine(func(engine *service.Engine) error {
			sup, err := findSupplement(engine, args[0])
			if err != nil {
				return err
			}
			var details *service.LogDetails
			if logTime != "" || logContext != "" {
				details = &service.LogDetails{Time: logTime, Context: logContext}
			}
			if engine.ToggleLog(date, sup.ID, details) {
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s\n", sup.Name, date)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed log for %s on %s\n", sup.Name, date)
			}
			if left, ok := engine.FindSupplement(sup.ID); ok && left.ServingsLeft != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Servings left: %d\n", *left.ServingsLeft)
			}
			return nil
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(logDate)
		if err != nil {
			return err
		}
		return withEngine(func(engine *service.Engine) error {
			entries := engine.EntriesOn(date)
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing logged on %s\n", date)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "TIME\tSUPPLEMENT\tCONTEXT")
			for _, entry := range entries {
				sup, ok := engine.FindSupplement(entry.SupplementID)
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.Time, sup.Name, entry.Context)
			}
			return nil
		})
	},
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Date (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logTime, "time", "", "Intake time (HH:MM, default now)")
	logCmd.Flags().StringVar(&logContext, "context", "", "Context: fasted, with-food, pre-workout, post-workout")
	logShowCmd.Flags().StringVar(&logDate, "date", "", "Date (YYYY-MM-DD, default today)")
	logCmd.AddCommand(logShowCmd)
	rootCmd.AddCommand(logCmd)
}
