package suptrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/service"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show consistency and lifestyle trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		if statsDays <= 0 {
			return fmt.Errorf("--days must be > 0")
		}
		return withEngine(func(engine *service.Engine) error {
			to := time.Now()
			from := to.AddDate(0, 0, -(statsDays - 1))
			report := engine.Trends(from, to)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tCONSISTENCY\tSLEEP\tWORKOUT")
			for _, day := range report.Days {
				workout := "-"
				if day.WorkoutDone {
					workout = "yes"
				}
				fmt.Fprintf(out, "%s\t%d%%\t%.1f\t%s\n", day.Date, day.Consistency, day.SleepHours, workout)
			}
			fmt.Fprintf(out, "\nAvg consistency: %d%%\n", report.AverageConsistency)
			fmt.Fprintf(out, "Avg sleep: %.1f hrs\n", report.AverageSleepHours)
			fmt.Fprintf(out, "Workouts: %d\n", report.WorkoutCount)
			return nil
		})
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "Range length in days, ending today")
	rootCmd.AddCommand(statsCmd)
}
