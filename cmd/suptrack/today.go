package suptrack

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's consistency, streak, and what's left to take",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			out := cmd.OutOrStdout()
			date := time.Now().Format("2006-01-02")
			fmt.Fprintf(out, "Date: %s\n", date)
			fmt.Fprintf(out, "Consistency: %d%%\n", engine.Consistency(date))
			fmt.Fprintf(out, "Streak: %d days\n", engine.CurrentStreak(date))

			taken := engine.EntriesOn(date)
			remaining := make([]string, 0)
			for _, sup := range engine.Supplements() {
				if !engine.TakenOn(date, sup.ID) {
					remaining = append(remaining, sup.Name)
				}
			}
			fmt.Fprintf(out, "Taken: %d  Remaining: %d\n", len(taken), len(remaining))
			for _, name := range remaining {
				fmt.Fprintf(out, "  - %s\n", name)
			}

			if low := engine.LowStock(); len(low) > 0 {
				fmt.Fprintln(out, "Running low:")
				for _, sup := range low {
					fmt.Fprintf(out, "  - %s (%d left)\n", sup.Name, *sup.ServingsLeft)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
