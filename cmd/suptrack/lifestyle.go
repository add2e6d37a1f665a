package suptrack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/service"
)

var (
	lifestyleDate    string
	workoutCompleted bool
)

var lifestyleCmd = &cobra.Command{
	Use:   "lifestyle",
	Short: "Record sleep and workouts",
}

var lifestyleSleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Record hours slept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil || hours < 0 {
			return fmt.Errorf("invalid hours %q", args[0])
		}
		date, err := parseDateOrToday(lifestyleDate)
		if err != nil {
			return err
		}
		return withEngine(func(engine *service.Engine) error {
			engine.SetSleep(date, hours)
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f hours of sleep for %s\n", hours, date)
			return nil
		})
	},
}

var lifestyleWorkoutCmd = &cobra.Command{
	Use:   "workout <type>",
	Short: "Record a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutType := strings.TrimSpace(args[0])
		if workoutType == "" {
			return fmt.Errorf("workout type is required")
		}
		date, err := parseDateOrToday(lifestyleDate)
		if err != nil {
			return err
		}
		return withEngine(func(engine *service.Engine) error {
			engine.SetWorkout(date, model.Workout{Done: true, Type: workoutType, Completed: workoutCompleted})
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s workout for %s\n", workoutType, date)
			return nil
		})
	},
}

var lifestyleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's lifestyle metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(lifestyleDate)
		if err != nil {
			return err
		}
		return withEngine(func(engine *service.Engine) error {
			day := engine.LifestyleOn(date)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep: %.1f hrs\n", day.SleepHours)
			if day.Workout.Done {
				status := "planned"
				if day.Workout.Completed {
					status = "completed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Workout: %s (%s)\n", day.Workout.Type, status)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Workout: none")
			}
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{lifestyleSleepCmd, lifestyleWorkoutCmd, lifestyleShowCmd} {
		c.Flags().StringVar(&lifestyleDate, "date", "", "Date (YYYY-MM-DD, default today)")
	}
	lifestyleWorkoutCmd.Flags().BoolVar(&workoutCompleted, "completed", true, "Whether the workout was completed")
	lifestyleCmd.AddCommand(lifestyleSleepCmd)
	lifestyleCmd.AddCommand(lifestyleWorkoutCmd)
	lifestyleCmd.AddCommand(lifestyleShowCmd)
	rootCmd.AddCommand(lifestyleCmd)
}
