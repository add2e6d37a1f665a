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
	profileName     string
	profileAge      int
	profileGender   string
	profileHeight   float64
	profileWeight   float64
	profileActivity string
	profileGoal     string

	notifyTime     string
	notifyDisabled bool

	scheduleDays string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile, reminders, and schedule",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			p := engine.Profile()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", p.Name)
			fmt.Fprintf(out, "Age: %d\n", p.Age)
			fmt.Fprintf(out, "Gender: %s\n", p.Gender)
			fmt.Fprintf(out, "Height: %.0f cm\n", p.Height)
			fmt.Fprintf(out, "Weight: %.1f kg\n", p.Weight)
			fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
			fmt.Fprintf(out, "Goal: %s\n", p.Goal)
			if len(p.Notifications) > 0 {
				fmt.Fprintln(out, "Reminders:")
				for _, category := range []string{model.CategoryMorning, model.CategoryNight, model.CategoryWorkout} {
					pref, ok := p.Notifications[category]
					if !ok {
						continue
					}
					state := "off"
					if pref.Enabled {
						state = "on at " + pref.Time
					}
					fmt.Fprintf(out, "  %s: %s\n", category, state)
				}
			}
			if p.Schedule != nil && len(p.Schedule.WorkoutDays) > 0 {
				fmt.Fprintf(out, "Workout days: %v\n", p.Schedule.WorkoutDays)
			}
			return nil
		})
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			var patch service.ProfilePatch
			changed := false
			if cmd.Flags().Changed("name") {
				patch.Name = &profileName
				changed = true
			}
			if cmd.Flags().Changed("age") {
				if profileAge <= 0 {
					return fmt.Errorf("age must be > 0")
				}
				patch.Age = &profileAge
				changed = true
			}
			if cmd.Flags().Changed("gender") {
				patch.Gender = &profileGender
				changed = true
			}
			if cmd.Flags().Changed("height") {
				patch.Height = &profileHeight
				changed = true
			}
			if cmd.Flags().Changed("weight") {
				patch.Weight = &profileWeight
				changed = true
			}
			if cmd.Flags().Changed("activity") {
				patch.ActivityLevel = &profileActivity
				changed = true
			}
			if cmd.Flags().Changed("goal") {
				patch.Goal = &profileGoal
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update; pass at least one field flag")
			}
			engine.UpdateProfile(patch)
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileNotifyCmd = &cobra.Command{
	Use:   "notify <category>",
	Short: "Configure a reminder category (morning, night, workout)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strings.ToLower(strings.TrimSpace(args[0]))
		switch category {
		case model.CategoryMorning, model.CategoryNight, model.CategoryWorkout:
		default:
			return fmt.Errorf("unknown category %q (expected morning, night, or workout)", category)
		}
		if !notifyDisabled {
			if err := validateClock(notifyTime); err != nil {
				return err
			}
		}
		return withEngine(func(engine *service.Engine) error {
			engine.SetNotification(category, model.NotificationPref{
				Enabled: !notifyDisabled,
				Time:    notifyTime,
			})
			if notifyDisabled {
				fmt.Fprintf(cmd.OutOrStdout(), "Disabled %s reminder\n", category)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Enabled %s reminder at %s\n", category, notifyTime)
			}
			return nil
		})
	},
}

var profileScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Set workout weekdays (0=Sunday .. 6=Saturday)",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := strings.Split(scheduleDays, ",")
		days := make([]int, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			day, err := strconv.Atoi(part)
			if err != nil || day < 0 || day > 6 {
				return fmt.Errorf("invalid weekday %q (expected 0-6)", part)
			}
			days = append(days, day)
		}
		if len(days) == 0 {
			return fmt.Errorf("--days is required, e.g. --days 1,3,5")
		}
		return withEngine(func(engine *service.Engine) error {
			engine.SetWorkoutDays(days)
			fmt.Fprintf(cmd.OutOrStdout(), "Workout days set: %v\n", days)
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary, light, moderate, active, very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "health, muscle_gain, weight_loss, energy")

	profileNotifyCmd.Flags().StringVar(&notifyTime, "time", "08:00", "Reminder time (HH:MM)")
	profileNotifyCmd.Flags().BoolVar(&notifyDisabled, "disable", false, "Disable the category")

	profileScheduleCmd.Flags().StringVar(&scheduleDays, "days", "", "Comma-separated weekdays, e.g. 1,3,5")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileNotifyCmd)
	profileCmd.AddCommand(profileScheduleCmd)
	rootCmd.AddCommand(profileCmd)
}
