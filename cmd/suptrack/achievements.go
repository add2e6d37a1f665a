package suptrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/service"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and unlock dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			unlockedIDs := engine.Profile().Achievements
			unlocked := 0
			for _, def := range service.AchievementDefs() {
				if _, ok := unlockedIDs[def.ID]; ok {
					unlocked++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unlocked %d / %d\n\n", unlocked, len(service.AchievementDefs()))
			for _, def := range service.AchievementDefs() {
				mark := "[ ]"
				when := ""
				if ts, ok := unlockedIDs[def.ID]; ok {
					mark = "[x]"
					when = "  (" + ts + ")"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s - %s%s\n", mark, def.Title, def.Description, when)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
