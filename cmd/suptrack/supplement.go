package suptrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/model"
	"github.com/daniazubel1/suptrack/internal/service"
)

var supplementCmd = &cobra.Command{
	Use:   "supplement",
	Short: "Manage your supplement stack",
}

var (
	supBrand    string
	supDosage   string
	supType     string
	supTiming   string
	supNotes    string
	supServings int
	supLeft     int
)

var supplementAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a supplement (enriched from the reference catalog)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("supplement name is required")
		}
		in := model.Supplement{
			Name:   name,
			Brand:  supBrand,
			Dosage: supDosage,
			Type:   supType,
			Timing: supTiming,
			Notes:  supNotes,
		}
		if cmd.Flags().Changed("servings") {
			if supServings < 0 {
				return fmt.Errorf("servings must be >= 0")
			}
			size := supServings
			in.ServingsPerContainer = &size
		}
		if cmd.Flags().Changed("left") {
			if supLeft < 0 {
				return fmt.Errorf("left must be >= 0")
			}
			left := supLeft
			in.ServingsLeft = &left
		}
		return withEngine(func(engine *service.Engine) error {
			sup := engine.AddSupplement(in)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", sup.Name, sup.ID)
			if sup.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Matched catalog entry: %s\n", strings.Join(sup.Benefits, ", "))
			}
			return nil
		})
	},
}

var supplementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your supplements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			sups := engine.Supplements()
			if len(sups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No supplements yet. Add one with: suptrack supplement add <name>")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tTIMING\tDOSAGE\tSERVINGS")
			for _, sup := range sups {
				printSupplementRow(cmd, sup)
			}
			return nil
		})
	},
}

var supplementShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show one supplement in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			sup, err := findSupplement(engine, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", sup.Name)
			if sup.Brand != "" {
				fmt.Fprintf(out, "Brand: %s\n", sup.Brand)
			}
			if sup.Dosage != "" {
				fmt.Fprintf(out, "Dosage: %s\n", sup.Dosage)
			}
			if sup.Type != "" {
				fmt.Fprintf(out, "Type: %s\n", sup.Type)
			}
			if sup.Timing != "" {
				fmt.Fprintf(out, "Timing: %s\n", sup.Timing)
			}
			if sup.FoodReq != "" {
				fmt.Fprintf(out, "Food: %s\n", sup.FoodReq)
			}
			if sup.RecommendedTime != "" {
				fmt.Fprintf(out, "Recommended time: %s\n", sup.RecommendedTime)
			}
			if sup.ServingsLeft != nil {
				fmt.Fprintf(out, "Servings left: %d\n", *sup.ServingsLeft)
			}
			if sup.ServingsPerContainer != nil {
				fmt.Fprintf(out, "Container size: %d\n", *sup.ServingsPerContainer)
			}
			if len(sup.Benefits) > 0 {
				fmt.Fprintf(out, "Benefits: %s\n", strings.Join(sup.Benefits, ", "))
			}
			if sup.Warning != "" {
				fmt.Fprintf(out, "Warning: %s\n", sup.Warning)
			}
			if sup.Description != "" {
				fmt.Fprintf(out, "\n%s\n", sup.Description)
			}
			if sup.Notes != "" {
				fmt.Fprintf(out, "\nNotes: %s\n", sup.Notes)
			}
			return nil
		})
	},
}

var supplementUpdateCmd = &cobra.Command{
	Use:   "update <name-or-id>",
	Short: "Update supplement fields (renames are re-enriched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			sup, err := findSupplement(engine, args[0])
			if err != nil {
				return err
			}
			var patch service.SupplementPatch
			changed := false
			if cmd.Flags().Changed("name") {
				patch.Name = &supNewName
				changed = true
			}
			if cmd.Flags().Changed("brand") {
				patch.Brand = &supBrand
				changed = true
			}
			if cmd.Flags().Changed("dosage") {
				patch.Dosage = &supDosage
				changed = true
			}
			if cmd.Flags().Changed("type") {
				patch.Type = &supType
				changed = true
			}
			if cmd.Flags().Changed("timing") {
				patch.Timing = &supTiming
				changed = true
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &supNotes
				changed = true
			}
			if cmd.Flags().Changed("servings") {
				if supServings < 0 {
					return fmt.Errorf("servings must be >= 0")
				}
				patch.ServingsPerContainer = &supServings
				changed = true
			}
			if cmd.Flags().Changed("left") {
				if supLeft < 0 {
					return fmt.Errorf("left must be >= 0")
				}
				patch.ServingsLeft = &supLeft
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to update; pass at least one field flag")
			}
			engine.UpdateSupplement(sup.ID, patch)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", sup.Name)
			return nil
		})
	},
}

var supNewName string

var supplementDeleteCmd = &cobra.Command{
	Use:   "delete <name-or-id>",
	Short: "Delete a supplement (its history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			sup, err := findSupplement(engine, args[0])
			if err != nil {
				return err
			}
			engine.DeleteSupplement(sup.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", sup.Name)
			return nil
		})
	},
}

var supplementRefillCmd = &cobra.Command{
	Use:   "refill <name-or-id>",
	Short: "Reset servings to the container size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			sup, err := findSupplement(engine, args[0])
			if err != nil {
				return err
			}
			if sup.ServingsPerContainer == nil {
				return fmt.Errorf("%s does not track a container size", sup.Name)
			}
			engine.RefillSupplement(sup.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Refilled %s to %d servings\n", sup.Name, *sup.ServingsPerContainer)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{supplementAddCmd, supplementUpdateCmd} {
		c.Flags().StringVar(&supBrand, "brand", "", "Brand name")
		c.Flags().StringVar(&supDosage, "dosage", "", "Dosage in your own units")
		c.Flags().StringVar(&supType, "type", "pill", "Form: pill, powder, liquid, food")
		c.Flags().StringVar(&supTiming, "timing", "any", "When to take it: morning, pre-workout, intra-workout, post-workout, night, any, workout")
		c.Flags().StringVar(&supNotes, "notes", "", "Free-form notes")
		c.Flags().IntVar(&supServings, "servings", 0, "Servings per container")
		c.Flags().IntVar(&supLeft, "left", 0, "Servings currently left")
	}
	supplementUpdateCmd.Flags().StringVar(&supNewName, "name", "", "New name (triggers re-enrichment)")

	supplementCmd.AddCommand(supplementAddCmd)
	supplementCmd.AddCommand(supplementListCmd)
	supplementCmd.AddCommand(supplementShowCmd)
	supplementCmd.AddCommand(supplementUpdateCmd)
	supplementCmd.AddCommand(supplementDeleteCmd)
	supplementCmd.AddCommand(supplementRefillCmd)
	rootCmd.AddCommand(supplementCmd)
}
