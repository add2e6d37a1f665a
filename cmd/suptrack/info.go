package suptrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/catalog"
)

var infoCmd = &cobra.Command{
	Use:   "info [name]",
	Short: "Browse the supplement reference catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(out, "NAME\tCATEGORY\tBEST TIME\tDOSAGE")
			for _, entry := range catalog.Entries() {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", entry.Name, entry.Category, entry.BestTime, entry.Dosage)
			}
			return nil
		}

		entry, ok := catalog.Lookup(args[0])
		if !ok {
			entry, ok = catalog.FindByAlias(args[0])
		}
		if !ok {
			return fmt.Errorf("no catalog entry matches %q", args[0])
		}
		fmt.Fprintf(out, "Name: %s\n", entry.Name)
		fmt.Fprintf(out, "Category: %s\n", entry.Category)
		fmt.Fprintf(out, "Dosage: %s\n", entry.Dosage)
		fmt.Fprintf(out, "Best time: %s\n", entry.BestTime)
		fmt.Fprintf(out, "Food: %s\n", entry.FoodReq)
		fmt.Fprintf(out, "Frequency: %s\n", entry.Frequency)
		fmt.Fprintf(out, "Benefits: %s\n", strings.Join(entry.Benefits, ", "))
		fmt.Fprintf(out, "Warning: %s\n", entry.Warning)
		fmt.Fprintf(out, "\n%s\n", entry.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
