package suptrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/service"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as pretty-printed JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEngine(func(engine *service.Engine) error {
			snapshot, err := engine.Export()
			if err != nil {
				return err
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), snapshot)
				return nil
			}
			if err := os.WriteFile(exportOut, []byte(snapshot+"\n"), 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a snapshot or legacy supplement list (replaces current data)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withEngine(func(engine *service.Engine) error {
			result := engine.Import(raw)
			if !result.Success {
				return fmt.Errorf("import failed: %s", result.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d supplements\n", result.Count)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
