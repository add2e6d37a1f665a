package suptrack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storePath string

var rootCmd = &cobra.Command{
	Use:   "suptrack",
	Short: "suptrack tracks your supplement intake from your terminal",
	Long:  "suptrack is a local-first supplement tracker with intake logging, inventory, lifestyle metrics, reminders, and achievements.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "Path to SQLite store")
}
