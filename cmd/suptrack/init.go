package suptrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daniazubel1/suptrack/internal/app"
	"github.com/daniazubel1/suptrack/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := app.EnsureStoreDir(path); err != nil {
			return err
		}
		db, err := store.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()
		fmt.Fprintf(cmd.OutOrStdout(), "Store ready at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
