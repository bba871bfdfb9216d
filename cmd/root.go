package cmd

import (
	"os"

	"github.com/inovacc/stele/internal/application"
	"github.com/inovacc/stele/internal/store"
	"github.com/spf13/cobra"
)

// db is the store handle shared by all commands. It is opened once before
// the first command runs and closed when the command tree finishes.
var db store.Store

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A grave marker survey tool",
	Long: `Stele is a command-line tool for cemetery field surveys. It keeps a local
registry of grave markers with transcribed inscriptions, GPS coordinates and
condition assessments, exports the registry as CSV or GeoJSON, and pushes
unsynced records to a spreadsheet collector endpoint.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		db, err = store.Open()

		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db == nil {
			return nil
		}

		return db.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
