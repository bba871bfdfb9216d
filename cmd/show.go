package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <stele number | id>",
	Short: "Show one record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := resolveRecord(db, args[0])
		if err != nil {
			return err
		}

		printRecord(rec)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
