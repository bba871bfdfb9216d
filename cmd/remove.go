package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:     "remove <stele number | id>",
	Aliases: []string{"rm"},
	Short:   "Delete a record",
	Long:    `Delete a record from the registry. The stele number is not reclaimed; later records keep counting from where the registry left off.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := resolveRecord(db, args[0])
		if err != nil {
			return err
		}

		if !removeYes {
			fmt.Printf("Delete stele n°%d? [y/N]: ", rec.SteleNumber)

			var response string

			_, _ = fmt.Scanln(&response)

			if response != "y" && response != "Y" {
				fmt.Println("Cancelled.")

				return nil
			}
		}

		if err := db.Delete(rec.ID); err != nil {
			return err
		}

		fmt.Printf("Deleted stele n°%d\n", rec.SteleNumber)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip confirmation prompt")
}
