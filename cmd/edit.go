package cmd

import (
	"fmt"

	"github.com/inovacc/stele/internal/model"
	"github.com/spf13/cobra"
)

var (
	editAisle     string
	editCondition string
	editPhoto     string
	editLat       float64
	editLng       float64
	editPeople    []string
)

var editCmd = &cobra.Command{
	Use:   "edit <stele number | id>",
	Short: "Edit a record",
	Long: `Replace fields of an existing record. Only the flags given change; the
stele number and sync flag are left as they are. Passing --person replaces
the whole person list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := resolveRecord(db, args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("aisle") {
			rec.AisleNumber = editAisle
		}

		if cmd.Flags().Changed("condition") {
			condition, err := model.ParseCondition(editCondition)
			if err != nil {
				return err
			}

			rec.Condition = condition
		}

		if cmd.Flags().Changed("photo") {
			rec.PhotoURL = editPhoto
		}

		lat, lng, err := coordPair(cmd.Flags(), editLat, editLng)
		if err != nil {
			return err
		}

		if lat != nil {
			rec.Lat, rec.Lng = lat, lng
		}

		if cmd.Flags().Changed("person") {
			rec.People = nil

			for _, spec := range editPeople {
				p, err := parsePerson(spec)
				if err != nil {
					return err
				}

				rec.People = append(rec.People, p)
			}
		}

		if err := db.Update(rec); err != nil {
			return err
		}

		fmt.Printf("Updated stele n°%d\n", rec.SteleNumber)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editAisle, "aisle", "", "Aisle or row label")
	editCmd.Flags().StringVar(&editCondition, "condition", "", "Marker condition")
	editCmd.Flags().StringVar(&editPhoto, "photo", "", "Photo reference")
	editCmd.Flags().Float64Var(&editLat, "lat", 0, "Latitude of the marker")
	editCmd.Flags().Float64Var(&editLng, "lng", 0, "Longitude of the marker")
	editCmd.Flags().StringArrayVar(&editPeople, "person", nil, "Replace the person list (repeatable)")
}
