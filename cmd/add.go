package cmd

import (
	"fmt"

	"github.com/inovacc/stele/internal/model"
	"github.com/spf13/cobra"
)

var (
	addAisle     string
	addCondition string
	addPhoto     string
	addLat       float64
	addLng       float64
	addPeople    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new grave marker",
	Long: `Register a new grave marker observation. The record is stamped with the
next stele number and stored unsynced.

People are given as "Name;birthDate;birthPlace;deathDate;deathPlace;epitaph";
trailing fields may be omitted. Repeat --person in reading order.`,
	Example: `  stele add --aisle A-12 --condition bon --photo p/0042.jpg \
    --lat 48.8711 --lng 2.3955 \
    --person "Jeanne Martin;03/05/1899;Lyon 69000;18/01/1972;;Regrets éternels"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		condition, err := model.ParseCondition(addCondition)
		if err != nil {
			return err
		}

		rec := model.GraveRecord{
			AisleNumber: addAisle,
			Condition:   condition,
			PhotoURL:    addPhoto,
		}

		for _, spec := range addPeople {
			p, err := parsePerson(spec)
			if err != nil {
				return err
			}

			rec.People = append(rec.People, p)
		}

		lat, lng, err := coordPair(cmd.Flags(), addLat, addLng)
		if err != nil {
			return err
		}

		rec.Lat, rec.Lng = lat, lng

		saved, err := db.Append(rec)
		if err != nil {
			return err
		}

		fmt.Printf("Registered stele n°%d (id %s)\n", saved.SteleNumber, saved.ID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addAisle, "aisle", "", "Aisle or row label")
	addCmd.Flags().StringVar(&addCondition, "condition", "bon", "Marker condition (tres-bon, bon, moyen, mauvais, tres-mauvais)")
	addCmd.Flags().StringVar(&addPhoto, "photo", "", "Photo reference")
	addCmd.Flags().Float64Var(&addLat, "lat", 0, "Latitude of the marker")
	addCmd.Flags().Float64Var(&addLng, "lng", 0, "Longitude of the marker")
	addCmd.Flags().StringArrayVar(&addPeople, "person", nil, "Person inscribed on the marker (repeatable)")
}
