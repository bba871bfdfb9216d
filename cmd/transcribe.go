package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/stele/internal/model"
	"github.com/inovacc/stele/internal/transcribe"
	"github.com/spf13/cobra"
)

var (
	transcribeSave      bool
	transcribeAisle     string
	transcribeCondition string
	transcribeLat       float64
	transcribeLng       float64
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <photo.jpg>",
	Short: "Transcribe a marker photo",
	Long: `Send a marker photo to the captioning endpoint and print the transcribed
names, dates and epitaphs. With --save the transcription is registered as a
new record referencing the photo. Requires GEMINI_API_KEY in the environment.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set")
		}

		photo, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		cfg, err := db.GetConfig()
		if err != nil {
			return err
		}

		client := transcribe.NewClient(apiKey, transcribe.WithModel(cfg.TranscribeModel))

		people, err := client.TranscribePhoto(cmd.Context(), photo)
		if err != nil {
			return err
		}

		if len(people) == 0 {
			fmt.Println("No readable inscription found.")
		}

		for i, p := range people {
			fmt.Printf("%d. %s", i+1, p.Name)

			if p.BirthDate != "" || p.DeathDate != "" {
				fmt.Printf(" (%s - %s)", p.BirthDate, p.DeathDate)
			}

			fmt.Println()

			if p.Epitaph != "" {
				fmt.Printf("   %s\n", p.Epitaph)
			}
		}

		if !transcribeSave {
			return nil
		}

		condition, err := model.ParseCondition(transcribeCondition)
		if err != nil {
			return err
		}

		rec := model.GraveRecord{
			AisleNumber: transcribeAisle,
			Condition:   condition,
			PhotoURL:    args[0],
			People:      people,
		}

		lat, lng, err := coordPair(cmd.Flags(), transcribeLat, transcribeLng)
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
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().BoolVar(&transcribeSave, "save", false, "Register the transcription as a new record")
	transcribeCmd.Flags().StringVar(&transcribeAisle, "aisle", "", "Aisle or row label for the saved record")
	transcribeCmd.Flags().StringVar(&transcribeCondition, "condition", "bon", "Marker condition for the saved record")
	transcribeCmd.Flags().Float64Var(&transcribeLat, "lat", 0, "Latitude of the marker")
	transcribeCmd.Flags().Float64Var(&transcribeLng, "lng", 0, "Longitude of the marker")
}
