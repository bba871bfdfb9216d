package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/inovacc/stele/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the registry as CSV or GeoJSON",
	Long: `Export all records. CSV produces one row per person with the marker fields
repeated, matching the paper registry columns. GeoJSON produces a point layer
of the markers that carry GPS coordinates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := db.Load()
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout

		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}

			defer func() { _ = f.Close() }()

			w = f
		}

		switch exportFormat {
		case "csv":
			err = export.WriteCSV(w, records)
		case "geojson":
			err = export.WriteGeoJSON(w, records)
		default:
			return fmt.Errorf("unknown format %q (valid: csv, geojson)", exportFormat)
		}

		if err != nil {
			return err
		}

		if exportOut != "" {
			_, _ = fmt.Fprintf(os.Stderr, "Exported %d record(s) to %s\n", len(records), exportOut)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format (csv or geojson)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}
