// Package export renders the record collection for use outside the app:
// a flat CSV registry and a GeoJSON layer for mapping tools.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/inovacc/stele/internal/model"
)

// csvHeaders match the columns of the paper survey registry.
var csvHeaders = []string{
	"N° Stèle", "Allée", "État", "X", "Y", "Nom", "Naissance", "Décès", "Épitaphe",
}

// WriteCSV writes one row per person, repeating the marker-level fields on
// each row. A record with no transcribed people still produces a single row
// so the marker itself stays in the registry.
func WriteCSV(w io.Writer, records []model.GraveRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeaders); err != nil {
		return err
	}

	for _, rec := range records {
		people := rec.People
		if len(people) == 0 {
			people = []model.Person{{}}
		}

		for _, p := range people {
			row := []string{
				strconv.Itoa(rec.SteleNumber),
				rec.AisleNumber,
				rec.Condition.String(),
				formatCoord(rec.Lat),
				formatCoord(rec.Lng),
				p.Name,
				p.BirthDate,
				p.DeathDate,
				p.Epitaph,
			}

			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
