package export

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/inovacc/stele/internal/model"
)

type geoFeature struct {
	Type       string         `json:"type"`
	Geometry   geoPoint       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // lng, lat per RFC 7946
}

type featureCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

// WriteGeoJSON writes a FeatureCollection with one Point per record that
// carries coordinates. Records without a GPS fix are skipped.
func WriteGeoJSON(w io.Writer, records []model.GraveRecord) error {
	fc := featureCollection{
		Type:     "FeatureCollection",
		Features: []geoFeature{},
	}

	for _, rec := range records {
		if !rec.HasCoordinates() {
			continue
		}

		names := make([]string, 0, len(rec.People))
		for _, p := range rec.People {
			names = append(names, p.Name)
		}

		fc.Features = append(fc.Features, geoFeature{
			Type: "Feature",
			Geometry: geoPoint{
				Type:        "Point",
				Coordinates: [2]float64{*rec.Lng, *rec.Lat},
			},
			Properties: map[string]any{
				"steleNumber": rec.SteleNumber,
				"aisle":       rec.AisleNumber,
				"condition":   rec.Condition.String(),
				"names":       strings.Join(names, ", "),
				"synced":      rec.IsSynced,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(fc)
}
