package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inovacc/stele/internal/model"
	"github.com/inovacc/stele/internal/store"
	"github.com/spf13/pflag"
)

// coordPair validates the --lat/--lng flag pair. Both or neither must be
// given; a lone value is a data-entry mistake, not a partial fix.
func coordPair(fs *pflag.FlagSet, lat, lng float64) (*float64, *float64, error) {
	if fs.Changed("lat") != fs.Changed("lng") {
		return nil, nil, fmt.Errorf("--lat and --lng must be given together")
	}

	if !fs.Changed("lat") {
		return nil, nil, nil
	}

	return &lat, &lng, nil
}

// resolveRecord finds a record by stele number or by id (full or unambiguous
// prefix). Users mostly know records by their stele number.
func resolveRecord(db store.Store, arg string) (model.GraveRecord, error) {
	records, err := db.Load()
	if err != nil {
		return model.GraveRecord{}, err
	}

	return findRecord(records, arg)
}

func findRecord(records []model.GraveRecord, arg string) (model.GraveRecord, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		for _, rec := range records {
			if rec.SteleNumber == n {
				return rec, nil
			}
		}

		return model.GraveRecord{}, fmt.Errorf("no record with stele number %d", n)
	}

	var matches []model.GraveRecord

	for _, rec := range records {
		if strings.HasPrefix(rec.ID, arg) {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 0:
		return model.GraveRecord{}, fmt.Errorf("no record matching %q", arg)
	case 1:
		return matches[0], nil
	default:
		return model.GraveRecord{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

// parsePerson parses the --person flag format:
// "Name;birthDate;birthPlace;deathDate;deathPlace;epitaph". Trailing fields
// may be omitted.
func parsePerson(spec string) (model.Person, error) {
	fields := strings.Split(spec, ";")

	if strings.TrimSpace(fields[0]) == "" {
		return model.Person{}, fmt.Errorf("person %q: name is required", spec)
	}

	if len(fields) > 6 {
		return model.Person{}, fmt.Errorf("person %q: too many fields (max 6)", spec)
	}

	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}

		return ""
	}

	return model.Person{
		Name:       get(0),
		BirthDate:  get(1),
		BirthPlace: get(2),
		DeathDate:  get(3),
		DeathPlace: get(4),
		Epitaph:    get(5),
	}, nil
}

// printRecord writes a full record to stdout.
func printRecord(rec model.GraveRecord) {
	synced := "no"
	if rec.IsSynced {
		synced = "yes"
	}

	fmt.Printf("Stele N°:   %d\n", rec.SteleNumber)
	fmt.Printf("ID:         %s\n", rec.ID)
	fmt.Printf("Aisle:      %s\n", rec.AisleNumber)
	fmt.Printf("Condition:  %s\n", rec.Condition)
	fmt.Printf("Photo:      %s\n", rec.PhotoURL)

	if rec.HasCoordinates() {
		fmt.Printf("Position:   %.6f, %.6f\n", *rec.Lat, *rec.Lng)
	} else {
		fmt.Printf("Position:   (none)\n")
	}

	fmt.Printf("Captured:   %s\n", rec.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("Synced:     %s\n", synced)

	for i, p := range rec.People {
		fmt.Printf("Person %d:   %s\n", i+1, p.Name)

		if p.BirthDate != "" || p.BirthPlace != "" {
			fmt.Printf("  Born:     %s %s\n", p.BirthDate, p.BirthPlace)
		}

		if p.DeathDate != "" || p.DeathPlace != "" {
			fmt.Printf("  Died:     %s %s\n", p.DeathDate, p.DeathPlace)
		}

		if p.Epitaph != "" {
			fmt.Printf("  Epitaph:  %s\n", p.Epitaph)
		}
	}
}
