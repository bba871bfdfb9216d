package model

import (
	"fmt"
	"time"
)

// Condition describes the physical state of a marker. The values are the
// ones used on the survey sheets, in French.
type Condition string

const (
	ConditionVeryGood Condition = "Très bon"
	ConditionGood     Condition = "Bon"
	ConditionAverage  Condition = "Moyen"
	ConditionBad      Condition = "Mauvais"
	ConditionVeryBad  Condition = "Très mauvais"
)

// Conditions lists all valid condition values, best to worst.
func Conditions() []Condition {
	return []Condition{
		ConditionVeryGood,
		ConditionGood,
		ConditionAverage,
		ConditionBad,
		ConditionVeryBad,
	}
}

func (c Condition) String() string {
	return string(c)
}

// Valid reports whether c is one of the enumerated conditions.
func (c Condition) Valid() bool {
	switch c {
	case ConditionVeryGood, ConditionGood, ConditionAverage, ConditionBad, ConditionVeryBad:
		return true
	}

	return false
}

// ParseCondition converts user input to a Condition. It accepts the exact
// French labels as well as ascii aliases usable from a shell.
func ParseCondition(s string) (Condition, error) {
	switch s {
	case "Très bon", "tres-bon", "very-good":
		return ConditionVeryGood, nil
	case "Bon", "bon", "good":
		return ConditionGood, nil
	case "Moyen", "moyen", "average":
		return ConditionAverage, nil
	case "Mauvais", "mauvais", "bad":
		return ConditionBad, nil
	case "Très mauvais", "tres-mauvais", "very-bad":
		return ConditionVeryBad, nil
	}

	return "", fmt.Errorf("unknown condition %q (valid: tres-bon, bon, moyen, mauvais, tres-mauvais)", s)
}

// Person is one named individual inscribed on a marker. All fields are
// free text and any of them may be empty when illegible or absent.
type Person struct {
	// Name is the full name as inscribed
	Name string `json:"name"`

	// BirthDate is the birth date as inscribed (free text, not normalized)
	BirthDate string `json:"birthDate"`

	// BirthPlace is the place of birth, with postal code when present
	BirthPlace string `json:"birthPlace"`

	// DeathDate is the death date as inscribed
	DeathDate string `json:"deathDate"`

	// DeathPlace is the place of death, with postal code when present
	DeathPlace string `json:"deathPlace"`

	// Epitaph is the epitaph text, if any
	Epitaph string `json:"epitaph"`
}

// GraveRecord is one physical marker observation.
type GraveRecord struct {
	// ID is the unique identifier (UUID), assigned at creation
	ID string `json:"id"`

	// SteleNumber is the persisted monotonic display number. It is assigned
	// by the store and never reused, even after the record is deleted.
	SteleNumber int `json:"steleNumber"`

	// AisleNumber is a free-text location label within the cemetery
	AisleNumber string `json:"aisleNumber"`

	// Condition is the physical state of the marker
	Condition Condition `json:"condition"`

	// PhotoURL references the marker photo; opaque to the store
	PhotoURL string `json:"photoUrl"`

	// People lists the individuals named on the marker. Order is the
	// reading order on the stone.
	People []Person `json:"people"`

	// Timestamp is the capture instant
	Timestamp time.Time `json:"timestamp"`

	// IsSynced reports whether the record was part of a successful
	// transfer to the collector endpoint
	IsSynced bool `json:"isSynced"`

	// Lat and Lng are the GPS coordinates taken at capture time, if any
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`
}

// HasCoordinates reports whether the record carries a GPS position.
func (r *GraveRecord) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}
