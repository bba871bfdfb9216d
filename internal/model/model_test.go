package model

import (
	"encoding/json"
	"testing"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Condition
		wantErr bool
	}{
		{name: "french label", input: "Très bon", want: ConditionVeryGood},
		{name: "ascii alias", input: "tres-bon", want: ConditionVeryGood},
		{name: "english alias", input: "very-good", want: ConditionVeryGood},
		{name: "bon", input: "bon", want: ConditionGood},
		{name: "moyen", input: "moyen", want: ConditionAverage},
		{name: "mauvais", input: "mauvais", want: ConditionBad},
		{name: "tres-mauvais", input: "tres-mauvais", want: ConditionVeryBad},
		{name: "unknown", input: "ruiné", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCondition(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCondition(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if err == nil && got != tt.want {
				t.Errorf("ParseCondition(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConditionValid(t *testing.T) {
	for _, c := range Conditions() {
		if !c.Valid() {
			t.Errorf("Conditions() returned invalid value %q", c)
		}
	}

	if Condition("Ruiné").Valid() {
		t.Error("unknown condition reported valid")
	}
}

func TestGraveRecordJSONShape(t *testing.T) {
	lat, lng := 48.8711, 2.3955

	rec := GraveRecord{
		ID:          "id-1",
		SteleNumber: 7,
		Condition:   ConditionAverage,
		People:      []Person{{Name: "Marie Dupont", Epitaph: "À notre mère"}},
		Lat:         &lat,
		Lng:         &lng,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// Field names are the collector's contract; the Apps Script reads
	// these exact keys.
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"id", "steleNumber", "aisleNumber", "condition", "photoUrl", "people", "timestamp", "isSynced", "lat", "lng"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshalled record is missing key %q", key)
		}
	}
}

func TestGraveRecordOmitsAbsentCoordinates(t *testing.T) {
	data, err := json.Marshal(GraveRecord{ID: "id-1"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if _, ok := m["lat"]; ok {
		t.Error("lat should be omitted when no fix was taken")
	}

	if (&GraveRecord{}).HasCoordinates() {
		t.Error("HasCoordinates() without coordinates = true")
	}
}
