package cmd

import (
	"testing"

	"github.com/inovacc/stele/internal/model"
)

func TestParsePerson(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    model.Person
		wantErr bool
	}{
		{
			name: "all fields",
			spec: "Jeanne Martin;03/05/1899;Lyon 69000;18/01/1972;Paris 75011;Regrets éternels",
			want: model.Person{
				Name:       "Jeanne Martin",
				BirthDate:  "03/05/1899",
				BirthPlace: "Lyon 69000",
				DeathDate:  "18/01/1972",
				DeathPlace: "Paris 75011",
				Epitaph:    "Regrets éternels",
			},
		},
		{
			name: "name only",
			spec: "Paul Martin",
			want: model.Person{Name: "Paul Martin"},
		},
		{
			name: "trailing fields omitted",
			spec: "Paul Martin;1895;;1968",
			want: model.Person{Name: "Paul Martin", BirthDate: "1895", DeathDate: "1968"},
		},
		{
			name:    "empty name",
			spec:    ";1895",
			wantErr: true,
		},
		{
			name:    "too many fields",
			spec:    "a;b;c;d;e;f;g",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePerson(tt.spec)

			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePerson(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}

			if err == nil && got != tt.want {
				t.Errorf("parsePerson(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestFindRecord(t *testing.T) {
	records := []model.GraveRecord{
		{ID: "aa11", SteleNumber: 2},
		{ID: "ab22", SteleNumber: 1},
	}

	tests := []struct {
		name    string
		arg     string
		wantID  string
		wantErr bool
	}{
		{name: "by stele number", arg: "1", wantID: "ab22"},
		{name: "by full id", arg: "aa11", wantID: "aa11"},
		{name: "by unambiguous prefix", arg: "ab", wantID: "ab22"},
		{name: "ambiguous prefix", arg: "a", wantErr: true},
		{name: "unknown number", arg: "9", wantErr: true},
		{name: "unknown id", arg: "zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := findRecord(records, tt.arg)

			if (err != nil) != tt.wantErr {
				t.Fatalf("findRecord(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}

			if err == nil && got.ID != tt.wantID {
				t.Errorf("findRecord(%q).ID = %s, want %s", tt.arg, got.ID, tt.wantID)
			}
		})
	}
}

func TestValidateWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "apps script url", url: "https://script.google.com/macros/s/abc/exec"},
		{name: "http rejected", url: "http://script.google.com/macros/s/abc/exec", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "garbage", url: "://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWebhookURL(tt.url)

			if (err != nil) != tt.wantErr {
				t.Errorf("validateWebhookURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
