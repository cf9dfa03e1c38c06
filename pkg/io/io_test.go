package io

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/gedgraph/pkg/genealogy"
)

func sampleArtifact() *Artifact {
	people := []genealogy.Person{
		{ID: "I1", GivenName: "Pierre", FamilyName: "Delpech", DisplayName: "Pierre Delpech", Gender: genealogy.GenderMale, BirthDate: "1760-05-10", Children: []string{"I2"}},
		{ID: "I2", DisplayName: "Marie-Antoinette Delpech", Gender: genealogy.GenderFemale, Parents: []string{"I1"}},
	}
	return &Artifact{
		BuildID:     "b1",
		Source:      "family.ged",
		People:      people,
		Statistics:  genealogy.ComputeStatistics(people),
		ParsedAt:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		ParseErrors: []string{"Line 3: FAMS: missing cross-reference value"},
		Validation:  genealogy.Validate(people),
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "genealogy-data.json")

	in := sampleArtifact()
	if err := ExportJSON(in, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	out, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	if out.BuildID != "b1" || out.Source != "family.ged" || !out.ParsedAt.Equal(in.ParsedAt) {
		t.Errorf("header = %+v", out)
	}
	if len(out.People) != 2 || out.People[0].BirthDate != "1760-05-10" {
		t.Errorf("People = %+v", out.People)
	}
	if out.Statistics != in.Statistics {
		t.Errorf("Statistics = %+v, want %+v", out.Statistics, in.Statistics)
	}
	if !out.Validation.Valid || len(out.ParseErrors) != 1 {
		t.Errorf("Validation/ParseErrors = %+v / %v", out.Validation, out.ParseErrors)
	}
}

func TestWriteJSONEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&Artifact{BuildID: "b"}, &buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"people": []`, `"parseErrors": []`, `"parseWarnings": []`, `"errors": []`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %s:\n%s", want, buf.String())
		}
	}
	for _, field := range []string{`"totalPeople"`, `"withBirthDate"`, `"totalParentRelations"`} {
		if !strings.Contains(buf.String(), field) {
			t.Errorf("output missing statistics field %s", field)
		}
	}
}

func TestReadJSONBareArray(t *testing.T) {
	in := `
  [{"id": "a", "gender": "male", "children": ["b"]}, {"id": "b", "gender": "female", "parents": ["a"], "birthDate": "1800-01-01"}]`
	a, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.People) != 2 {
		t.Fatalf("len(People) = %d", len(a.People))
	}
	if a.Statistics.TotalPeople != 2 || a.Statistics.WithBirthDate != 1 || a.Statistics.MaleCount != 1 {
		t.Errorf("Statistics = %+v", a.Statistics)
	}
	if !a.Validation.Valid {
		t.Errorf("Validation = %+v", a.Validation)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"missing id", `{"people": [{"id": "a"}, {"givenName": "x"}]}`, ErrMissingID},
		{"duplicate id", `[{"id": "a"}, {"id": "a"}]`, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.want)
			}
		})
	}

	for _, in := range []string{"", "   ", "{not json"} {
		if _, err := ReadJSON(strings.NewReader(in)); err == nil {
			t.Errorf("ReadJSON(%q) should fail", in)
		}
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("ImportJSON(missing) should fail")
	}
}
