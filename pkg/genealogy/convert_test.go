package genealogy

import (
	"slices"
	"testing"

	"github.com/matzehuels/gedgraph/pkg/gedcom"
)

const delpechFamily = `0 HEAD
0 @I1@ INDI
1 NAME Pierre /Delpech/
1 SEX M
1 BIRT
2 DATE 10 MAY 1760
2 PLAC Provence, France
1 DEAT
2 DATE 20 MAR 1835
1 OCCU Farmer
1 FAMS @F1@
0 @I2@ INDI
1 NAME Marguerite /Blanc/
1 SEX F
1 FAMS @F1@
0 @I3@ INDI
1 NAME Marie-Antoinette /Delpech/
1 SEX F
1 FAMC @F1@
1 FAMS @F2@
0 @I4@ INDI
1 NAME Antoine /Grognier/
1 SEX M
1 FAMS @F2@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
1 MARR
2 DATE 1785
0 @F2@ FAM
1 HUSB @I4@
1 WIFE @I3@
1 CHIL @I5@
0 @I5@ INDI
1 NAME Louise /Grognier/
1 SEX F
1 FAMC @F2@
0 TRLR
`

func delpechPeople(t *testing.T) []Person {
	t.Helper()
	res := gedcom.Parse(delpechFamily)
	if len(res.Errors) != 0 {
		t.Fatalf("parse errors: %v", res.Errors)
	}
	return Convert(res)
}

func byID(people []Person) map[string]Person {
	m := make(map[string]Person, len(people))
	for _, p := range people {
		m[p.ID] = p
	}
	return m
}

func TestConvertScenario(t *testing.T) {
	people := delpechPeople(t)
	if len(people) != 5 {
		t.Fatalf("len(people) = %d, want 5", len(people))
	}
	m := byID(people)

	pierre := m["I1"]
	if !slices.Equal(pierre.Spouses, []string{"I2"}) {
		t.Errorf("Pierre.Spouses = %v, want [I2]", pierre.Spouses)
	}
	if pierre.BirthDate != "1760-05-10" || pierre.DeathDate != "1835-03-20" {
		t.Errorf("Pierre dates = %q / %q", pierre.BirthDate, pierre.DeathDate)
	}
	if pierre.BirthPlace != "Provence, France" {
		t.Errorf("Pierre.BirthPlace = %q", pierre.BirthPlace)
	}
	if pierre.Gender != GenderMale || pierre.DisplayName != "Pierre Delpech" {
		t.Errorf("Pierre gender/name = %q / %q", pierre.Gender, pierre.DisplayName)
	}
	if pierre.Bio != "Occupation: Farmer" {
		t.Errorf("Pierre.Bio = %q", pierre.Bio)
	}
	if !slices.Equal(pierre.Tags, []string{"Farmer"}) {
		t.Errorf("Pierre.Tags = %v", pierre.Tags)
	}

	marie := m["I3"]
	if !slices.Equal(marie.Parents, []string{"I1", "I2"}) {
		t.Errorf("Marie-Antoinette.Parents = %v, want [I1 I2]", marie.Parents)
	}
	if !slices.Equal(marie.Children, []string{"I5"}) {
		t.Errorf("Marie-Antoinette.Children = %v, want [I5]", marie.Children)
	}
	if !slices.Equal(marie.Spouses, []string{"I4"}) {
		t.Errorf("Marie-Antoinette.Spouses = %v, want [I4]", marie.Spouses)
	}
	if m["I5"].Gender != GenderFemale {
		t.Errorf("Louise.Gender = %q", m["I5"].Gender)
	}
}

func TestConvertSymmetry(t *testing.T) {
	people := delpechPeople(t)
	m := byID(people)

	for _, a := range people {
		for _, b := range a.Spouses {
			if !slices.Contains(m[b].Spouses, a.ID) {
				t.Errorf("%s lists spouse %s, but not the reverse", a.ID, b)
			}
		}
		for _, parent := range a.Parents {
			if !slices.Contains(m[parent].Children, a.ID) {
				t.Errorf("%s lists parent %s, but %s does not list the child", a.ID, parent, parent)
			}
		}
	}
}

func TestConvertSiblings(t *testing.T) {
	res := gedcom.Parse(`0 @I1@ INDI
1 FAMC @F1@
0 @I2@ INDI
1 FAMC @F1@
1 FAMC @F2@
0 @I3@ INDI
1 FAMC @F2@
0 @F1@ FAM
1 CHIL @I1@
1 CHIL @I2@
0 @F2@ FAM
1 CHIL @I2@
1 CHIL @I3@
1 CHIL @I1@
`)
	m := byID(Convert(res))

	tests := map[string][]string{
		"I1": {"I2"},
		"I2": {"I1", "I3"},
		"I3": {"I2", "I1"},
	}
	for id, want := range tests {
		got := m[id].Siblings
		if !slices.Equal(got, want) {
			t.Errorf("%s.Siblings = %v, want %v", id, got, want)
		}
		if slices.Contains(got, id) {
			t.Errorf("%s lists itself as a sibling", id)
		}
	}
}

func TestConvertReferentialCleanup(t *testing.T) {
	res := gedcom.Parse(`0 @I1@ INDI
1 NAME Jean /Martin/
1 FAMS @F1@
1 FAMS @F9@
1 FAMC @F2@
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I404@
1 CHIL @I2@
1 CHIL @I2@
1 CHIL @I405@
0 @F2@ FAM
1 WIFE @I406@
1 CHIL @I1@
0 @I2@ INDI
1 FAMC @F1@
`)
	people := Convert(res)
	ids := map[string]bool{}
	for _, p := range people {
		ids[p.ID] = true
	}
	for _, p := range people {
		for _, list := range [][]string{p.Parents, p.Spouses, p.Children, p.Siblings} {
			for _, id := range list {
				if !ids[id] {
					t.Errorf("%s references unknown %s", p.ID, id)
				}
			}
		}
	}

	m := byID(people)
	if !slices.Equal(m["I1"].Children, []string{"I2"}) {
		t.Errorf("I1.Children = %v, want deduplicated [I2]", m["I1"].Children)
	}
	if len(m["I1"].Spouses) != 0 || len(m["I1"].Parents) != 0 {
		t.Errorf("I1 spouses/parents = %v / %v, want empty", m["I1"].Spouses, m["I1"].Parents)
	}
	if !Validate(people).Valid {
		t.Errorf("Validate(converted) = %v, want valid", Validate(people).Errors)
	}
}

func TestConvertFields(t *testing.T) {
	tests := []struct {
		name    string
		ind     gedcom.Individual
		display string
		bio     string
		gender  Gender
	}{
		{
			name:    "given and family",
			ind:     gedcom.Individual{ID: "I1", Name: gedcom.ParseName("Jean /Martin/"), Sex: "M"},
			display: "Jean Martin",
			gender:  GenderMale,
		},
		{
			name:    "family only",
			ind:     gedcom.Individual{ID: "I1", Name: gedcom.ParseName("/Martin/"), Sex: "F"},
			display: "Martin",
			gender:  GenderFemale,
		},
		{
			name:    "no name falls back to id",
			ind:     gedcom.Individual{ID: "I7", Sex: "U"},
			display: "I7",
			gender:  GenderOther,
		},
		{
			name:    "full name fallback",
			ind:     gedcom.Individual{ID: "I1", Name: gedcom.Name{Full: "Unknown"}},
			display: "Unknown",
			gender:  GenderOther,
		},
		{
			name:    "note and occupation",
			ind:     gedcom.Individual{ID: "I1", Note: "Lived in Lyon", Occupation: "Weaver"},
			display: "I1",
			bio:     "Lived in Lyon. Occupation: Weaver",
			gender:  GenderOther,
		},
		{
			name:    "occupation already in note",
			ind:     gedcom.Individual{ID: "I1", Note: "A Weaver by trade", Occupation: "Weaver"},
			display: "I1",
			bio:     "A Weaver by trade",
			gender:  GenderOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := convertIndividual(&tt.ind, nil)
			if p.DisplayName != tt.display {
				t.Errorf("DisplayName = %q, want %q", p.DisplayName, tt.display)
			}
			if p.Bio != tt.bio {
				t.Errorf("Bio = %q, want %q", p.Bio, tt.bio)
			}
			if p.Gender != tt.gender {
				t.Errorf("Gender = %q, want %q", p.Gender, tt.gender)
			}
			if p.Sources == nil || len(p.Sources) != 0 {
				t.Errorf("Sources = %v, want empty list", p.Sources)
			}
		})
	}
}

func TestConvertEventTags(t *testing.T) {
	res := gedcom.Parse("0 @I1@ INDI\n1 OCCU Menuisier\n1 BURI\n2 DATE 1890\n1 RESI\n1 RESI\n")
	p := Convert(res)[0]
	if want := []string{"Menuisier", "BURI", "RESI"}; !slices.Equal(p.Tags, want) {
		t.Errorf("Tags = %v, want %v", p.Tags, want)
	}
}

func TestConvertNil(t *testing.T) {
	if got := Convert(nil); got == nil || len(got) != 0 {
		t.Errorf("Convert(nil) = %v, want empty list", got)
	}
}
