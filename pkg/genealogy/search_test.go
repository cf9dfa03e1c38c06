package genealogy

import (
	"slices"
	"testing"
)

var craftsmen = []Person{
	{ID: "pierre", GivenName: "Pierre", FamilyName: "Delpech", DisplayName: "Pierre Delpech", Bio: "Founder and farmer", Tags: []string{"fondateur", "fermier"}},
	{ID: "joseph", GivenName: "Joseph", FamilyName: "Delpech", DisplayName: "Joseph Delpech", Bio: "Skilled carpenter and craftsman", Tags: []string{"menuisier", "métiers"}},
	{ID: "marie-louise", GivenName: "Marie-Louise", FamilyName: "Grognier", DisplayName: "Marie-Louise Grognier", Bio: "Textile weaver", Tags: []string{"tisserande", "métiers"}},
	{ID: "joseph-junior", GivenName: "Joseph", FamilyName: "Delpech", DisplayName: "Joseph Delpech (Fils)", Bio: "Carpentry", Tags: []string{"Menuisier", "métiers"}},
}

func TestSearchByName(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"pierre", []string{"pierre"}},
		{"DELPECH", []string{"pierre", "joseph", "joseph-junior"}},
		{"fils", []string{"joseph-junior"}},
		{"", []string{"pierre", "joseph", "marie-louise", "joseph-junior"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := ids(SearchByName(craftsmen, tt.query)); !slices.Equal(got, tt.want) {
				t.Errorf("SearchByName(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterByTag(t *testing.T) {
	tests := []struct {
		tag  string
		want []string
	}{
		{"menuisier", []string{"joseph", "joseph-junior"}},
		{"MENUISIER", []string{"joseph", "joseph-junior"}},
		{"métiers", []string{"joseph", "marie-louise", "joseph-junior"}},
		{"ferm", []string{"pierre"}},
		{"non-existent-tag", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ids(FilterByTag(craftsmen, tt.tag)); !slices.Equal(got, tt.want) {
				t.Errorf("FilterByTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestFilterByProfession(t *testing.T) {
	tests := []struct {
		keyword string
		want    []string
	}{
		{"carpenter", []string{"joseph"}},
		{"CARPENT", []string{"joseph", "joseph-junior"}},
		{"weaver", []string{"marie-louise"}},
		{"tisserande", []string{"marie-louise"}},
		{"grognier", []string{"marie-louise"}},
		{"blacksmith", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			if got := ids(FilterByProfession(craftsmen, tt.keyword)); !slices.Equal(got, tt.want) {
				t.Errorf("FilterByProfession(%q) = %v, want %v", tt.keyword, got, tt.want)
			}
		})
	}
}
