package genealogy

import (
	"slices"
	"strings"

	"github.com/matzehuels/gedgraph/pkg/gedcom"
)

// Convert turns the raw records of a parse into canonical people, one per
// individual, in source order.
//
// Conversion runs in three passes: each individual is mapped on its own
// (gender, spouses, children, parents, bio, display name), then siblings are
// derived from the parent families, and finally every relationship list is
// deduplicated and stripped of IDs that do not name a converted person.
// Dangling references are dropped silently; use [Validate] to report them.
func Convert(res *gedcom.Result) []Person {
	if res == nil {
		return []Person{}
	}

	individuals := res.OrderedIndividuals()
	people := make([]Person, 0, len(individuals))
	for _, ind := range individuals {
		people = append(people, convertIndividual(ind, res.Families))
	}

	for i, ind := range individuals {
		people[i].Siblings = siblingsOf(ind, res.Families)
	}

	known := make(map[string]bool, len(people))
	for _, p := range people {
		known[p.ID] = true
	}
	for i := range people {
		p := &people[i]
		p.Parents = clean(p.Parents, known)
		p.Spouses = clean(p.Spouses, known)
		p.Children = clean(p.Children, known)
		p.Siblings = clean(p.Siblings, known)
	}
	return people
}

func convertIndividual(ind *gedcom.Individual, families map[string]*gedcom.Family) Person {
	p := Person{
		ID:          ind.ID,
		GivenName:   ind.Name.Given,
		FamilyName:  ind.Name.Family,
		DisplayName: displayName(ind),
		BirthDate:   gedcom.DateToISO(ind.BirthDate),
		DeathDate:   gedcom.DateToISO(ind.DeathDate),
		BirthPlace:  gedcom.FormatPlace(ind.BirthPlace),
		DeathPlace:  gedcom.FormatPlace(ind.DeathPlace),
		Bio:         bio(ind.Note, ind.Occupation),
		Gender:      genderOf(ind.Sex),
		Parents:     []string{},
		Spouses:     []string{},
		Children:    []string{},
		Siblings:    []string{},
		Sources:     []string{},
		PhotoURL:    ind.PhotoURL,
		Tags:        tags(ind),
	}

	for _, famID := range ind.FamS {
		fam, ok := families[famID]
		if !ok {
			continue
		}
		switch {
		case fam.Husband == ind.ID && fam.Wife != "":
			p.Spouses = append(p.Spouses, fam.Wife)
		case fam.Wife == ind.ID && fam.Husband != "":
			p.Spouses = append(p.Spouses, fam.Husband)
		}
		p.Children = append(p.Children, fam.Children...)
	}

	for _, famID := range ind.FamC {
		fam, ok := families[famID]
		if !ok {
			continue
		}
		if fam.Husband != "" {
			p.Parents = append(p.Parents, fam.Husband)
		}
		if fam.Wife != "" {
			p.Parents = append(p.Parents, fam.Wife)
		}
	}
	return p
}

// displayName joins the given and family names, falling back to the full
// name and then to the ID.
func displayName(ind *gedcom.Individual) string {
	var parts []string
	if ind.Name.Given != "" {
		parts = append(parts, ind.Name.Given)
	}
	if ind.Name.Family != "" {
		parts = append(parts, ind.Name.Family)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if ind.Name.Full != "" {
		return ind.Name.Full
	}
	return ind.ID
}

func bio(note, occupation string) string {
	if occupation == "" || strings.Contains(note, occupation) {
		return note
	}
	if note == "" {
		return "Occupation: " + occupation
	}
	return note + ". Occupation: " + occupation
}

// tags lists the occupation followed by the types of extra events.
func tags(ind *gedcom.Individual) []string {
	out := []string{}
	if ind.Occupation != "" {
		out = append(out, ind.Occupation)
	}
	for _, ev := range ind.Events {
		if !slices.Contains(out, ev.Type) {
			out = append(out, ev.Type)
		}
	}
	return out
}

func siblingsOf(ind *gedcom.Individual, families map[string]*gedcom.Family) []string {
	out := []string{}
	for _, famID := range ind.FamC {
		fam, ok := families[famID]
		if !ok {
			continue
		}
		for _, child := range fam.Children {
			if child != ind.ID {
				out = append(out, child)
			}
		}
	}
	return out
}

// clean drops unknown and repeated IDs, keeping first-occurrence order.
func clean(ids []string, known map[string]bool) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
