package genealogy

import "fmt"

// Validation is the outcome of [Validate]. Valid is true exactly when Errors
// is empty.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate reports data-quality problems in an already converted list: an
// empty list, and every parent, child or spouse ID that names no person in
// the list. It never modifies people.
func Validate(people []Person) Validation {
	errs := []string{}
	if len(people) == 0 {
		errs = append(errs, "No people found in parsed data")
	}

	ids := make(map[string]bool, len(people))
	for _, p := range people {
		ids[p.ID] = true
	}

	check := func(p Person, kind string, refs []string) {
		for _, ref := range refs {
			if !ids[ref] {
				errs = append(errs, fmt.Sprintf("Person %s references non-existent %s %s", p.ID, kind, ref))
			}
		}
	}
	for _, p := range people {
		check(p, "parent", p.Parents)
		check(p, "child", p.Children)
		check(p, "spouse", p.Spouses)
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}
