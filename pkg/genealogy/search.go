package genealogy

import "strings"

// SearchByName returns the people whose display, given or family name
// contains query, ignoring case. An empty query matches everyone.
func SearchByName(people []Person, query string) []Person {
	q := strings.ToLower(query)
	return filter(people, func(p Person) bool {
		text := strings.ToLower(p.DisplayName + " " + p.GivenName + " " + p.FamilyName)
		return strings.Contains(text, q)
	})
}

// FilterByTag returns the people with at least one tag containing tag,
// ignoring case.
func FilterByTag(people []Person, tag string) []Person {
	t := strings.ToLower(tag)
	return filter(people, func(p Person) bool {
		return containsFold(p.Tags, t)
	})
}

// FilterByProfession returns the people whose given name, family name, bio
// or tags contain keyword, ignoring case.
func FilterByProfession(people []Person, keyword string) []Person {
	k := strings.ToLower(keyword)
	return filter(people, func(p Person) bool {
		text := strings.ToLower(p.GivenName + " " + p.FamilyName + " " + p.Bio)
		return strings.Contains(text, k) || containsFold(p.Tags, k)
	})
}

// containsFold reports whether any of values contains the lower-cased sub.
func containsFold(values []string, sub string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), sub) {
			return true
		}
	}
	return false
}

func filter(people []Person, keep func(Person) bool) []Person {
	out := []Person{}
	for _, p := range people {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
