package genealogy

// Gender is the normalized sex classification of a Person.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// genderOf maps a GEDCOM sex code. Anything but "M" or "F", including an
// absent code, is GenderOther.
func genderOf(sex string) Gender {
	switch sex {
	case "M":
		return GenderMale
	case "F":
		return GenderFemale
	default:
		return GenderOther
	}
}

// Person is the canonical, JSON-serializable form of an individual.
//
// The four relationship lists hold person IDs. After [Convert] they are
// deduplicated and reference only people present in the same list. A Person
// is never mutated after conversion.
type Person struct {
	ID          string   `json:"id"`
	GivenName   string   `json:"givenName"`
	FamilyName  string   `json:"familyName"`
	DisplayName string   `json:"displayName"`
	BirthDate   string   `json:"birthDate,omitempty"` // YYYY-MM-DD
	DeathDate   string   `json:"deathDate,omitempty"` // YYYY-MM-DD
	BirthPlace  string   `json:"birthPlace,omitempty"`
	DeathPlace  string   `json:"deathPlace,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Gender      Gender   `json:"gender"`
	Parents     []string `json:"parents"`
	Spouses     []string `json:"spouses"`
	Children    []string `json:"children"`
	Siblings    []string `json:"siblings"`
	Sources     []string `json:"sources"`
	PhotoURL    string   `json:"photoUrl,omitempty"`
	Tags        []string `json:"tags"`
}

// Relatives is a person together with the resolved objects of their
// relationship lists.
type Relatives struct {
	Person   Person   `json:"person"`
	Parents  []Person `json:"parents"`
	Spouses  []Person `json:"spouses"`
	Children []Person `json:"children"`
	Siblings []Person `json:"siblings"`
}
