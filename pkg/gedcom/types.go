package gedcom

import "time"

// Date is a parsed DATE value. Any subset of Year, Month and Day may be
// missing; a date with only a year is complete enough for conversion.
type Date struct {
	Raw       string `json:"raw"`
	Year      int    `json:"year,omitempty"`
	Month     int    `json:"month,omitempty"`
	Day       int    `json:"day,omitempty"`
	Estimated bool   `json:"estimated,omitempty"`
}

// Place is a parsed PLAC value. City, Region and Country are the first
// three comma-separated parts; later parts only live in Parts.
type Place struct {
	Raw     string   `json:"raw"`
	Parts   []string `json:"parts"`
	City    string   `json:"city,omitempty"`
	Region  string   `json:"region,omitempty"`
	Country string   `json:"country,omitempty"`
}

// Name is a parsed NAME value.
type Name struct {
	Full   string `json:"full"`
	Given  string `json:"given"`
	Family string `json:"family"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// Event is a dated, placed occurrence attached to a record (BIRT, BURI...).
type Event struct {
	Type  string `json:"type"`
	Date  *Date  `json:"date,omitempty"`
	Place *Place `json:"place,omitempty"`
}

// Individual is a raw INDI record.
type Individual struct {
	ID         string   `json:"id"`
	Name       Name     `json:"name"`
	Sex        string   `json:"sex,omitempty"`
	BirthDate  *Date    `json:"birthDate,omitempty"`
	BirthPlace *Place   `json:"birthPlace,omitempty"`
	DeathDate  *Date    `json:"deathDate,omitempty"`
	DeathPlace *Place   `json:"deathPlace,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Note       string   `json:"note,omitempty"`
	PhotoURL   string   `json:"photoUrl,omitempty"`
	FamC       []string `json:"famc,omitempty"` // families in which this person is a child
	FamS       []string `json:"fams,omitempty"` // families in which this person is a spouse
	Events     []Event  `json:"events,omitempty"`
}

// Family is a raw FAM record.
type Family struct {
	ID           string   `json:"id"`
	Husband      string   `json:"husband,omitempty"`
	Wife         string   `json:"wife,omitempty"`
	Children     []string `json:"children"`
	MarriageDate *Date    `json:"marriageDate,omitempty"`
	DivorceDate  *Date    `json:"divorceDate,omitempty"`
}

// Result is the output of a single parse. Individuals and Families are keyed
// by record identifier; the Order slices keep source order so conversion
// output is deterministic.
type Result struct {
	Individuals     map[string]*Individual
	Families        map[string]*Family
	IndividualOrder []string
	FamilyOrder     []string

	// Errors holds "Line <n>: <message>" entries for lines whose handler
	// failed. Warnings holds lines that were skipped as malformed.
	Errors   []string
	Warnings []string

	TotalLines int
	ParsedAt   time.Time
}

// OrderedIndividuals returns the individuals in source order.
func (r *Result) OrderedIndividuals() []*Individual {
	out := make([]*Individual, 0, len(r.IndividualOrder))
	for _, id := range r.IndividualOrder {
		if ind, ok := r.Individuals[id]; ok {
			out = append(out, ind)
		}
	}
	return out
}
