package genealogy

// Statistics summarizes a person list.
type Statistics struct {
	TotalPeople          int `json:"totalPeople"`
	TotalFamilies        int `json:"totalFamilies"`
	MaleCount            int `json:"maleCount"`
	FemaleCount          int `json:"femaleCount"`
	OtherCount           int `json:"otherCount"`
	WithBirthDate        int `json:"withBirthDate"`
	WithDeathDate        int `json:"withDeathDate"`
	TotalSpouseRelations int `json:"totalSpouseRelations"`
	TotalChildRelations  int `json:"totalChildRelations"`
	TotalParentRelations int `json:"totalParentRelations"`
}

// ComputeStatistics counts people by gender and dates and sums their
// relationship list lengths. Relations are counted from each side, so one
// marriage adds two spouse relations. TotalFamilies is left for the caller,
// since families do not survive conversion.
func ComputeStatistics(people []Person) Statistics {
	s := Statistics{TotalPeople: len(people)}
	for _, p := range people {
		switch p.Gender {
		case GenderMale:
			s.MaleCount++
		case GenderFemale:
			s.FemaleCount++
		default:
			s.OtherCount++
		}
		if p.BirthDate != "" {
			s.WithBirthDate++
		}
		if p.DeathDate != "" {
			s.WithDeathDate++
		}
		s.TotalSpouseRelations += len(p.Spouses)
		s.TotalChildRelations += len(p.Children)
		s.TotalParentRelations += len(p.Parents)
	}
	return s
}
