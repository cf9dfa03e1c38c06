package genealogy

import "testing"

func TestComputeStatistics(t *testing.T) {
	s := ComputeStatistics(delpechPeople(t))

	want := Statistics{
		TotalPeople:          5,
		MaleCount:            2,
		FemaleCount:          3,
		WithBirthDate:        1,
		WithDeathDate:        1,
		TotalSpouseRelations: 4,
		TotalChildRelations:  4,
		TotalParentRelations: 4,
	}
	if s != want {
		t.Errorf("ComputeStatistics() = %+v, want %+v", s, want)
	}
}

func TestComputeStatisticsEmpty(t *testing.T) {
	if s := ComputeStatistics(nil); s != (Statistics{}) {
		t.Errorf("ComputeStatistics(nil) = %+v, want zero", s)
	}
}
