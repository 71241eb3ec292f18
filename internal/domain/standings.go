package domain

// DriverStanding is one row of the championship table.
type DriverStanding struct {
	DriverID        string
	Position        int
	GivenName       string
	FamilyName      string
	PermanentNumber string
	Nationality     string
	URL             string
	Points          float64
	Wins            int
	Team            string
}

// FullName returns "GivenName FamilyName".
func (d DriverStanding) FullName() string {
	return d.GivenName + " " + d.FamilyName
}

// ConstructorStanding is one row of the constructors' championship table.
type ConstructorStanding struct {
	ConstructorID string
	Position      int
	Name          string
	Points        float64
	Wins          int
}

// RaceResult is one classified finisher of a completed race.
type RaceResult struct {
	Position   int
	GivenName  string
	FamilyName string
	Team       string
	Time       string // finishing time or empty for DNF
	Points     float64
}
