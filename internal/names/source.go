// Package names draws gendered names for new recruits.
package names

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=source.go

// Source produces a gender flag and a name conditioned on it
type Source interface {
	// IsFemale draws the weighted gender flag
	IsFemale() (bool, error)

	// Generate draws a full name for the given gender
	Generate(female bool) (string, error)
}

// PairSource can draw the gender flag and matching name with nothing interleaved
type PairSource interface {
	Source

	DrawPair() (female bool, name string, err error)
}

// Draw takes a gender flag and a matching name from src.
// A PairSource draws both under one lock.
func Draw(src Source) (bool, string, error) {
	if ps, ok := src.(PairSource); ok {
		return ps.DrawPair()
	}

	female, err := src.IsFemale()
	if err != nil {
		return false, "", err
	}
	name, err := src.Generate(female)
	if err != nil {
		return false, "", err
	}
	return female, name, nil
}
