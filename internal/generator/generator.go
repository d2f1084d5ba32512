// Package generator builds new campaign personnel from a set of random steps.
package generator

import (
	"time"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/campaign"
	"github.com/dither001/mekhq/internal/domain/personnel"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=generator.go

// Context is the campaign state personnel generation reads.
// Generation never mutates it.
type Context interface {
	ID() string
	CurrentDate() time.Time
	FactionCode() string
	IsClanFaction() bool
	Options() *campaign.Options
	Roller() dice.Roller
}

// Generator produces fully initialised personnel
type Generator interface {
	// Generate creates a person with the given primary role and no secondary role
	Generate(c Context, primary personnel.Role) (*personnel.Person, error)

	// GenerateWithSecondary creates a person with both roles set
	GenerateWithSecondary(c Context, primary, secondary personnel.Role) (*personnel.Person, error)
}

var _ Context = (*campaign.Campaign)(nil)
