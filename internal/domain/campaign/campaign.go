// Package campaign provides the campaign context that personnel are generated for.
package campaign

import (
	"time"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/dither001/mekhq/internal/uuid"
)

// Campaign is a running campaign as seen by personnel generation
type Campaign struct {
	id          string
	idGenerated bool
	name        string
	faction     *Faction
	date        time.Time
	options     *Options
	preferences *personnel.SkillPreferences
	roller      dice.Roller
}

// Config holds what is needed to create a Campaign
type Config struct {
	ID               string // Optional, generated when empty
	Name             string
	FactionCode      string // Required
	Date             time.Time
	Options          *Options                    // Optional, defaults when nil
	SkillPreferences *personnel.SkillPreferences // Optional, all zero when nil
	Roller           dice.Roller                 // Optional, crypto-seeded when nil
	UUIDGenerator    uuid.Generator
}

// New creates a campaign
func New(cfg *Config) (*Campaign, error) {
	if cfg == nil {
		return nil, hqerr.InvalidArgument("campaign config cannot be nil")
	}
	if cfg.FactionCode == "" {
		return nil, hqerr.InvalidArgument("campaign faction code is required")
	}
	if cfg.Date.IsZero() {
		return nil, hqerr.InvalidArgument("campaign date is required")
	}

	faction, err := LookupFaction(cfg.FactionCode)
	if err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeInvalidArgument, "invalid campaign faction")
	}

	options := cfg.Options
	if options == nil {
		options = DefaultOptions()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	prefs := cfg.SkillPreferences
	if prefs == nil {
		prefs = personnel.NewSkillPreferences()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	id := cfg.ID
	idGenerated := id == ""
	if idGenerated {
		gen := cfg.UUIDGenerator
		if gen == nil {
			gen = uuid.NewGoogleUUIDGenerator()
		}
		id = gen.New()
	}

	y, m, d := cfg.Date.Date()
	return &Campaign{
		id:          id,
		idGenerated: idGenerated,
		name:        cfg.Name,
		faction:     faction,
		date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		options:     options,
		preferences: prefs,
		roller:      roller,
	}, nil
}

// ID is the campaign identifier
func (c *Campaign) ID() string { return c.id }

// IDGenerated reports whether the ID was made up at creation rather than
// supplied. Such an ID changes every time the same campaign file is loaded.
func (c *Campaign) IDGenerated() bool { return c.idGenerated }

// Name is the campaign display name
func (c *Campaign) Name() string { return c.name }

// Faction is the faction the campaign plays
func (c *Campaign) Faction() *Faction { return c.faction }

// FactionCode is the code of the campaign faction
func (c *Campaign) FactionCode() string { return c.faction.Code }

// IsClanFaction reports whether the campaign plays a clan
func (c *Campaign) IsClanFaction() bool { return c.faction.Clan }

// CurrentDate is the in-world date, at midnight UTC
func (c *Campaign) CurrentDate() time.Time { return c.date }

// Options are the campaign options
func (c *Campaign) Options() *Options { return c.options }

// SkillPreferences are the campaign's recruit bonuses
func (c *Campaign) SkillPreferences() *personnel.SkillPreferences { return c.preferences }

// Roller is the campaign's shared random source
func (c *Campaign) Roller() dice.Roller { return c.roller }
