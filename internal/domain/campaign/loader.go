package campaign

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
)

// DateLayout is the layout of campaign dates in campaign files
const DateLayout = "2006-01-02"

// File is the on-disk form of a campaign
type File struct {
	ID               string                          `yaml:"id,omitempty"`
	Name             string                          `yaml:"name"`
	Faction          string                          `yaml:"faction"`
	Date             string                          `yaml:"date"`
	Options          *Options                        `yaml:"options,omitempty"`
	SkillPreferences *personnel.SkillPreferencesData `yaml:"skill_preferences,omitempty"`
}

// Load reads a campaign file. A nil roller gets a crypto-seeded one.
func Load(path string, roller dice.Roller) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading campaign file: %w", err)
	}
	return Parse(data, roller)
}

// Parse decodes a campaign from YAML. Options missing from the document keep their defaults.
func Parse(data []byte, roller dice.Roller) (*Campaign, error) {
	f := File{Options: DefaultOptions()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeInvalidArgument, "parsing campaign file")
	}

	date, err := time.Parse(DateLayout, f.Date)
	if err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeInvalidArgument, "parsing campaign date").
			WithMeta("date", f.Date)
	}

	prefs, err := personnel.SkillPreferencesFromData(f.SkillPreferences)
	if err != nil {
		return nil, hqerr.Wrap(err, "parsing skill preferences")
	}

	return New(&Config{
		ID:               f.ID,
		Name:             f.Name,
		FactionCode:      f.Faction,
		Date:             date,
		Options:          f.Options,
		SkillPreferences: prefs,
		Roller:           roller,
	})
}

// Marshal encodes a campaign in the campaign file format
func Marshal(c *Campaign) ([]byte, error) {
	f := File{
		ID:               c.ID(),
		Name:             c.Name(),
		Faction:          c.FactionCode(),
		Date:             c.CurrentDate().Format(DateLayout),
		Options:          c.Options(),
		SkillPreferences: c.SkillPreferences().Data(),
	}
	out, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encoding campaign: %w", err)
	}
	return out, nil
}
