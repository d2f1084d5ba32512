package campaign

import (
	hqerr "github.com/dither001/mekhq/internal/errors"
)

// PhenotypeProbabilities holds the percentage chance, per phenotype family,
// that a clan recruit of a matching role is trueborn
type PhenotypeProbabilities struct {
	MechWarrior int `yaml:"mechwarrior" json:"mechwarrior"`
	Vehicle     int `yaml:"vehicle" json:"vehicle"`
	Aerospace   int `yaml:"aerospace" json:"aerospace"`
	BattleArmor int `yaml:"battle_armor" json:"battle_armor"`
}

// Options are the campaign-wide settings read by personnel generation
type Options struct {
	// AlternateRandomXP replaces starting XP with a weighted random draw
	AlternateRandomXP      bool                   `yaml:"alternate_random_xp" json:"alternate_random_xp"`
	PhenotypeProbabilities PhenotypeProbabilities `yaml:"phenotype_probabilities" json:"phenotype_probabilities"`
}

// DefaultOptions returns the stock campaign options
func DefaultOptions() *Options {
	return &Options{
		AlternateRandomXP: false,
		PhenotypeProbabilities: PhenotypeProbabilities{
			MechWarrior: 95,
			Vehicle:     0,
			Aerospace:   95,
			BattleArmor: 100,
		},
	}
}

// Validate checks every probability lies in [0, 100]
func (o *Options) Validate() error {
	probs := map[string]int{
		"mechwarrior":  o.PhenotypeProbabilities.MechWarrior,
		"vehicle":      o.PhenotypeProbabilities.Vehicle,
		"aerospace":    o.PhenotypeProbabilities.Aerospace,
		"battle_armor": o.PhenotypeProbabilities.BattleArmor,
	}
	for family, p := range probs {
		if p < 0 || p > 100 {
			return hqerr.Validationf("phenotype probability for %s must be between 0 and 100, got %d", family, p).
				WithMeta("family", family)
		}
	}
	return nil
}
