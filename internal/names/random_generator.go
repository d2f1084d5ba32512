package names

import (
	"fmt"
	"sync"

	"github.com/dither001/mekhq/internal/dice"
	hqerr "github.com/dither001/mekhq/internal/errors"
)

// DefaultPercentFemale is the stock chance a recruit is female
const DefaultPercentFemale = 50

// RandomGenerator draws names from a corpus with its own random source
type RandomGenerator struct {
	mu            sync.Mutex
	roller        dice.Roller
	corpus        *Corpus
	percentFemale int
	chosenSet     string
}

// Config holds options for a RandomGenerator
type Config struct {
	Roller        dice.Roller // Optional, crypto-seeded when nil
	Corpus        *Corpus     // Optional, embedded corpus when nil
	PercentFemale *int        // Optional, DefaultPercentFemale when nil
	Set           string      // Optional, corpus default when empty
}

// NewRandomGenerator creates a generator. A nil config yields all defaults.
func NewRandomGenerator(cfg *Config) *RandomGenerator {
	if cfg == nil {
		cfg = &Config{}
	}

	g := &RandomGenerator{
		roller:        cfg.Roller,
		corpus:        cfg.Corpus,
		percentFemale: DefaultPercentFemale,
		chosenSet:     cfg.Set,
	}
	if g.roller == nil {
		g.roller = dice.NewRandomRoller()
	}
	if g.corpus == nil {
		g.corpus = DefaultCorpus()
	}
	if cfg.PercentFemale != nil {
		g.percentFemale = clampPercent(*cfg.PercentFemale)
	}
	if g.chosenSet == "" {
		g.chosenSet = g.corpus.Default
	}
	return g
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// PercentFemale is the chance, out of 100, that IsFemale returns true
func (g *RandomGenerator) PercentFemale() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.percentFemale
}

// SetPercentFemale sets the female chance, clamped to [0, 100]
func (g *RandomGenerator) SetPercentFemale(p int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.percentFemale = clampPercent(p)
}

// ChosenSet is the corpus set names are drawn from
func (g *RandomGenerator) ChosenSet() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.chosenSet
}

// SetChosenSet selects the corpus set names are drawn from
func (g *RandomGenerator) SetChosenSet(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.corpus.Sets[key]; !ok {
		return hqerr.InvalidArgumentf("name set '%s' not found", key).
			WithMeta("set", key)
	}
	g.chosenSet = key
	return nil
}

// IsFemale implements Source
func (g *RandomGenerator) IsFemale() (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isFemale()
}

// Generate implements Source
func (g *RandomGenerator) Generate(female bool) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generate(female)
}

// DrawPair implements PairSource
func (g *RandomGenerator) DrawPair() (bool, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	female, err := g.isFemale()
	if err != nil {
		return false, "", err
	}
	name, err := g.generate(female)
	if err != nil {
		return false, "", err
	}
	return female, name, nil
}

func (g *RandomGenerator) isFemale() (bool, error) {
	female, err := dice.RollProbability(g.roller, g.percentFemale)
	if err != nil {
		return false, fmt.Errorf("failed to roll gender: %w", err)
	}
	return female, nil
}

func (g *RandomGenerator) generate(female bool) (string, error) {
	set := g.corpus.Set(g.chosenSet)

	given := set.Male
	if female {
		given = set.Female
	}

	first, err := g.pick(given)
	if err != nil {
		return "", err
	}
	last, err := g.pick(set.Surnames)
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}

func (g *RandomGenerator) pick(pool []string) (string, error) {
	i, err := g.roller.RandomInt(len(pool))
	if err != nil {
		return "", fmt.Errorf("failed to roll name: %w", err)
	}
	return pool[i], nil
}
