package names

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	hqerr "github.com/dither001/mekhq/internal/errors"
)

//go:embed data/names.yaml
var defaultCorpusYAML []byte

// NameSet is one culture's pool of names
type NameSet struct {
	Male     []string `yaml:"male"`
	Female   []string `yaml:"female"`
	Surnames []string `yaml:"surnames"`
}

// Corpus is a collection of name sets
type Corpus struct {
	Default string              `yaml:"default"`
	Sets    map[string]*NameSet `yaml:"sets"`
}

// DefaultCorpus returns the embedded name corpus
func DefaultCorpus() *Corpus {
	c, err := ParseCorpus(defaultCorpusYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded name corpus is invalid: %v", err))
	}
	return c
}

// LoadCorpus reads a corpus file
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name corpus: %w", err)
	}
	return ParseCorpus(data)
}

// ParseCorpus decodes and validates a YAML corpus
func ParseCorpus(data []byte) (*Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeInvalidArgument, "parsing name corpus")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the default set exists and every set can name both genders
func (c *Corpus) Validate() error {
	if len(c.Sets) == 0 {
		return hqerr.Validation("name corpus has no sets")
	}
	if _, ok := c.Sets[c.Default]; !ok {
		return hqerr.Validationf("default name set '%s' not found", c.Default)
	}
	for key, set := range c.Sets {
		if set == nil || len(set.Male) == 0 || len(set.Female) == 0 || len(set.Surnames) == 0 {
			return hqerr.Validationf("name set '%s' needs male, female and surname entries", key).
				WithMeta("set", key)
		}
	}
	return nil
}

// Set returns the named set, or the default set when key is unknown
func (c *Corpus) Set(key string) *NameSet {
	if set, ok := c.Sets[key]; ok {
		return set
	}
	return c.Sets[c.Default]
}
