package formats

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/weave/configs"
	"github.com/reusee/weave/logs"
	"github.com/reusee/weave/weaveconfigs"
	"golang.org/x/text/language"
)

type Module struct {
	dscope.Module
	Configs weaveconfigs.Module
}

// FormatConfig is a format entry of the formats list in weave.cue.
type FormatConfig struct {
	Name                string   `json:"name"`
	Language            string   `json:"language"`
	Consonant           string   `json:"consonant"`
	Vowel               string   `json:"vowel"`
	Vowels              string   `json:"vowels"`
	VowelPrefixes       []string `json:"vowel_prefixes"`
	ConsonantPrefixes   []string `json:"consonant_prefixes"`
	ConsonantWords      []string `json:"consonant_words"`
	NumberVowelPrefixes []string `json:"number_vowel_prefixes"`
}

func (c FormatConfig) Format() (*Format, error) {
	tag := language.Und
	if c.Language != "" {
		var err error
		tag, err = language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", c.Name, err)
		}
	}
	vowels := c.Vowels
	if vowels == "" {
		vowels = English.Articles.Vowels
	}
	return &Format{
		Name:     c.Name,
		Language: tag,
		Articles: IndefiniteArticles{
			ConsonantForm:       c.Consonant,
			VowelForm:           c.Vowel,
			Vowels:              vowels,
			VowelPrefixes:       c.VowelPrefixes,
			ConsonantPrefixes:   c.ConsonantPrefixes,
			ConsonantWords:      c.ConsonantWords,
			NumberVowelPrefixes: c.NumberVowelPrefixes,
		},
	}, nil
}

// Registry holds the built-in formats plus those declared in config files.
// A config format named like a built-in one replaces it; earlier config roots win.
func (Module) Registry(
	loader configs.Loader,
	logger logs.Logger,
) *Registry {
	registry := NewRegistry(English)
	var roots [][]FormatConfig
	for list, err := range configs.All[[]FormatConfig](loader, "formats") {
		if err != nil {
			panic(err)
		}
		roots = append(roots, list)
	}
	for i := len(roots) - 1; i >= 0; i-- {
		for _, config := range roots[i] {
			format, err := config.Format()
			if err != nil {
				panic(err)
			}
			registry.Add(format)
			logger.Debug("format",
				"name", format.Name,
				"language", format.Language.String(),
			)
		}
	}
	paths, err := loader.Paths()
	if err != nil {
		panic(err)
	}
	logger.Info("formats",
		"names", registry.Names(),
		"configs", paths,
	)
	return registry
}
