// Package formats renders text for output channels: capitalization state and
// language-specific indefinite articles.
package formats

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

var ErrFormatNotFound = errors.New("format not found")

// Format is the per-language configuration consumed by a Formatter.
type Format struct {
	Name     string
	Language language.Tag
	Articles IndefiniteArticles
}

var English = &Format{
	Name:     "english",
	Language: language.English,
	Articles: IndefiniteArticles{
		ConsonantForm: "a",
		VowelForm:     "an",
		Vowels:        "aeiou",
		VowelPrefixes: []string{
			"hour", "honest", "honor", "honour", "heir", "herb",
		},
		ConsonantPrefixes: []string{
			"unic", "unif", "unio", "uniq", "unis", "unit", "univ",
			"use", "usu", "uti", "ubiq", "ura", "ure", "uro",
			"eu", "ewe",
		},
		ConsonantWords: []string{
			"one", "ones", "once", "oneself",
		},
		NumberVowelPrefixes: []string{
			"8", "11", "18",
		},
	},
}

// Registry maps format names to formats.
type Registry struct {
	formats map[string]*Format
	names   []string
}

func NewRegistry(formats ...*Format) *Registry {
	r := &Registry{
		formats: make(map[string]*Format),
	}
	for _, format := range formats {
		r.Add(format)
	}
	return r
}

// Add registers format, replacing any format of the same name.
func (r *Registry) Add(format *Format) {
	if _, ok := r.formats[format.Name]; !ok {
		r.names = append(r.names, format.Name)
	}
	r.formats[format.Name] = format
}

func (r *Registry) Get(name string) (*Format, error) {
	format, ok := r.formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatNotFound, name)
	}
	return format, nil
}

func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}
