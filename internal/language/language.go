// Package language holds the closed set of target languages offered by the
// translator and maps each one to its BCP 47 tag.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language is a target language, identified by its English display name.
// The name is what gets embedded in the translation prompt.
type Language string

const (
	Hindi     Language = "Hindi"
	Bengali   Language = "Bengali"
	Telugu    Language = "Telugu"
	Marathi   Language = "Marathi"
	Tamil     Language = "Tamil"
	Urdu      Language = "Urdu"
	Gujarati  Language = "Gujarati"
	Kannada   Language = "Kannada"
	Odia      Language = "Odia"
	Malayalam Language = "Malayalam"
	Punjabi   Language = "Punjabi"
	Assamese  Language = "Assamese"
)

// Default is the language preselected in the form.
const Default = Hindi

var all = []Language{
	Hindi, Bengali, Telugu, Marathi, Tamil, Urdu,
	Gujarati, Kannada, Odia, Malayalam, Punjabi, Assamese,
}

var tags = map[Language]language.Tag{
	Hindi:     language.Hindi,
	Bengali:   language.Bengali,
	Telugu:    language.Telugu,
	Marathi:   language.Marathi,
	Tamil:     language.Tamil,
	Urdu:      language.Urdu,
	Gujarati:  language.Gujarati,
	Kannada:   language.Kannada,
	Odia:      language.MustParse("or"),
	Malayalam: language.Malayalam,
	Punjabi:   language.Punjabi,
	Assamese:  language.MustParse("as"),
}

var fold = cases.Fold()

// All returns the supported languages in display order.
func All() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// String returns the display name.
func (l Language) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag, or language.Und for an unknown value.
func (l Language) Tag() language.Tag {
	if t, ok := tags[l]; ok {
		return t
	}
	return language.Und
}

// Valid reports whether l belongs to the supported set.
func (l Language) Valid() bool {
	_, ok := tags[l]
	return ok
}

// Parse resolves a display name (case-insensitive) or a BCP 47 code such as
// "ta" or "pa-IN" to a supported language.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty language")
	}

	folded := fold.String(s)
	for _, l := range all {
		if fold.String(string(l)) == folded {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	base, _ := tag.Base()
	for _, l := range all {
		if b, _ := tags[l].Base(); b == base {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q", s)
}
