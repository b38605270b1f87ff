package fetch

import "strings"

// Descriptor names one remote document: where to get it and the logical
// name it is stored under.
type Descriptor struct {
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name" yaml:"name"`
}

// Language pairs an upstream file suffix (e.g. "CHS") with the language code
// used in output artifacts (e.g. "zh-cn").
type Language struct {
	Suffix string `json:"suffix" yaml:"suffix"`
	Code   string `json:"code" yaml:"code"`
}

// LangPlaceholder is replaced by a language suffix in templated URLs.
const LangPlaceholder = "{lang}"

// PerLanguage expands a templated URL into one descriptor per language.
// Each descriptor is named prefix + "_" + suffix.
func PerLanguage(template, prefix string, langs []Language) []Descriptor {
	out := make([]Descriptor, 0, len(langs))
	for _, l := range langs {
		out = append(out, Descriptor{
			URL:  strings.ReplaceAll(template, LangPlaceholder, l.Suffix),
			Name: prefix + "_" + l.Suffix,
		})
	}
	return out
}
