package cooker

import "json-cooker/core/fetch"

// RuleSummary describes one key resolution rule.
type RuleSummary struct {
	Name     string `json:"name" yaml:"name"`
	Document string `json:"document" yaml:"document"`
	Match    string `json:"match,omitempty" yaml:"match,omitempty"`
}

// TitleSummary is a serializable view of a Title.
type TitleSummary struct {
	Name       string             `json:"name" yaml:"name"`
	Fetches    []fetch.Descriptor `json:"fetches" yaml:"fetches"`
	Rules      []RuleSummary      `json:"rules,omitempty" yaml:"rules,omitempty"`
	Transforms []string           `json:"transforms" yaml:"transforms"`
}

// Summary returns the inspectable parts of t.
func (t Title) Summary() TitleSummary {
	s := TitleSummary{
		Name:       t.Name,
		Fetches:    t.Fetches,
		Transforms: make([]string, 0, len(t.Transforms)),
	}
	for _, r := range t.Rules {
		s.Rules = append(s.Rules, RuleSummary{Name: r.Name, Document: r.Document, Match: r.Describe})
	}
	for _, tr := range t.Transforms {
		s.Transforms = append(s.Transforms, tr.Name)
	}
	return s
}
