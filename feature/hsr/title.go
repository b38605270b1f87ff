package hsr

import (
	"fmt"

	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// Name is the title name used on the command line.
const Name = "hsr"

// Title returns the Honkai: Star Rail cook.
func Title() cooker.Title {
	return cooker.Title{
		Name:    Name,
		Fetches: Fetches(),
		Transforms: []cooker.Transform{
			{Name: "skill_tree", Build: BuildSkillTree},
			{Name: "property_config", Build: BuildPropertyConfig},
			{Name: "relic_set", Build: BuildRelicSet},
			{Name: "hsr", Build: BuildLocalization},
		},
	}
}

// flatRecords returns the records of an excel table that is either a list or
// an object keyed by id.
func flatRecords(store *document.Store, name string) ([]*document.Node, error) {
	doc, err := store.Get(name)
	if err != nil {
		return nil, err
	}
	switch doc.Kind() {
	case document.Array:
		return doc.Items(), nil
	case document.Object:
		out := make([]*document.Node, 0, doc.Len())
		doc.Each(func(_ string, v *document.Node) bool {
			out = append(out, v)
			return true
		})
		return out, nil
	}
	return nil, fmt.Errorf("%s: expected a list or an object, got %s", name, doc.Kind())
}

func orDefault(n, def *document.Node) *document.Node {
	if n == nil || n.IsNull() {
		return def
	}
	return n
}

func emptyString() *document.Node { return document.NewString("") }

func zero() *document.Node { return document.NewInt(0) }
