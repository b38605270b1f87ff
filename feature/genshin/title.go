package genshin

import (
	"fmt"

	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// Name is the title name used on the command line.
const Name = "genshin"

// Title returns the Genshin cook: no key resolution, four transforms.
func Title() cooker.Title {
	return cooker.Title{
		Name:    Name,
		Fetches: Fetches(),
		Transforms: []cooker.Transform{
			{Name: "characters", Build: BuildCharacters},
			{Name: "talents", Build: BuildTalents},
			{Name: "consts", Build: BuildConsts},
			{Name: "text_map", Build: BuildTextMap},
		},
	}
}

// records returns the elements of a list document.
func records(store *document.Store, name string) ([]*document.Node, error) {
	doc, err := store.Get(name)
	if err != nil {
		return nil, err
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("%s: expected a list, got %s", name, doc.Kind())
	}
	return doc.Items(), nil
}

// object returns an object document.
func object(store *document.Store, name string) (*document.Node, error) {
	doc, err := store.Get(name)
	if err != nil {
		return nil, err
	}
	if !doc.IsObject() {
		return nil, fmt.Errorf("%s: expected an object, got %s", name, doc.Kind())
	}
	return doc, nil
}

// orEmpty substitutes an empty string for a missing field.
func orEmpty(n *document.Node) *document.Node {
	if n == nil {
		return document.NewString("")
	}
	return n
}
