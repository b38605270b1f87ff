package zzz

import (
	"fmt"
	"strings"

	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// Name is the title name used on the command line.
const Name = "zzz"

// levelKeys are resolved from equipment_level and shared by weapon_level.
var levelKeys = []string{"Data", "Rarity", "Level"}

// Title returns the Zenless Zone Zero cook. Transforms read canonical names
// only; the resolver has renamed the fetched documents before they run.
func Title() cooker.Title {
	return cooker.Title{
		Name:    Name,
		Fetches: Fetches(),
		Rules:   Rules(),
		Transforms: []cooker.Transform{
			{Name: "equipment_level", Build: repersist("equipment_level"), Requires: levelKeys},
			{Name: "weapon_level", Build: repersist("weapon_level"), Requires: levelKeys},
			{Name: "weapon_star", Build: repersist("weapon_star"), Requires: []string{"Data", "Star", "StarAttrs"}},
			{Name: "titles", Build: BuildTitles, Requires: []string{"Data", "TitleID", "TitleText", "ColorA", "ColorB"}},
			{Name: "namecards", Build: BuildNamecards, Requires: []string{"Data", "NamecardID", "NamecardIcon"}},
		},
	}
}

// dataList returns the Data list of a resolved table.
func dataList(store *document.Store, name string) (*document.Node, error) {
	doc, err := store.Get(name)
	if err != nil {
		return nil, err
	}
	list := doc.Get("Data")
	if !list.IsArray() {
		return nil, fmt.Errorf("%s: Data is %s, not a list", name, list.Kind())
	}
	return list, nil
}

// repersist writes the resolved Data list of a table as zzz/<name>.
func repersist(name string) cooker.BuildFunc {
	return func(store *document.Store) ([]cooker.Artifact, error) {
		list, err := dataList(store, name)
		if err != nil {
			return nil, err
		}
		return []cooker.Artifact{{Name: Name + "/" + name, Value: list}}, nil
	}
}

// BuildTitles keys titles by id: {"<TitleID>": {text, colorA, colorB}}.
func BuildTitles(store *document.Store) ([]cooker.Artifact, error) {
	list, err := dataList(store, "titles")
	if err != nil {
		return nil, err
	}

	result := document.NewObject()
	for _, rec := range list.Items() {
		id := rec.Get("TitleID").Text()
		if id == "" {
			continue
		}
		result.Set(id, document.NewObject().
			Set("text", stringField(rec, "TitleText")).
			Set("colorA", stringField(rec, "ColorA")).
			Set("colorB", stringField(rec, "ColorB")))
	}
	return []cooker.Artifact{{Name: Name + "/titles", Value: result}}, nil
}

// BuildNamecards keys namecards by id: {"<NamecardID>": {icon}}, where icon
// is the file name of the upstream path under NamecardIconRoot.
func BuildNamecards(store *document.Store) ([]cooker.Artifact, error) {
	list, err := dataList(store, "namecards")
	if err != nil {
		return nil, err
	}

	result := document.NewObject()
	for _, rec := range list.Items() {
		id := rec.Get("NamecardID").Text()
		if id == "" {
			continue
		}
		result.Set(id, document.NewObject().
			Set("icon", document.NewString(NamecardIcon(rec.Get("NamecardIcon").Text()))))
	}
	return []cooker.Artifact{{Name: Name + "/namecards", Value: result}}, nil
}

// NamecardIcon maps an upstream icon path to its output path. An empty path
// stays empty.
func NamecardIcon(upstream string) string {
	if upstream == "" {
		return ""
	}
	return NamecardIconRoot + upstream[strings.LastIndex(upstream, "/")+1:]
}

func stringField(rec *document.Node, key string) *document.Node {
	if v := rec.Get(key); v.Kind() == document.String {
		return v
	}
	return document.NewString("")
}
