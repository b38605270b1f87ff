package hsr

import (
	"fmt"

	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// BuildLocalization overlays the new localization store on the old one, per
// language. New entries win; entries only in the old store survive.
func BuildLocalization(store *document.Store) ([]cooker.Artifact, error) {
	older, err := store.Get("loc_old")
	if err != nil {
		return nil, err
	}
	newer, err := store.Get("loc_new")
	if err != nil {
		return nil, err
	}
	merged, err := MergeLocalization(older, newer)
	if err != nil {
		return nil, err
	}
	return []cooker.Artifact{{Name: "hsr/hsr", Value: merged}}, nil
}

// MergeLocalization returns {lang: old[lang] overlaid by new[lang]}. Neither
// input is modified.
func MergeLocalization(older, newer *document.Node) (*document.Node, error) {
	if !older.IsObject() {
		return nil, fmt.Errorf("loc_old: expected an object, got %s", older.Kind())
	}
	if !newer.IsObject() {
		return nil, fmt.Errorf("loc_new: expected an object, got %s", newer.Kind())
	}

	merged := older.Clone()
	newer.Each(func(lang string, entries *document.Node) bool {
		target := merged.Get(lang)
		if !target.IsObject() || !entries.IsObject() {
			merged.Set(lang, entries.Clone())
			return true
		}
		entries.Each(func(key string, v *document.Node) bool {
			target.Set(key, v.Clone())
			return true
		})
		return true
	})
	return merged, nil
}
