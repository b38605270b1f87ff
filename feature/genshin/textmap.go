package genshin

import (
	"fmt"
	"slices"

	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// hashSources are the documents whose records carry a nameTextMapHash.
var hashSources = []string{"artifacts", "talents", "consts"}

// BuildTextMap copies the text of every referenced name hash from the full
// per-language text maps into loc_json. It produces one text_map_<code>
// artifact per language code plus the merged text_map.
func BuildTextMap(store *document.Store) ([]cooker.Artifact, error) {
	loc, err := object(store, "loc_json")
	if err != nil {
		return nil, err
	}

	var hashes []string
	seen := map[string]bool{}
	for _, name := range hashSources {
		items, err := records(store, name)
		if err != nil {
			return nil, err
		}
		for _, rec := range items {
			h := rec.Get("nameTextMapHash").Text()
			if h == "" || seen[h] {
				continue
			}
			seen[h] = true
			hashes = append(hashes, h)
		}
	}

	merged := loc.Clone()
	var codes []string
	for _, lang := range Languages {
		textMap, err := object(store, "text_map_"+lang.Suffix)
		if err != nil {
			return nil, err
		}

		target := merged.Get(lang.Code)
		if !target.IsObject() {
			target = document.NewObject()
			merged.Set(lang.Code, target)
		}
		if !slices.Contains(codes, lang.Code) {
			codes = append(codes, lang.Code)
		}

		for _, h := range hashes {
			if text := textMap.Get(h); text != nil {
				target.Set(h, text)
			}
		}
	}

	artifacts := make([]cooker.Artifact, 0, len(codes)+1)
	for _, code := range codes {
		artifacts = append(artifacts, cooker.Artifact{
			Name:  fmt.Sprintf("text_map_%s", code),
			Value: merged.Get(code),
		})
	}
	return append(artifacts, cooker.Artifact{Name: "text_map", Value: merged}), nil
}
