package genshin

import (
	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// BuildTalents re-keys skills by id: {"<id>": {nameTextMapHash, icon}}.
func BuildTalents(store *document.Store) ([]cooker.Artifact, error) {
	return rekey(store, "talents", "id", "skillIcon")
}

// BuildConsts re-keys constellations by talent id: {"<talentId>": {nameTextMapHash, icon}}.
func BuildConsts(store *document.Store) ([]cooker.Artifact, error) {
	return rekey(store, "consts", "talentId", "icon")
}

func rekey(store *document.Store, name, idField, iconField string) ([]cooker.Artifact, error) {
	items, err := records(store, name)
	if err != nil {
		return nil, err
	}

	result := document.NewObject()
	for _, rec := range items {
		id := rec.Get(idField)
		if id.Kind() != document.Number && id.Kind() != document.String {
			continue
		}
		result.Set(id.Text(), document.NewObject().
			Set("nameTextMapHash", orEmpty(rec.Get("nameTextMapHash"))).
			Set("icon", orEmpty(rec.Get(iconField))))
	}
	return []cooker.Artifact{{Name: name, Value: result}}, nil
}
