package hsr

import (
	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// BuildPropertyConfig keys stat properties by type: {"<PropertyType>": {iconPath, name}}.
func BuildPropertyConfig(store *document.Store) ([]cooker.Artifact, error) {
	items, err := flatRecords(store, "property_config")
	if err != nil {
		return nil, err
	}

	result := document.NewObject()
	for _, rec := range items {
		key := rec.Get("PropertyType").Text()
		if key == "" {
			continue
		}
		result.Set(key, document.NewObject().
			Set("iconPath", orDefault(rec.Get("IconPath"), emptyString())).
			Set("name", orDefault(rec.Get("PropertyName"), emptyString())))
	}
	return []cooker.Artifact{{Name: "hsr/property_config", Value: result}}, nil
}

// BuildRelicSet keys relic sets by id: {"<SetID>": {icon, setNum, isPlanarSuit}}.
func BuildRelicSet(store *document.Store) ([]cooker.Artifact, error) {
	items, err := flatRecords(store, "relic_set")
	if err != nil {
		return nil, err
	}

	result := document.NewObject()
	for _, rec := range items {
		key := rec.Get("SetID").Text()
		if key == "" {
			continue
		}
		setNum := rec.Get("SetSkillList")
		if !setNum.IsArray() {
			setNum = document.NewArray()
		}
		result.Set(key, document.NewObject().
			Set("icon", orDefault(rec.Get("SetIconPath"), emptyString())).
			Set("setNum", setNum).
			Set("isPlanarSuit", orDefault(rec.Get("IsPlanarSuit"), document.NewBool(false))))
	}
	return []cooker.Artifact{{Name: "hsr/relic_set", Value: result}}, nil
}
