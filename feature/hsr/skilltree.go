package hsr

import (
	"fmt"
	"strings"

	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// BuildSkillTree flattens the skill tree to the first level of every point.
//
// Upstream ships either {"<PointID>": {"1": record, "2": ...}} or a flat
// list of records carrying PointID and Level.
func BuildSkillTree(store *document.Store) ([]cooker.Artifact, error) {
	doc, err := store.Get("skill_tree")
	if err != nil {
		return nil, err
	}

	result := document.NewObject()
	switch doc.Kind() {
	case document.Object:
		doc.Each(func(pointID string, levels *document.Node) bool {
			if rec := levels.Get("1"); rec.IsObject() {
				result.Set(pointID, skillPoint(rec))
			}
			return true
		})
	case document.Array:
		for _, rec := range doc.Items() {
			if level, ok := rec.Get("Level").Int(); ok && level != 1 {
				continue
			}
			pointID := rec.Get("PointID").Text()
			if pointID == "" || result.Has(pointID) {
				continue
			}
			result.Set(pointID, skillPoint(rec))
		}
	default:
		return nil, fmt.Errorf("skill_tree: expected a list or an object, got %s", doc.Kind())
	}

	return []cooker.Artifact{{Name: "hsr/skill_tree", Value: result}}, nil
}

func skillPoint(rec *document.Node) *document.Node {
	avatarID, _ := rec.Get("AvatarID").Int()
	icon, _ := rec.Get("IconPath").Str()

	point := document.NewObject().
		Set("anchor", orDefault(rec.Get("Anchor"), emptyString())).
		Set("icon", document.NewString(NormalizeIcon(icon, avatarID))).
		Set("pointType", orDefault(rec.Get("PointType"), zero())).
		Set("maxLevel", orDefault(rec.Get("MaxLevel"), zero()))

	if stat := rec.Get("StatusAddList").Index(0); stat.IsObject() {
		point.Set("addStatus", document.NewObject().
			Set("type", orDefault(stat.Get("PropertyType"), emptyString())).
			Set("value", orDefault(stat.Get("Value").Get("Value"), zero())))
	}
	return point
}

// NormalizeIcon removes the character id directory from a skill icon path,
// and the Avatar/ root. The even trailblazer id also loses the directory of
// its odd counterpart, which the two share.
func NormalizeIcon(icon string, avatarID int64) string {
	if avatarID > 0 {
		icon = strings.ReplaceAll(icon, fmt.Sprintf("/%d/", avatarID), "/")
		if isPairedTrailblazer(avatarID) {
			icon = strings.ReplaceAll(icon, fmt.Sprintf("/%d/", avatarID-1), "/")
		}
	}
	return strings.TrimPrefix(icon, "Avatar/")
}

func isPairedTrailblazer(id int64) bool {
	return id >= trailblazerMin && id <= trailblazerMax && id%2 == 0
}
