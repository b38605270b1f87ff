package genshin

import (
	"json-cooker/core/cooker"
	"json-cooker/core/document"
)

// BuildCharacters attaches each character's namecard icon, found through
// the max-level friendship card reward, as NamecardIcon. Cards, rewards,
// namecards or characters that do not join are skipped.
func BuildCharacters(store *document.Store) ([]cooker.Artifact, error) {
	rewards, err := records(store, "rewards")
	if err != nil {
		return nil, err
	}
	cards, err := records(store, "fetter_character_card")
	if err != nil {
		return nil, err
	}
	namecards, err := object(store, "namecards")
	if err != nil {
		return nil, err
	}
	source, err := object(store, "characters")
	if err != nil {
		return nil, err
	}

	// rewardId -> first item of that reward
	firstItem := map[string]string{}
	for _, r := range rewards {
		id := r.Get("rewardId").Text()
		if id == "" {
			continue
		}
		if _, ok := firstItem[id]; ok {
			continue
		}
		item := r.Get("rewardItemList").Index(0).Get("itemId").Text()
		if item != "" {
			firstItem[id] = item
		}
	}

	characters := source.Clone()
	for _, card := range cards {
		if level, ok := card.Get("fetterLevel").Int(); !ok || level != MaxFetterLevel {
			continue
		}
		item, ok := firstItem[card.Get("rewardId").Text()]
		if !ok {
			continue
		}
		icon := namecards.Get(item).Get("icon")
		if icon == nil {
			continue
		}
		character := characters.Get(card.Get("avatarId").Text())
		if !character.IsObject() {
			continue
		}
		character.Set("NamecardIcon", icon)
	}

	return []cooker.Artifact{{Name: "characters", Value: characters}}, nil
}
