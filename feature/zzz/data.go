package zzz

import "json-cooker/core/fetch"

const (
	zenlessData = "https://git.mero.moe/dimbreath/ZenlessData/raw/branch/master/FileCfg"

	EquipmentLevelURL = zenlessData + "/EquipmentLevelTemplateTb.json"
	WeaponLevelURL    = zenlessData + "/WeaponLevelTemplateTb.json"
	WeaponStarURL     = zenlessData + "/WeaponStarTemplateTb.json"
	TitlesURL         = zenlessData + "/TitleConfigTemplateTb.json"
	NamecardsURL      = zenlessData + "/ProfileCardTemplateTb.json"
)

// Sentinel values known to sit under specific fields of the first records.
const (
	sentinelRarity     = 2
	sentinelLevel      = 1
	sentinelStar       = 1
	sentinelTitleID    = 3500001
	sentinelNamecardID = 3300001

	titleTextPrefix = "Title_"
	colorALength    = 6
	colorBLength    = 8
	namecardSuffix  = ".png"

	// NamecardIconRoot prefixes the file name of every namecard icon.
	NamecardIconRoot = "UI/ProfileCard/"
)

// Fetches returns the documents needed to cook Zenless Zone Zero data.
func Fetches() []fetch.Descriptor {
	return []fetch.Descriptor{
		{URL: EquipmentLevelURL, Name: "equipment_level"},
		{URL: WeaponLevelURL, Name: "weapon_level"},
		{URL: WeaponStarURL, Name: "weapon_star"},
		{URL: TitlesURL, Name: "titles"},
		{URL: NamecardsURL, Name: "namecards"},
	}
}
