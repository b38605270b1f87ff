package hsr

import "json-cooker/core/fetch"

const (
	starRailData = "https://raw.githubusercontent.com/Dimbreath/StarRailData/master"
	enkaAPIDocs  = "https://raw.githubusercontent.com/EnkaNetwork/API-docs/master"
	enkaSpecimen = "https://raw.githubusercontent.com/pizza-studio/EnkaDBGenerator/main/Sources/EnkaDBFiles/Resources/Specimen/HSR"

	SkillTreeURL      = starRailData + "/ExcelOutput/AvatarSkillTreeConfig.json"
	PropertyConfigURL = starRailData + "/ExcelOutput/AvatarPropertyConfig.json"
	RelicSetURL       = starRailData + "/ExcelOutput/RelicSetConfig.json"
	LocOldURL         = enkaAPIDocs + "/store/hsr/hsr.json"
	LocNewURL         = enkaSpecimen + "/hsr.json"
)

// Trailblazer ids come in male/female pairs: the odd id and the next even one.
const (
	trailblazerMin = 8001
	trailblazerMax = 8999
)

// Fetches returns the documents needed to cook Star Rail data.
func Fetches() []fetch.Descriptor {
	return []fetch.Descriptor{
		{URL: SkillTreeURL, Name: "skill_tree"},
		{URL: PropertyConfigURL, Name: "property_config"},
		{URL: RelicSetURL, Name: "relic_set"},
		{URL: LocOldURL, Name: "loc_old"},
		{URL: LocNewURL, Name: "loc_new"},
	}
}
