package genshin

import "json-cooker/core/fetch"

const (
	enkaSpecimen  = "https://raw.githubusercontent.com/pizza-studio/EnkaDBGenerator/main/Sources/EnkaDBFiles/Resources/Specimen/GI"
	animeGameData = "https://gitlab.com/Dimbreath/AnimeGameData/-/raw/master"

	LocJSONURL    = enkaSpecimen + "/loc.json"
	NamecardsURL  = enkaSpecimen + "/namecards.json"
	CharactersURL = enkaSpecimen + "/characters.json"

	ArtifactsURL           = animeGameData + "/ExcelBinOutput/ReliquaryExcelConfigData.json"
	TextMapURL             = animeGameData + "/TextMap/TextMap" + fetch.LangPlaceholder + ".json"
	TalentsURL             = animeGameData + "/ExcelBinOutput/AvatarSkillExcelConfigData.json"
	ConstsURL              = animeGameData + "/ExcelBinOutput/AvatarTalentExcelConfigData.json"
	RewardsURL             = animeGameData + "/ExcelBinOutput/RewardExcelConfigData.json"
	FetterCharacterCardURL = animeGameData + "/ExcelBinOutput/FetterCharacterCardExcelConfigData.json"
)

// Languages maps text map file suffixes to output language codes. Thai is
// split over two upstream files that merge into one code.
var Languages = []fetch.Language{
	{Suffix: "CHS", Code: "zh-cn"},
	{Suffix: "CHT", Code: "zh-tw"},
	{Suffix: "DE", Code: "de"},
	{Suffix: "EN", Code: "en"},
	{Suffix: "ES", Code: "es"},
	{Suffix: "FR", Code: "fr"},
	{Suffix: "ID", Code: "id"},
	{Suffix: "IT", Code: "it"},
	{Suffix: "JP", Code: "ja"},
	{Suffix: "KR", Code: "ko"},
	{Suffix: "PT", Code: "pt"},
	{Suffix: "RU", Code: "ru"},
	{Suffix: "TH_1", Code: "th"},
	{Suffix: "TH_2", Code: "th"},
	{Suffix: "TR", Code: "tr"},
	{Suffix: "VI", Code: "vi"},
}

// MaxFetterLevel is the friendship level whose card rewards the namecard.
const MaxFetterLevel = 10

// Fetches returns the documents needed to cook Genshin data.
func Fetches() []fetch.Descriptor {
	ds := []fetch.Descriptor{
		{URL: LocJSONURL, Name: "loc_json"},
		{URL: ArtifactsURL, Name: "artifacts"},
		{URL: TalentsURL, Name: "talents"},
		{URL: ConstsURL, Name: "consts"},
		{URL: RewardsURL, Name: "rewards"},
		{URL: FetterCharacterCardURL, Name: "fetter_character_card"},
		{URL: NamecardsURL, Name: "namecards"},
		{URL: CharactersURL, Name: "characters"},
	}
	return append(ds, fetch.PerLanguage(TextMapURL, "text_map", Languages)...)
}
