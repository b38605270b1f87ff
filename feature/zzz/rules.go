package zzz

import (
	d "json-cooker/core/deobfuscate"
)

// Rules recovers the obfuscated field names, in dependency order. Every table
// wraps its records in one top-level list field, resolved first as Data.
func Rules() []d.Rule {
	data := d.Resolved("Data")
	return []d.Rule{
		d.FirstKey("Data", "equipment_level"),
		d.KeyWhere("Rarity", "equipment_level", d.Equals(sentinelRarity), data, d.At(0)),
		d.KeyWhere("Level", "equipment_level", d.Equals(sentinelLevel), data, d.At(1)),
		d.KeyWhere("Star", "weapon_star", d.Equals(sentinelStar), data, d.At(1)),
		d.KeyWhere("StarAttrs", "weapon_star", d.IsList(), data, d.At(0)),
		d.KeyWhere("TitleID", "titles", d.Equals(sentinelTitleID), data, d.At(0)),
		d.KeyWhere("TitleText", "titles", d.HasPrefix(titleTextPrefix), data, d.At(0)),
		d.KeyWhere("ColorA", "titles", d.StrLen(colorALength), data, d.At(0)),
		d.KeyWhere("ColorB", "titles", d.StrLen(colorBLength), data, d.At(0)),
		d.KeyWhere("NamecardID", "namecards", d.Equals(sentinelNamecardID), data, d.At(0)),
		d.KeyWhere("NamecardIcon", "namecards", d.HasSuffix(namecardSuffix), data, d.At(0)),
	}
}
