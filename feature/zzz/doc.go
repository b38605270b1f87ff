// Package zzz defines the Zenless Zone Zero cook.
//
// Zenless tables ship with obfuscated field names that change between game
// versions. Rules anchors each canonical name on a value known to appear in
// the first records (a rarity of 2, the first title id 3500001, a six
// character color, an icon ending in .png). The cooker resolves them in
// order, persists the mapping as zzz/deobfuscations and renames every
// document before the transforms below run.
//
//   - equipment_level, weapon_level, weapon_star: the resolved Data lists
//   - titles: text and colors keyed by TitleID
//   - namecards: icon paths keyed by NamecardID
package zzz
