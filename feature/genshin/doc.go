// Package genshin defines the Genshin Impact cook.
//
// Upstream keys are stable, so the title has no key resolution rules. Its
// transforms produce:
//
//   - text_map and text_map_<code>: loc.json enriched with the names of
//     artifacts, skills and constellations from the full text maps
//   - talents and consts: skill and constellation tables keyed by id
//   - characters: the character store with each NamecardIcon attached
package genshin
