// Package deobfuscate recovers stable field names from documents whose keys
// are renamed unpredictably between game releases.
//
// Each canonical name is located by a Rule that scans a known record for a
// sentinel value (a known rarity number, a list-valued field, a string of a
// known length, ...) and returns the key that currently holds it. Rules run in
// declared order and later rules may address documents through names
// resolved earlier:
//
//	rules := []deobfuscate.Rule{
//	    deobfuscate.FirstKey("Data", "equipment_level"),
//	    deobfuscate.KeyWhere("Rarity", "equipment_level", deobfuscate.Equals(2),
//	        deobfuscate.Resolved("Data"), deobfuscate.At(0)),
//	}
//	mapping, err := deobfuscate.Resolve(store, rules)
//	if err == nil {
//	    deobfuscate.Apply(store, mapping)
//	}
//
// # Tie-break
//
// When several keys match a sentinel the first one in document order wins,
// with one refinement: keys already resolved for another canonical name are
// skipped before the scan picks a winner. Two canonical names sharing a
// sentinel value in the same record therefore resolve to distinct keys, in
// document order, instead of both landing on the first match.
//
// # Failure
//
// A rule that matches nothing yields a *ResolutionError wrapping ErrNotFound,
// naming the canonical key and the document searched. Resolution carries on
// with the remaining rules, so names from documents that did download are
// still recovered; Unresolved tells a caller which of the names it needs are
// missing.
package deobfuscate
