// Package document holds the in-memory representation of upstream game data.
//
// Upstream files are arbitrary JSON whose shape, and sometimes whose key names,
// change between game releases. Rather than binding them to Go structs, every
// file is parsed into a generic Node tree:
//
//   - Objects remember their key order, so "the first key that matches" is
//     well defined when field names have to be rediscovered.
//   - Numbers keep their source literal, so 64-bit ids and text-map hashes
//     are written back exactly as they were read.
//   - Accessors are nil-safe, so optional nested fields can be chained
//     (doc.Get("a").Index(0).Get("b")) and checked once at the end.
//
// # Store
//
// The Store maps a logical name (e.g. "talents", "text_map_EN") to its parsed
// document for the duration of one cook. It is filled by the fetch phase and
// only read afterwards.
//
// # Usage
//
//	doc, err := document.Parse(body)
//	store := document.NewStore()
//	store.Put("talents", doc)
//
//	talents, err := store.Get("talents")
//	for _, t := range talents.Items() {
//	    id := t.Get("id").Text()
//	}
package document
