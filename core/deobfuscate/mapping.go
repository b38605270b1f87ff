package deobfuscate

import "json-cooker/core/document"

// Pair is one resolved canonical name and the raw key it was found under.
type Pair struct {
	Canonical string `json:"canonical" yaml:"canonical"`
	Raw       string `json:"raw" yaml:"raw"`
}

// Mapping records canonical key names and the raw (obfuscated) names they
// resolved to, in resolution order.
type Mapping struct {
	pairs   []Pair
	byName  map[string]int
	claimed map[string]string
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{byName: map[string]int{}, claimed: map[string]string{}}
}

// Set records that canonical currently lives under raw.
func (m *Mapping) Set(canonical, raw string) {
	if i, ok := m.byName[canonical]; ok {
		delete(m.claimed, m.pairs[i].Raw)
		m.pairs[i].Raw = raw
	} else {
		m.byName[canonical] = len(m.pairs)
		m.pairs = append(m.pairs, Pair{Canonical: canonical, Raw: raw})
	}
	m.claimed[raw] = canonical
}

// Raw returns the raw key resolved for canonical.
func (m *Mapping) Raw(canonical string) (string, bool) {
	i, ok := m.byName[canonical]
	if !ok {
		return "", false
	}
	return m.pairs[i].Raw, true
}

// ClaimedBy returns the canonical name already resolved to raw, if any.
func (m *Mapping) ClaimedBy(raw string) (string, bool) {
	c, ok := m.claimed[raw]
	return c, ok
}

func (m *Mapping) Len() int { return len(m.pairs) }

// Pairs returns the resolved pairs in resolution order.
func (m *Mapping) Pairs() []Pair {
	return append([]Pair(nil), m.pairs...)
}

// Renames returns the raw -> canonical table used to rewrite documents.
func (m *Mapping) Renames() map[string]string {
	out := make(map[string]string, len(m.pairs))
	for _, p := range m.pairs {
		out[p.Raw] = p.Canonical
	}
	return out
}

// MarshalJSON encodes the mapping as {"Canonical": "raw", ...} in resolution order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	obj := document.NewObject()
	for _, p := range m.pairs {
		obj.Set(p.Canonical, document.NewString(p.Raw))
	}
	return obj.MarshalJSON()
}
