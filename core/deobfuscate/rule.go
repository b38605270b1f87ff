package deobfuscate

import (
	"fmt"
	"strconv"
	"strings"

	"json-cooker/core/document"
)

// DiscoverFunc finds the raw key for one canonical name. It may read names
// resolved by earlier rules through m.
type DiscoverFunc func(store *document.Store, m *Mapping) (string, error)

// Rule resolves one canonical key name.
type Rule struct {
	// Name is the canonical key name.
	Name string
	// Document is the logical name of the document searched.
	Document string
	// Describe is a human readable form of the rule, used in logs and listings.
	Describe string
	// Discover returns the raw key currently holding Name.
	Discover DiscoverFunc
}

type stepKind uint8

const (
	stepKey stepKind = iota
	stepResolved
	stepIndex
)

// Step is one hop of a path into a document.
type Step struct {
	kind  stepKind
	name  string
	index int
}

// Key steps into the object field named k.
func Key(k string) Step { return Step{kind: stepKey, name: k} }

// Resolved steps into the object field whose raw name was resolved for canonical.
func Resolved(canonical string) Step { return Step{kind: stepResolved, name: canonical} }

// At steps into the i-th element of an array.
func At(i int) Step { return Step{kind: stepIndex, index: i} }

func (s Step) String() string {
	switch s.kind {
	case stepResolved:
		return "[" + s.name + "]"
	case stepIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	default:
		return "." + s.name
	}
}

func pathString(doc string, path []Step) string {
	var b strings.Builder
	b.WriteString(doc)
	for _, s := range path {
		b.WriteString(s.String())
	}
	return b.String()
}

// walk follows path from the root of doc, translating Resolved steps through m.
func walk(store *document.Store, m *Mapping, doc string, path []Step) (*document.Node, error) {
	n, err := store.Get(doc)
	if err != nil {
		return nil, err
	}
	for i, s := range path {
		switch s.kind {
		case stepKey:
			n = n.Get(s.name)
		case stepResolved:
			raw, ok := m.Raw(s.name)
			if !ok {
				return nil, fmt.Errorf("%s depends on unresolved key %s", pathString(doc, path[:i+1]), s.name)
			}
			n = n.Get(raw)
		case stepIndex:
			n = n.Index(s.index)
		}
		if n == nil {
			return nil, fmt.Errorf("%w: %s does not exist", ErrNotFound, pathString(doc, path[:i+1]))
		}
	}
	return n, nil
}

// FirstKey resolves name to the first key, in document order, of the object at path.
func FirstKey(name, doc string, path ...Step) Rule {
	where := pathString(doc, path)
	return Rule{
		Name:     name,
		Document: doc,
		Describe: "first key of " + where,
		Discover: func(store *document.Store, m *Mapping) (string, error) {
			obj, err := walk(store, m, doc, path)
			if err != nil {
				return "", err
			}
			for _, k := range obj.Keys() {
				if _, taken := m.ClaimedBy(k); !taken {
					return k, nil
				}
			}
			return "", fmt.Errorf("%w: %s has no unclaimed keys", ErrNotFound, where)
		},
	}
}

// KeyWhere resolves name to the first key, in document order, of the object at
// path whose value satisfies match. Keys already resolved for another
// canonical name are skipped.
func KeyWhere(name, doc string, match Match, path ...Step) Rule {
	where := pathString(doc, path)
	return Rule{
		Name:     name,
		Document: doc,
		Describe: "key in " + where + " with value " + match.Desc,
		Discover: func(store *document.Store, m *Mapping) (string, error) {
			obj, err := walk(store, m, doc, path)
			if err != nil {
				return "", err
			}
			if !obj.IsObject() {
				return "", fmt.Errorf("%w: %s is a %s, not an object", ErrNotFound, where, obj.Kind())
			}
			for _, f := range obj.Fields() {
				if _, taken := m.ClaimedBy(f.Key); taken {
					continue
				}
				if match.Test(f.Value) {
					return f.Key, nil
				}
			}
			return "", fmt.Errorf("%w: no value %s in %s", ErrNotFound, match.Desc, where)
		},
	}
}
