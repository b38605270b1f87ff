package deobfuscate

import (
	"errors"
	"fmt"

	"json-cooker/core/document"
)

// ErrNotFound is returned when a rule matches no key in the current snapshot.
var ErrNotFound = errors.New("resolution not found")

// ResolutionError names the rule that failed and the document it searched.
type ResolutionError struct {
	Canonical string
	Document  string
	Err       error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s in %s: %v", e.Canonical, e.Document, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolve runs rules in order, recording each result before the next rule runs.
// A failing rule does not stop the rules after it: they still resolve unless
// they depend on a name that failed. The returned mapping holds every name that
// resolved; the error joins one *ResolutionError per failed rule.
func Resolve(store *document.Store, rules []Rule) (*Mapping, error) {
	m := NewMapping()
	var errs []error
	for _, r := range rules {
		raw, err := r.Discover(store, m)
		if err != nil {
			errs = append(errs, &ResolutionError{Canonical: r.Name, Document: r.Document, Err: err})
			continue
		}
		m.Set(r.Name, raw)
	}
	return m, errors.Join(errs...)
}

// Unresolved returns the names in want that m has no raw key for.
func Unresolved(m *Mapping, want []string) []string {
	var missing []string
	for _, name := range want {
		if _, ok := m.Raw(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Apply renames every resolved raw key to its canonical name in every
// document of the store. The rewrite is structural: only object keys are
// renamed, never string values that happen to contain a raw name.
func Apply(store *document.Store, m *Mapping) {
	store.RenameKeys(m.Renames())
}
