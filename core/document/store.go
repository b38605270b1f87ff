package document

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrMissing is returned when a logical name has no document in the store.
var ErrMissing = errors.New("document not found")

// Store maps logical names to parsed documents for one cook run.
// It is written concurrently during the fetch phase and read-only afterwards.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Node
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Node)}
}

// Put stores doc under name, replacing any previous document.
func (s *Store) Put(name string, doc *Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = doc
}

// Get returns the document stored under name or an error wrapping ErrMissing.
func (s *Store) Get(name string) (*Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	return doc, nil
}

// Has reports whether a document is stored under name.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[name]
	return ok
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Names returns the stored logical names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenameKeys applies renames to every stored document.
func (s *Store) RenameKeys(renames map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.docs {
		doc.RenameKeys(renames)
	}
}
