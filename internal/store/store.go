// Package store provides the in-memory document store backing the API.
// Documents are seeded at construction time; the only abnormal
// condition is a lookup for an unknown id.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/medreport/docapi/internal/document"
)

// NotFoundError is returned by Lookup when no document has the
// requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document with id %q not found", e.ID)
}

// Store is a thread-safe in-memory collection of documents.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*document.Document
}

// New creates a store seeded with the built-in fixture documents.
func New() *Store {
	return NewWithDocuments(fixtureDocuments())
}

// NewWithDocuments creates a store holding the given documents.
func NewWithDocuments(docs []*document.Document) *Store {
	s := &Store{docs: make(map[string]*document.Document, len(docs))}
	for _, d := range docs {
		s.docs[d.ID] = d
	}
	return s
}

// Lookup returns the document with the given id, or a *NotFoundError.
func (s *Store) Lookup(id string) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return doc, nil
}

// List returns all documents ordered by id.
func (s *Store) List() []*document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*document.Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// Add inserts or replaces a document. Mainly used by tests.
func (s *Store) Add(doc *document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}
