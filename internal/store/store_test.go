package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/docapi/internal/document"
)

func TestStore_Lookup(t *testing.T) {
	s := New()

	doc, err := s.Lookup("foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", doc.ID)
	assert.Equal(t, "Consultation report", doc.Title)
	assert.Equal(t, 18, doc.WordCount())
}

func TestStore_LookupNotFound(t *testing.T) {
	s := New()

	doc, err := s.Lookup("missing")
	require.Error(t, err)
	assert.Nil(t, doc)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.ID)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestStore_List(t *testing.T) {
	s := New()

	docs := s.List()
	require.Len(t, docs, 3)

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	assert.Equal(t, []string{"bar", "baz", "foo"}, ids)
}

func TestStore_Add(t *testing.T) {
	s := NewWithDocuments(nil)
	assert.Empty(t, s.List())

	s.Add(&document.Document{ID: "qux", Title: "Qux"})

	doc, err := s.Lookup("qux")
	require.NoError(t, err)
	assert.Equal(t, "Qux", doc.Title)
}

func TestFixtureDocuments_EmptyOnes(t *testing.T) {
	s := New()

	for _, id := range []string{"bar", "baz"} {
		doc, err := s.Lookup(id)
		require.NoError(t, err)
		assert.Zero(t, doc.WordCount())
	}
}
