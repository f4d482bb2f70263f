package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medreport/docapi/internal/document"
	"github.com/medreport/docapi/internal/store"
)

// wordAt builds a word whose vertical center is y, with the given x_min.
func wordAt(text string, x, y float64) document.Word {
	return document.Word{
		Text: text,
		BBox: document.BoundingBox{XMin: x, XMax: x + 0.05, YMin: y - 0.005, YMax: y + 0.005},
	}
}

func TestReconstruct_ConsultationFixture(t *testing.T) {
	doc, err := store.New().Lookup("foo")
	require.NoError(t, err)

	words := Reconstruct(doc, 0.01)

	expected := []string{
		"J'ai", "bien", "revu", "en", "consultation", "Monsieur", "Jean", "DUPONT",
		"pour", "une", "douleur", "à", "la", "hanche", "droite.",
		"Docteur", "Nicolas", "JACQUES",
	}
	assert.Equal(t, expected, words)
}

func TestReconstruct_Deterministic(t *testing.T) {
	doc, err := store.New().Lookup("foo")
	require.NoError(t, err)

	first := Reconstruct(doc, 0.01)
	for range 5 {
		assert.Equal(t, first, Reconstruct(doc, 0.01))
	}
}

func TestReconstruct_PreservesWordCount(t *testing.T) {
	doc := &document.Document{
		ID: "multi",
		Pages: []document.Page{
			{Words: []document.Word{
				wordAt("c", 0.5, 0.1),
				wordAt("a", 0.1, 0.1),
				wordAt("b", 0.3, 0.1),
				wordAt("d", 0.1, 0.5),
			}},
			{},
			{Words: []document.Word{
				wordAt("e", 0.2, 0.2),
				wordAt("f", 0.4, 0.9),
			}},
		},
	}

	tests := []struct {
		name      string
		threshold float64
	}{
		{"default threshold", 0.01},
		{"zero threshold", 0.0},
		{"large threshold", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := Reconstruct(doc, tt.threshold)
			assert.Len(t, words, doc.WordCount())
		})
	}
}

func TestReconstruct_DoesNotMutateInput(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{
			{Words: []document.Word{
				wordAt("b", 0.3, 0.1),
				wordAt("a", 0.1, 0.1),
			}},
		},
	}

	_ = Reconstruct(doc, 0.01)

	assert.Equal(t, "b", doc.Pages[0].Words[0].Text)
	assert.Equal(t, "a", doc.Pages[0].Words[1].Text)
}

func TestReconstruct_PageOrderPreserved(t *testing.T) {
	// Second page's words sit above the first page's; pages must not be
	// merged or reordered.
	doc := &document.Document{
		Pages: []document.Page{
			{Words: []document.Word{wordAt("bottom", 0.1, 0.9)}},
			{Words: []document.Word{wordAt("top", 0.1, 0.1)}},
		},
	}

	assert.Equal(t, []string{"bottom", "top"}, Reconstruct(doc, 0.01))
}

func TestReconstruct_EmptyDocument(t *testing.T) {
	assert.Empty(t, Reconstruct(&document.Document{ID: "bar"}, 0.01))
}

func TestReconstruct_SingleWord(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{{Words: []document.Word{wordAt("only", 0.5, 0.5)}}},
	}
	assert.Equal(t, []string{"only"}, Reconstruct(doc, 0.01))
}

func TestReconstruct_ThresholdZero(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{
			{Words: []document.Word{
				wordAt("same2", 0.5, 0.2),
				wordAt("same1", 0.1, 0.2),
				// Center differs by a hair; must start a new line.
				wordAt("below", 0.0, 0.2001),
			}},
		},
	}

	assert.Equal(t, []string{"same1", "same2", "below"}, Reconstruct(doc, 0.0))
}

func TestReconstruct_LinesTopToBottom(t *testing.T) {
	doc := &document.Document{
		Pages: []document.Page{
			{Words: []document.Word{
				wordAt("line3", 0.1, 0.7),
				wordAt("line1", 0.1, 0.1),
				wordAt("line2", 0.1, 0.4),
			}},
		},
	}

	assert.Equal(t, []string{"line1", "line2", "line3"}, Reconstruct(doc, 0.01))
}

func TestGroupIntoLines_AnchorDrift(t *testing.T) {
	// Each word is within threshold of the drifting anchor even though
	// the last word's center is beyond the threshold from the first:
	// anchor 0.100 -> (0.100+0.108)/2 = 0.104 -> joined by 0.113.
	words := []document.Word{
		wordAt("a", 0.1, 0.100),
		wordAt("b", 0.2, 0.108),
		wordAt("c", 0.3, 0.113),
	}

	lines := groupIntoLines(words, 0.01)

	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 3)
}

func TestGroupIntoLines_SplitBeyondThreshold(t *testing.T) {
	words := []document.Word{
		wordAt("a", 0.1, 0.10),
		wordAt("b", 0.2, 0.15),
	}

	lines := groupIntoLines(words, 0.01)

	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0][0].Text)
	assert.Equal(t, "b", lines[1][0].Text)
}

func TestGroupIntoLines_Empty(t *testing.T) {
	assert.Nil(t, groupIntoLines(nil, 0.01))
}
