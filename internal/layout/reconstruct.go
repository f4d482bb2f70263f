// Package layout reconstructs human reading order from OCR words and
// their bounding boxes. Words are grouped into horizontal lines by the
// vertical distance between their centers, then ordered top-to-bottom
// and left-to-right.
package layout

import (
	"math"
	"sort"

	"github.com/medreport/docapi/internal/document"
)

// Reconstruct returns the words of a document in reading order.
//
// Pages are processed in document order and never merged. Within a
// page, words are grouped into lines whenever the vertical distance
// between a word's center and the current line anchor is at most
// yThreshold (in the same normalized coordinates as the bounding
// boxes). The result is the flat list of word texts, line by line and
// page by page, with no separators inserted.
func Reconstruct(doc *document.Document, yThreshold float64) []string {
	var words []string
	for _, page := range doc.Pages {
		for _, line := range groupIntoLines(page.Words, yThreshold) {
			sort.SliceStable(line, func(i, j int) bool {
				return line[i].BBox.XMin < line[j].BBox.XMin
			})
			for _, w := range line {
				words = append(words, w.Text)
			}
		}
	}
	return words
}

// groupIntoLines splits a page's words into lines of vertically close
// words. Words are visited in (vertical center, x_min) order; each line
// keeps a running anchor that is averaged with every newly joined
// word's center, so the anchor drifts toward later words.
func groupIntoLines(words []document.Word, yThreshold float64) [][]document.Word {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]document.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].BBox.VerticalCenter(), sorted[j].BBox.VerticalCenter()
		if ci == cj {
			return sorted[i].BBox.XMin < sorted[j].BBox.XMin
		}
		return ci < cj
	})

	var lines [][]document.Word
	var current []document.Word
	var anchor float64

	for _, w := range sorted {
		center := w.BBox.VerticalCenter()
		switch {
		case current == nil:
			current = []document.Word{w}
			anchor = center
		case math.Abs(center-anchor) <= yThreshold:
			current = append(current, w)
			anchor = (anchor + center) / 2
		default:
			lines = append(lines, current)
			current = []document.Word{w}
			anchor = center
		}
	}
	lines = append(lines, current)

	return lines
}
