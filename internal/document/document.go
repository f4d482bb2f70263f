// Package document defines the value types shared between the store,
// the layout reconstruction and the HTTP API: documents, pages, OCR
// words and their normalized bounding boxes.
package document

// BoundingBox locates a word on a page in normalized coordinates.
// The origin is the top-left corner of the page and y grows downward;
// all four values are expected to lie in [0, 1] with XMin <= XMax and
// YMin <= YMax. Validation happens upstream (at ingestion time), not
// here.
type BoundingBox struct {
	XMin float64 `json:"x_min" yaml:"x_min"`
	XMax float64 `json:"x_max" yaml:"x_max"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
}

// VerticalCenter returns the vertical midpoint of the box.
func (b BoundingBox) VerticalCenter() float64 {
	return (b.YMin + b.YMax) / 2
}

// Word is a single OCR token together with its position on the page.
type Word struct {
	Text string      `json:"text" yaml:"text"`
	BBox BoundingBox `json:"bbox" yaml:"bbox"`
}

// Page holds the words recognized on one page. The slice order carries
// no meaning; reading order is reconstructed from the bounding boxes.
type Page struct {
	Words []Word `json:"words" yaml:"words"`
}

// OCR case markers for documents.
const (
	NoOCRCase    = "no_ocr"
	NeedsOCRCase = "needs_ocr"
)

// Document is a scanned document as exposed by the API. Page order is
// meaningful and preserved during reconstruction.
type Document struct {
	ID                string `json:"id" yaml:"id"`
	Title             string `json:"title" yaml:"title"`
	Pages             []Page `json:"pages" yaml:"pages"`
	OriginalPageCount int    `json:"original_page_count" yaml:"original_page_count"`
	NeedsOCRCase      string `json:"needs_ocr_case" yaml:"needs_ocr_case"`
}

// WordCount returns the total number of words across all pages.
func (d *Document) WordCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Words)
	}
	return n
}
