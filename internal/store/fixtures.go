package store

import "github.com/medreport/docapi/internal/document"

// fixtureDocuments returns the built-in development/testing documents.
// The "foo" consultation report carries its words deliberately out of
// reading order so the layout reconstruction is actually exercised.
func fixtureDocuments() []*document.Document {
	return []*document.Document{
		{
			ID:    "foo",
			Title: "Consultation report",
			Pages: []document.Page{
				{
					Words: []document.Word{
						{Text: "hanche", BBox: document.BoundingBox{XMin: 0.75, XMax: 0.81, YMin: 0.09, YMax: 0.1}},
						{Text: "JACQUES", BBox: document.BoundingBox{XMin: 0.74, XMax: 0.83, YMin: 0.16, YMax: 0.17}},
						{Text: "pour", BBox: document.BoundingBox{XMin: 0.57, XMax: 0.61, YMin: 0.09, YMax: 0.1}},
						{Text: "la", BBox: document.BoundingBox{XMin: 0.73, XMax: 0.75, YMin: 0.09, YMax: 0.1}},
						{Text: "en", BBox: document.BoundingBox{XMin: 0.23, XMax: 0.26, YMin: 0.09, YMax: 0.1}},
						{Text: "bien", BBox: document.BoundingBox{XMin: 0.15, XMax: 0.19, YMin: 0.09, YMax: 0.1}},
						{Text: "consultation", BBox: document.BoundingBox{XMin: 0.26, XMax: 0.36, YMin: 0.09, YMax: 0.1}},
						{Text: "Monsieur", BBox: document.BoundingBox{XMin: 0.36, XMax: 0.44, YMin: 0.09, YMax: 0.1}},
						{Text: "Jean", BBox: document.BoundingBox{XMin: 0.44, XMax: 0.48, YMin: 0.09, YMax: 0.1}},
						{Text: "à", BBox: document.BoundingBox{XMin: 0.72, XMax: 0.73, YMin: 0.09, YMax: 0.1}},
						{Text: "droite.", BBox: document.BoundingBox{XMin: 0.82, XMax: 0.87, YMin: 0.09, YMax: 0.1}},
						{Text: "revu", BBox: document.BoundingBox{XMin: 0.19, XMax: 0.23, YMin: 0.09, YMax: 0.1}},
						{Text: "DUPONT", BBox: document.BoundingBox{XMin: 0.49, XMax: 0.57, YMin: 0.09, YMax: 0.1}},
						{Text: "douleur", BBox: document.BoundingBox{XMin: 0.65, XMax: 0.71, YMin: 0.09, YMax: 0.1}},
						{Text: "J'ai", BBox: document.BoundingBox{XMin: 0.12, XMax: 0.15, YMin: 0.09, YMax: 0.1}},
						{Text: "une", BBox: document.BoundingBox{XMin: 0.61, XMax: 0.65, YMin: 0.09, YMax: 0.1}},
						{Text: "Nicolas", BBox: document.BoundingBox{XMin: 0.67, XMax: 0.73, YMin: 0.16, YMax: 0.17}},
						{Text: "Docteur", BBox: document.BoundingBox{XMin: 0.6, XMax: 0.67, YMin: 0.16, YMax: 0.17}},
					},
				},
			},
			OriginalPageCount: 1,
			NeedsOCRCase:      document.NoOCRCase,
		},
		{ID: "bar", Title: "Bar", NeedsOCRCase: document.NoOCRCase},
		{ID: "baz", Title: "Baz", NeedsOCRCase: document.NoOCRCase},
	}
}
