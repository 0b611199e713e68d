package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := NewDocument()
	p := NewPath(Pt(1.5, 2.25), "#ff0000", 6)
	p.Points = append(p.Points, Pt(10, 20), Pt(30.125, 5))
	doc.Add(p)
	doc.Add(NewRectangle(Pt(50, 60), Pt(10, 20), 6, "#00ff00", 3))
	doc.Add(NewCircle(Pt(0, 0), Pt(30, 40), "#0000ff", 12))
	doc.Add(NewEllipse(Pt(0, 0), Pt(40, 10), "#123456", 1))
	return doc
}

func TestExportImportRoundTrip(t *testing.T) {
	doc := sampleDocument()

	text, err := doc.ExportText()
	require.NoError(t, err)

	loaded := NewDocument()
	require.NoError(t, loaded.Load(text))

	assert.Equal(t, doc.Shapes(), loaded.Shapes())
}

func TestExportFormat(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewRectangle(Pt(0, 0), Pt(10, 5), 6, "#000000", 6))

	text, err := doc.ExportText()
	require.NoError(t, err)
	assert.JSONEq(t,
		`[["rectangle",{"id":"#0","from":[0,0],"to":[10,5],"radius":6,"strokeColor":"#000000","strokeWidth":6}]]`,
		text)
}

func TestLoadKeepsPayloadIDsAndAdvancesClock(t *testing.T) {
	doc := NewDocument()
	doc.Add(NewPath(Pt(0, 0), "#000000", 6))

	require.NoError(t, doc.Load(`[["path",{"id":"#41","points":[[1,2]],"strokeColor":"#000000","strokeWidth":6}]]`))
	require.Equal(t, 1, doc.Len())
	assert.Equal(t, "#41", doc.Shapes()[0].ID)

	next := doc.Add(NewPath(Pt(0, 0), "#000000", 6))
	assert.Equal(t, "#42", next.ID)
}

func TestLoadMalformedLeavesDocumentUnchanged(t *testing.T) {
	tests := map[string]string{
		"not json":      `{{{`,
		"null":          `null`,
		"null entry":    `[null]`,
		"not an array":  `{"id":"#0"}`,
		"short pair":    `[["path"]]`,
		"unknown tag":   `[["hexagon",{"id":"#0"}]]`,
		"missing id":    `[["path",{"points":[[1,2]]}]]`,
		"duplicate id":  `[["path",{"id":"#0","points":[[1,2]]}],["path",{"id":"#0","points":[[3,4]]}]]`,
		"empty path":    `[["path",{"id":"#0","points":[]}]]`,
		"bad rectangle": `[["rectangle",{"id":"#0","from":[1,2]}]]`,
		"bad circle":    `[["circle",{"id":"#0","center":[1,2]}]]`,
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			doc := sampleDocument()
			before := doc.Shapes()

			err := doc.Load(text)

			require.ErrorIs(t, err, ErrMalformedDocument)
			assert.Equal(t, before, doc.Shapes())
		})
	}
}

func TestLoadClearsSelection(t *testing.T) {
	doc := sampleDocument()
	doc.Select("#0")

	require.NoError(t, doc.Load(`[]`))

	assert.Zero(t, doc.Len())
	assert.Empty(t, doc.Selected())
}
