package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(x1, y1, x2, y2 float32) Shape {
	s := NewPath(Pt(x1, y1), "#000000", 2)
	s.Points = append(s.Points, Pt(x2, y2))
	return s
}

func TestDocumentAddAssignsMonotonicIDs(t *testing.T) {
	doc := NewDocument()
	a := doc.Add(line(0, 0, 10, 10))
	b := doc.Add(line(0, 0, 20, 20))
	doc.Remove(b.ID)
	c := doc.Add(line(0, 0, 30, 30))

	assert.Equal(t, "#0", a.ID)
	assert.Equal(t, "#1", b.ID)
	assert.Equal(t, "#2", c.ID, "removed ids are never reused")
	assert.NotEmpty(t, doc.SessionID())
}

func TestDocumentAddReplacesDuplicateID(t *testing.T) {
	doc := NewDocument()
	s := line(0, 0, 1, 1)
	s.ID = "#7"
	first := doc.Add(s)
	second := doc.Add(s)

	assert.Equal(t, "#7", first.ID)
	assert.Equal(t, "#8", second.ID)
}

func TestDocumentShapesIsACopy(t *testing.T) {
	doc := NewDocument()
	s := doc.Add(line(0, 0, 10, 10))

	shapes := doc.Shapes()
	shapes[0].Points[0] = Pt(99, 99)

	got, ok := doc.Get(s.ID)
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), got.Points[0])
}

func TestDocumentRemoveDropsSelection(t *testing.T) {
	doc := NewDocument()
	s := doc.Add(line(0, 0, 10, 10))
	require.True(t, doc.Select(s.ID))

	assert.True(t, doc.Remove(s.ID))
	assert.False(t, doc.IsSelected(s.ID))
	assert.Empty(t, doc.Selected())
	assert.False(t, doc.Remove(s.ID))
}

func TestDocumentSelectUnknownID(t *testing.T) {
	doc := NewDocument()
	assert.False(t, doc.Select("#42"))
	assert.Empty(t, doc.Selected())
}

func TestDocumentRemoveSelected(t *testing.T) {
	doc := NewDocument()
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, doc.Add(line(float32(i), 0, float32(i), 10)).ID)
	}
	doc.Select(ids[1])
	doc.Select(ids[3])

	removed := doc.RemoveSelected()

	assert.Equal(t, []string{ids[1], ids[3]}, removed)
	assert.Equal(t, 3, doc.Len())
	for _, s := range doc.Shapes() {
		assert.NotContains(t, removed, s.ID)
	}
	assert.Empty(t, doc.Selected())
}

func TestDocumentSelectInRect(t *testing.T) {
	doc := NewDocument()
	crossing := line(-50, 50, -40, 50)
	crossing.Points = append(crossing.Points, Pt(10, 50)) // crosses the left edge, interior point outside
	crossing = doc.Add(crossing)
	inside := doc.Add(NewCircle(Pt(40, 40), Pt(60, 60), "#000000", 2))           // wholly inside
	outside := doc.Add(line(200, 200, 300, 300))                                 // wholly outside
	around := doc.Add(NewRectangle(Pt(-50, -50), Pt(300, 300), 6, "#000000", 2)) // encloses the box
	doc.Select(outside.ID)

	got := doc.SelectInRect(NewRect(Pt(100, 100), Pt(0, 0)))

	assert.ElementsMatch(t, []string{crossing.ID, inside.ID}, got)
	assert.True(t, doc.IsSelected(crossing.ID))
	assert.True(t, doc.IsSelected(inside.ID))
	assert.False(t, doc.IsSelected(outside.ID), "previous selection is replaced")
	assert.False(t, doc.IsSelected(around.ID), "outline never touches the box and its center is outside")
}

func TestDocumentSelectInRectUsesInteriorPoint(t *testing.T) {
	doc := NewDocument()
	big := doc.Add(NewRectangle(Pt(0, 0), Pt(100, 100), 0, "#000000", 2))

	got := doc.SelectInRect(NewRect(Pt(40, 40), Pt(60, 60)))

	assert.Equal(t, []string{big.ID}, got)
}

func TestDocumentHitTestTopMost(t *testing.T) {
	doc := NewDocument()
	doc.Add(line(0, 0, 100, 0))
	top := doc.Add(line(50, -50, 50, 50))

	hit := doc.HitTest(Pt(50, 1), 2)
	assert.Equal(t, Hit{Found: true, ID: top.ID}, hit)

	assert.False(t, doc.HitTest(Pt(500, 500), 2).Found)
}

func TestDocumentTranslate(t *testing.T) {
	doc := NewDocument()
	s := doc.Add(NewRectangle(Pt(0, 0), Pt(10, 10), 6, "#000000", 2))

	require.True(t, doc.Translate(s.ID, Pt(5, -5)))
	got, _ := doc.Get(s.ID)
	assert.Equal(t, NewRect(Pt(5, -5), Pt(15, 5)), got.Bounds)
	assert.False(t, doc.Translate("#99", Pt(1, 1)))
}

func TestDocumentClear(t *testing.T) {
	doc := NewDocument()
	s := doc.Add(line(0, 0, 1, 1))
	doc.Select(s.ID)

	doc.Clear()

	assert.Zero(t, doc.Len())
	assert.Empty(t, doc.Selected())
}
