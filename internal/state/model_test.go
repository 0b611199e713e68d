package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(Pt(10, 0), Pt(0, 20))
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(10, 20)}, r)
	assert.True(t, r.Contains(Pt(10, 20)))
	assert.False(t, r.Contains(Pt(10.5, 20)))
}

func TestNewCircleUsesMidpointAndHalfDistance(t *testing.T) {
	c := NewCircle(Pt(0, 0), Pt(60, 80), "#000000", 2)
	assert.Equal(t, Pt(30, 40), c.Center)
	assert.Equal(t, Pt(50, 50), c.Radii)
}

func TestNewEllipseUsesHalfExtents(t *testing.T) {
	e := NewEllipse(Pt(60, 0), Pt(0, 20), "#000000", 2)
	assert.Equal(t, Pt(30, 10), e.Center)
	assert.Equal(t, Pt(30, 10), e.Radii)
	assert.Equal(t, Rect{Min: Pt(0, 0), Max: Pt(60, 20)}, e.BoundingBox())
}

func TestShapeHitTest(t *testing.T) {
	c := NewCircle(Pt(0, 0), Pt(100, 0), "#000000", 4)
	assert.True(t, c.HitTest(Pt(100, 0), 1))
	assert.False(t, c.HitTest(Pt(50, 0), 1), "center of an unfilled circle is not on the stroke")

	r := NewRectangle(Pt(0, 0), Pt(10, 10), 0, "#000000", 2)
	assert.True(t, r.HitTest(Pt(5, 11), 1))
	assert.False(t, r.HitTest(Pt(5, 5), 1))
}

func TestPathInteriorPoint(t *testing.T) {
	loop := NewPath(Pt(0, 0), "#000000", 2)
	loop.Points = append(loop.Points, Pt(100, 0), Pt(100, 100), Pt(0, 100))
	assert.Equal(t, Pt(50, 50), loop.InteriorPoint())

	open := NewPath(Pt(0, 0), "#000000", 2)
	open.Points = append(open.Points, Pt(50, 0), Pt(100, 0))
	assert.Equal(t, Pt(50, 0), open.InteriorPoint())
}

func TestShapeTranslate(t *testing.T) {
	p := NewPath(Pt(1, 1), "#000000", 2)
	p.Translate(Pt(2, 3))
	assert.Equal(t, []Point{Pt(3, 4)}, p.Points)

	c := NewCircle(Pt(0, 0), Pt(2, 0), "#000000", 2)
	c.Translate(Pt(-1, 1))
	assert.Equal(t, Pt(0, 1), c.Center)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, G: 128, A: 255}, c)

	_, err = ParseColor("orange")
	assert.Error(t, err)

	s := Shape{StrokeColor: "nope"}
	assert.Equal(t, color.NRGBA{A: 255}, s.StrokeRGBA())
}
