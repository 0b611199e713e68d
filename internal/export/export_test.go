package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreehandBoard/internal/state"
)

func sampleShapes() []state.Shape {
	p := state.NewPath(state.Pt(0, 0), "#ff0000", 4)
	p.Points = append(p.Points, state.Pt(50, 20), state.Pt(100, 0))
	return []state.Shape{
		p,
		state.NewRectangle(state.Pt(10, 10), state.Pt(90, 70), 6, "#00ff00", 2),
		state.NewCircle(state.Pt(30, 30), state.Pt(50, 30), "#0000ff", 6),
	}
}

func TestDrawingBounds(t *testing.T) {
	r, err := drawingBounds(sampleShapes())
	require.NoError(t, err)
	assert.Equal(t, state.Rect{Min: state.Pt(-2, -2), Max: state.Pt(102, 71)}, r)
}

func TestEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, PDF(filepath.Join(dir, "a.pdf"), nil, "x"), ErrEmptyDocument)
	assert.ErrorIs(t, PNG(filepath.Join(dir, "a.png"), nil, 10), ErrEmptyDocument)
}

func TestPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	require.NoError(t, PDF(path, sampleShapes(), "session"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	require.NoError(t, PNG(path, sampleShapes(), 10))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 124, b.Dx())
	assert.Equal(t, 93, b.Dy())

	r, g, bl, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, bl}, "margin is white")
}

func TestPNGWriteError(t *testing.T) {
	err := PNG(filepath.Join(t.TempDir(), "missing", "board.png"), sampleShapes(), 0)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyDocument)
}
