package export

import (
	"errors"

	"FreehandBoard/internal/state"
)

// ErrEmptyDocument is returned when there is nothing to render.
var ErrEmptyDocument = errors.New("nothing to export")

// drawingBounds covers every shape including half its stroke.
func drawingBounds(shapes []state.Shape) (state.Rect, error) {
	if len(shapes) == 0 {
		return state.Rect{}, ErrEmptyDocument
	}
	r := shapes[0].BoundingBox().Inflate(shapes[0].StrokeWidth / 2)
	for _, s := range shapes[1:] {
		r = r.Union(s.BoundingBox().Inflate(s.StrokeWidth / 2))
	}
	return r, nil
}
