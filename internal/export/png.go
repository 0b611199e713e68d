package export

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/fogleman/gg"

	"FreehandBoard/internal/state"
)

// PNG rasterizes the shapes onto a white canvas sized to the drawing plus
// margin on every side.
func PNG(path string, shapes []state.Shape, margin float64) error {
	dc, err := render(shapes, margin)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write png %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %d shapes to %s", len(shapes), path)
	return nil
}

func render(shapes []state.Shape, margin float64) (*gg.Context, error) {
	bounds, err := drawingBounds(shapes)
	if err != nil {
		return nil, err
	}
	w := int(math.Ceil(float64(bounds.Width()) + 2*margin))
	h := int(math.Ceil(float64(bounds.Height()) + 2*margin))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	ox := margin - float64(bounds.Min.X)
	oy := margin - float64(bounds.Min.Y)
	for _, s := range shapes {
		dc.SetColor(s.StrokeRGBA())
		dc.SetLineWidth(float64(s.StrokeWidth))

		switch s.Kind {
		case state.KindRectangle:
			dc.DrawRoundedRectangle(float64(s.Bounds.Min.X)+ox, float64(s.Bounds.Min.Y)+oy,
				float64(s.Bounds.Width()), float64(s.Bounds.Height()), float64(s.Radius))
		case state.KindCircle:
			dc.DrawEllipse(float64(s.Center.X)+ox, float64(s.Center.Y)+oy, float64(s.Radii.X), float64(s.Radii.Y))
		default:
			if len(s.Points) == 0 {
				continue
			}
			dc.MoveTo(float64(s.Points[0].X)+ox, float64(s.Points[0].Y)+oy)
			for _, pt := range s.Points[1:] {
				dc.LineTo(float64(pt.X)+ox, float64(pt.Y)+oy)
			}
		}
		dc.Stroke()
	}
	return dc, nil
}
