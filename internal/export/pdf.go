package export

import (
	"fmt"
	"log"
	"math"

	"github.com/jung-kurt/gofpdf"

	"FreehandBoard/internal/state"
)

const pdfMargin = 10.0 // mm

// PDF writes the shapes onto a single A4 landscape page, scaled to fit.
func PDF(path string, shapes []state.Shape, subject string) error {
	bounds, err := drawingBounds(shapes)
	if err != nil {
		return err
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("FreehandBoard", true)
	p.SetSubject(subject, true)
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	scale := math.Min(
		(pageW-2*pdfMargin)/math.Max(float64(bounds.Width()), 1),
		(pageH-2*pdfMargin)/math.Max(float64(bounds.Height()), 1),
	)
	tx := func(pt state.Point) (float64, float64) {
		return pdfMargin + float64(pt.X-bounds.Min.X)*scale, pdfMargin + float64(pt.Y-bounds.Min.Y)*scale
	}

	for _, s := range shapes {
		c := s.StrokeRGBA()
		p.SetDrawColor(int(c.R), int(c.G), int(c.B))
		p.SetLineWidth(float64(s.StrokeWidth) * scale)

		switch s.Kind {
		case state.KindRectangle:
			x, y := tx(s.Bounds.Min)
			w, h := float64(s.Bounds.Width())*scale, float64(s.Bounds.Height())*scale
			p.RoundedRect(x, y, w, h, float64(s.Radius)*scale, "1234", "D")
		case state.KindCircle:
			x, y := tx(s.Center)
			p.Ellipse(x, y, float64(s.Radii.X)*scale, float64(s.Radii.Y)*scale, 0, "D")
		default:
			for i := 1; i < len(s.Points); i++ {
				x1, y1 := tx(s.Points[i-1])
				x2, y2 := tx(s.Points[i])
				p.Line(x1, y1, x2, y2)
			}
		}
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %d shapes to %s", len(shapes), path)
	return nil
}
