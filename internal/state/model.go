package state

import (
	"fmt"
	"math"
)

type Kind int

const (
	KindPath Kind = iota
	KindRectangle
	KindCircle
)

// Tag is the type tag written by Export.
func (k Kind) Tag() string {
	switch k {
	case KindPath:
		return "path"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func kindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "path":
		return KindPath, true
	case "rectangle":
		return KindRectangle, true
	case "circle":
		return KindCircle, true
	}
	return 0, false
}

// circleSegments is how finely circles are flattened for hit-testing.
const circleSegments = 64

// Shape is one drawn object on the board.
type Shape struct {
	ID   string
	Kind Kind

	// KindPath
	Points []Point

	// KindRectangle
	Bounds Rect
	Radius float32

	// KindCircle
	Center Point
	Radii  Point

	StrokeColor string
	StrokeWidth float32
}

// NewPath starts a freehand path at p.
func NewPath(p Point, color string, width float32) Shape {
	return Shape{Kind: KindPath, Points: []Point{p}, StrokeColor: color, StrokeWidth: width}
}

// NewRectangle spans a rounded rectangle between two corners.
func NewRectangle(a, b Point, radius float32, color string, width float32) Shape {
	return Shape{Kind: KindRectangle, Bounds: NewRect(a, b), Radius: radius, StrokeColor: color, StrokeWidth: width}
}

// NewCircle builds a circle centered on the midpoint of a and b whose
// diameter is their distance.
func NewCircle(a, b Point, color string, width float32) Shape {
	r := b.Sub(a).Len() / 2
	return Shape{
		Kind:        KindCircle,
		Center:      a.Add(b).Scale(0.5),
		Radii:       Point{X: r, Y: r},
		StrokeColor: color,
		StrokeWidth: width,
	}
}

// NewEllipse builds the ellipse inscribed in the box spanned by a and b.
func NewEllipse(a, b Point, color string, width float32) Shape {
	d := a.Sub(b)
	return Shape{
		Kind:        KindCircle,
		Center:      a.Add(b).Scale(0.5),
		Radii:       Point{X: abs32(d.X) / 2, Y: abs32(d.Y) / 2},
		StrokeColor: color,
		StrokeWidth: width,
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Outline returns a polyline tracing the shape's stroke.
func (s Shape) Outline() []Point {
	switch s.Kind {
	case KindRectangle:
		return s.Bounds.Edges()
	case KindCircle:
		pts := make([]Point, 0, circleSegments+1)
		for i := 0; i <= circleSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleSegments
			pts = append(pts, Point{
				X: s.Center.X + s.Radii.X*float32(math.Cos(a)),
				Y: s.Center.Y + s.Radii.Y*float32(math.Sin(a)),
			})
		}
		return pts
	default:
		if len(s.Points) == 1 {
			// a dot still needs a segment to intersect
			return []Point{s.Points[0], s.Points[0]}
		}
		return s.Points
	}
}

func (s Shape) BoundingBox() Rect {
	switch s.Kind {
	case KindRectangle:
		return s.Bounds
	case KindCircle:
		return Rect{Min: s.Center.Sub(s.Radii), Max: s.Center.Add(s.Radii)}
	default:
		if len(s.Points) == 0 {
			return Rect{}
		}
		return boundsOf(s.Points)
	}
}

// InteriorPoint returns a reference point inside the shape, used by
// box-select.
func (s Shape) InteriorPoint() Point {
	if s.Kind != KindPath {
		return s.BoundingBox().Center()
	}
	if len(s.Points) == 0 {
		return Point{}
	}
	c := s.BoundingBox().Center()
	if len(s.Points) > 2 && insidePolygon(c, s.Points) {
		return c
	}
	return s.Points[len(s.Points)/2]
}

// Translate moves the shape by d.
func (s *Shape) Translate(d Point) {
	switch s.Kind {
	case KindRectangle:
		s.Bounds = s.Bounds.Translate(d)
	case KindCircle:
		s.Center = s.Center.Add(d)
	default:
		for i := range s.Points {
			s.Points[i] = s.Points[i].Add(d)
		}
	}
}

// HitTest reports whether p falls on the shape's stroke, widened by tol.
func (s Shape) HitTest(p Point, tol float32) bool {
	reach := float64(s.StrokeWidth/2 + tol)
	if !s.BoundingBox().Inflate(float32(reach)).Contains(p) {
		return false
	}
	out := s.Outline()
	for i := 1; i < len(out); i++ {
		if distToSegment(p, out[i-1], out[i]) <= reach {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with s.
func (s Shape) Clone() Shape {
	if s.Points != nil {
		pts := make([]Point, len(s.Points))
		copy(pts, s.Points)
		s.Points = pts
	}
	return s
}
