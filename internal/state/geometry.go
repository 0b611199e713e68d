package state

import "math"

// Point is a position in document space.
type Point struct {
	X float32
	Y float32
}

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Scale(f float32) Point { return Point{X: p.X * f, Y: p.Y * f} }

// Len is the distance from the origin.
func (p Point) Len() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Rect is an axis-aligned rectangle with Min <= Max on both axes.
type Rect struct {
	Min Point
	Max Point
}

// NewRect builds a normalized rectangle spanning two arbitrary corners.
func NewRect(a, b Point) Rect {
	r := Rect{Min: a, Max: b}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Overlaps(o Rect) bool {
	return !(r.Max.X < o.Min.X || o.Max.X < r.Min.X ||
		r.Max.Y < o.Min.Y || o.Max.Y < r.Min.Y)
}

func (r Rect) Inflate(d float32) Rect {
	return Rect{Min: Point{X: r.Min.X - d, Y: r.Min.Y - d}, Max: Point{X: r.Max.X + d, Y: r.Max.Y + d}}
}

// Union grows r to cover o.
func (r Rect) Union(o Rect) Rect {
	if o.Min.X < r.Min.X {
		r.Min.X = o.Min.X
	}
	if o.Min.Y < r.Min.Y {
		r.Min.Y = o.Min.Y
	}
	if o.Max.X > r.Max.X {
		r.Max.X = o.Max.X
	}
	if o.Max.Y > r.Max.Y {
		r.Max.Y = o.Max.Y
	}
	return r
}

func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Edges returns the four sides as a closed polyline, clockwise from Min.
func (r Rect) Edges() []Point {
	return []Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
		r.Min,
	}
}

// boundsOf computes the bounding box of a non-empty point list.
func boundsOf(points []Point) Rect {
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}

func cross(o, a, b Point) float64 {
	return float64(a.X-o.X)*float64(b.Y-o.Y) - float64(a.Y-o.Y)*float64(b.X-o.X)
}

func onSegment(a, b, p Point) bool {
	return math.Min(float64(a.X), float64(b.X)) <= float64(p.X) && float64(p.X) <= math.Max(float64(a.X), float64(b.X)) &&
		math.Min(float64(a.Y), float64(b.Y)) <= float64(p.Y) && float64(p.Y) <= math.Max(float64(a.Y), float64(b.Y))
}

// segmentsIntersect reports whether segment ab touches segment cd.
func segmentsIntersect(a, b, c, d Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(c, d, a):
		return true
	case d2 == 0 && onSegment(c, d, b):
		return true
	case d3 == 0 && onSegment(a, b, c):
		return true
	case d4 == 0 && onSegment(a, b, d):
		return true
	}
	return false
}

// polylinesIntersect reports whether any segment of a crosses any segment of b.
func polylinesIntersect(a, b []Point) bool {
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(b); j++ {
			if segmentsIntersect(a[i-1], a[i], b[j-1], b[j]) {
				return true
			}
		}
	}
	return false
}

// distToSegment is the distance from p to segment ab.
func distToSegment(p, a, b Point) float64 {
	abx, aby := float64(b.X-a.X), float64(b.Y-a.Y)
	apx, apy := float64(p.X-a.X), float64(p.Y-a.Y)
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return math.Hypot(apx, apy)
	}
	t := (apx*abx + apy*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(apx-t*abx, apy-t*aby)
}

// insidePolygon applies the even-odd rule to the polygon closed from points.
func insidePolygon(p Point, points []Point) bool {
	in := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := float64(b.X-a.X)*float64(p.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
			if float64(p.X) < x {
				in = !in
			}
		}
	}
	return in
}
