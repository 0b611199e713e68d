package state

// SimplifyThreshold is the point count a freehand path must exceed before
// it is simplified on commit.
const SimplifyThreshold = 5

// DefaultSimplifyTolerance is the maximum distance a simplified path may
// stray from the drawn one.
const DefaultSimplifyTolerance = 10

// Simplify reduces points with the Ramer-Douglas-Peucker algorithm. The
// endpoints are always kept and the result never has more points than the
// input.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) < 3 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	keep := make([]bool, len(points))
	keep[0], keep[len(points)-1] = true, true

	type span struct{ lo, hi int }
	stack := []span{{0, len(points) - 1}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		maxDist, index := 0.0, -1
		for i := sp.lo + 1; i < sp.hi; i++ {
			if dist := distToSegment(points[i], points[sp.lo], points[sp.hi]); dist > maxDist {
				maxDist, index = dist, i
			}
		}
		if index >= 0 && maxDist > tolerance {
			keep[index] = true
			stack = append(stack, span{sp.lo, index}, span{index, sp.hi})
		}
	}

	out := make([]Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// FinalizePath prepares a freehand path for commit.
func FinalizePath(s Shape, tolerance float64) Shape {
	if s.Kind != KindPath || len(s.Points) <= SimplifyThreshold {
		return s
	}
	s.Points = Simplify(s.Points, tolerance)
	return s
}
