package input

import "FreehandBoard/internal/state"

// Axis restricts which components of a pan delta are applied.
type Axis int

const (
	AxisBoth Axis = iota
	AxisHorizontal
	AxisVertical
)

// View maps widget coordinates to document coordinates. Origin is the
// document point under the widget's top-left corner.
type View struct {
	Origin state.Point
	Size   state.Point
}

// NewView returns an unpanned view of the given size.
func NewView(width, height float32) *View {
	return &View{Size: state.Pt(width, height)}
}

// Center is the document point shown in the middle of the widget.
func (v *View) Center() state.Point {
	return v.Origin.Add(v.Size.Scale(0.5))
}

func (v *View) ToDocument(screen state.Point) state.Point {
	return screen.Add(v.Origin)
}

func (v *View) ToScreen(doc state.Point) state.Point {
	return doc.Sub(v.Origin)
}

// Pan moves the center to start plus delta, masked to axis.
func (v *View) Pan(start, delta state.Point, axis Axis) {
	switch axis {
	case AxisHorizontal:
		delta.Y = 0
	case AxisVertical:
		delta.X = 0
	}
	v.Origin = start.Add(delta).Sub(v.Size.Scale(0.5))
}

// Resize changes the widget size, keeping the top-left corner fixed.
func (v *View) Resize(width, height float32) {
	v.Size = state.Pt(width, height)
}
