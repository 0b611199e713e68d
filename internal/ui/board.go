package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"FreehandBoard/internal/input"
	"FreehandBoard/internal/state"
	"FreehandBoard/internal/tool"
)

var (
	selectionColor = color.NRGBA{R: 0x00, G: 0x9d, B: 0xec, A: 0xff}
	overlayFill    = color.NRGBA{R: 0xef, G: 0xf9, B: 0xff, A: 0x40}
)

// BoardWidget is the drawing surface. It forwards pointer and key events to
// an input.Dispatcher and renders the Document.
type BoardWidget struct {
	widget.BaseWidget
	doc        *state.Document
	dispatcher *input.Dispatcher
	view       *input.View
	pressed    bool
	lastPos    fyne.Position
	OnExport   func(text string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Focusable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Keyable = (*BoardWidget)(nil)

func NewBoardWidget(doc *state.Document, tools *tool.Controller, opts input.Options) *BoardWidget {
	b := &BoardWidget{
		doc:  doc,
		view: input.NewView(0, 0),
	}
	b.dispatcher = input.NewDispatcher(doc, tools, b.view, opts)
	b.dispatcher.OnChange = b.Refresh
	b.dispatcher.OnExport = func(text string) {
		if b.OnExport != nil {
			b.OnExport(text)
		}
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Document() *state.Document { return b.doc }

func (b *BoardWidget) Dispatcher() *input.Dispatcher { return b.dispatcher }

// Sync redraws the board and republishes the serialized document, used
// after the document was changed outside of a gesture.
func (b *BoardWidget) Sync() {
	b.Refresh()
	if b.OnExport == nil {
		return
	}
	text, err := b.doc.ExportText()
	if err != nil {
		log.Printf("[UI] Export failed: %v", err)
		return
	}
	b.OnExport(text)
}

func toPoint(p fyne.Position) state.Point { return state.Pt(p.X, p.Y) }

func toPos(p state.Point) fyne.Position { return fyne.NewPos(p.X, p.Y) }

// syncShift keeps the dispatcher's shift state in line with the mouse
// event's modifiers, in case the key event went to another widget.
func (b *BoardWidget) syncShift(m fyne.KeyModifier) {
	down := m&fyne.KeyModifierShift != 0
	if down != b.dispatcher.Held(input.KeyShift) {
		if down {
			b.dispatcher.KeyDown(input.KeyShift)
		} else {
			b.dispatcher.KeyUp(input.KeyShift)
		}
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if a := fyne.CurrentApp(); a != nil {
		if c := a.Driver().CanvasForObject(b); c != nil {
			c.Focus(b)
		}
	}
	b.syncShift(e.Modifier)
	b.pressed = true
	b.lastPos = e.Position
	b.dispatcher.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.release(e.Position)
}

func (b *BoardWidget) release(pos fyne.Position) {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.dispatcher.PointerUp(toPoint(pos))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.pressed {
		return
	}
	b.lastPos = e.Position
	b.dispatcher.PointerDrag(toPoint(e.Position))
}

func (b *BoardWidget) DragEnd() {
	b.release(b.lastPos)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.dispatcher.PointerMove(toPoint(e.Position))
}

func (b *BoardWidget) KeyDown(e *fyne.KeyEvent) {
	b.dispatcher.KeyDown(keyFor(e.Name))
}

func (b *BoardWidget) KeyUp(e *fyne.KeyEvent) {
	b.dispatcher.KeyUp(keyFor(e.Name))
}

func (b *BoardWidget) FocusGained()            {}
func (b *BoardWidget) FocusLost()              { b.dispatcher.ReleaseAll() }
func (b *BoardWidget) TypedRune(rune)          {}
func (b *BoardWidget) TypedKey(*fyne.KeyEvent) {}

func keyFor(name fyne.KeyName) input.Key {
	switch name {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return input.KeyShift
	case fyne.KeyQ:
		return input.KeyQ
	case fyne.KeyW:
		return input.KeyW
	case fyne.KeyE:
		return input.KeyE
	case fyne.KeyS:
		return input.KeyS
	case fyne.KeySpace:
		return input.KeySpace
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return input.KeySpecial
	case fyne.Key1:
		return input.Key1
	case fyne.Key2:
		return input.Key2
	case fyne.Key3:
		return input.Key3
	case fyne.KeyBackspace:
		return input.KeyBackspace
	case fyne.KeyDelete:
		return input.KeyDelete
	}
	return input.KeyOther
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) rebuild() {
	b := r.board
	objects := []fyne.CanvasObject{r.background}

	shapes := b.doc.Shapes()
	if draft, ok := b.dispatcher.Draft(); ok {
		shapes = append(shapes, draft)
	}
	for _, s := range shapes {
		objects = append(objects, r.shapeObjects(s)...)
	}

	for _, id := range b.doc.Selected() {
		s, ok := b.doc.Get(id)
		if !ok {
			continue
		}
		box := s.BoundingBox().Inflate(s.StrokeWidth/2 + 2)
		outline := canvas.NewRectangle(color.Transparent)
		outline.StrokeColor = selectionColor
		outline.StrokeWidth = 1
		r.place(outline, box)
		objects = append(objects, outline)
	}

	if box, ok := b.dispatcher.Overlay(); ok {
		overlay := canvas.NewRectangle(overlayFill)
		overlay.StrokeColor = selectionColor
		overlay.StrokeWidth = 1
		r.place(overlay, box)
		objects = append(objects, overlay)
	}
	r.objects = objects
}

// place positions o over the document-space rectangle box.
func (r *boardWidgetRenderer) place(o fyne.CanvasObject, box state.Rect) {
	o.Move(toPos(r.board.view.ToScreen(box.Min)))
	o.Resize(fyne.NewSize(box.Width(), box.Height()))
}

func (r *boardWidgetRenderer) shapeObjects(s state.Shape) []fyne.CanvasObject {
	view := r.board.view
	stroke := s.StrokeRGBA()

	switch s.Kind {
	case state.KindRectangle:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = stroke
		rect.StrokeWidth = s.StrokeWidth
		rect.CornerRadius = s.Radius
		r.place(rect, s.Bounds)
		return []fyne.CanvasObject{rect}
	case state.KindCircle:
		circle := canvas.NewCircle(color.Transparent)
		circle.StrokeColor = stroke
		circle.StrokeWidth = s.StrokeWidth
		box := s.BoundingBox()
		circle.Position1 = toPos(view.ToScreen(box.Min))
		circle.Position2 = toPos(view.ToScreen(box.Max))
		return []fyne.CanvasObject{circle}
	}

	if len(s.Points) == 1 {
		dot := canvas.NewCircle(stroke)
		half := s.StrokeWidth / 2
		c := view.ToScreen(s.Points[0])
		dot.Position1 = fyne.NewPos(c.X-half, c.Y-half)
		dot.Position2 = fyne.NewPos(c.X+half, c.Y+half)
		return []fyne.CanvasObject{dot}
	}
	objects := make([]fyne.CanvasObject, 0, len(s.Points))
	for i := 1; i < len(s.Points); i++ {
		segment := canvas.NewLine(stroke)
		segment.StrokeWidth = s.StrokeWidth
		segment.Position1 = toPos(view.ToScreen(s.Points[i-1]))
		segment.Position2 = toPos(view.ToScreen(s.Points[i]))
		objects = append(objects, segment)
	}
	return objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	r.background.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.view.Resize(size.Width, size.Height)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
