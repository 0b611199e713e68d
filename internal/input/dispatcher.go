package input

import (
	"log"

	"FreehandBoard/internal/state"
	"FreehandBoard/internal/tool"
)

// State is the gesture currently in progress.
type State int

const (
	Idle State = iota
	Drawing
	BoxSelecting
	Panning
	MovingSelection
	Deleting
)

func (s State) String() string {
	switch s {
	case Drawing:
		return "drawing"
	case BoxSelecting:
		return "box-selecting"
	case Panning:
		return "panning"
	case MovingSelection:
		return "moving"
	case Deleting:
		return "deleting"
	default:
		return "idle"
	}
}

// Key is a keyboard key the dispatcher cares about.
type Key int

const (
	KeyOther Key = iota
	KeyShift
	KeyQ
	KeyW
	KeyE
	KeyS
	KeySpace
	KeySpecial // pause or the platform meta key
	Key1
	Key2
	Key3
	KeyBackspace
	KeyDelete
)

func (k Key) digit() rune {
	switch k {
	case Key1:
		return '1'
	case Key2:
		return '2'
	case Key3:
		return '3'
	}
	return 0
}

// Options tune hit-testing and shape construction.
type Options struct {
	HitTolerance      float32
	SimplifyTolerance float64
	CornerRadius      float32
}

func DefaultOptions() Options {
	return Options{
		HitTolerance:      4,
		SimplifyTolerance: state.DefaultSimplifyTolerance,
		CornerRadius:      6,
	}
}

// Dispatcher turns pointer and key events into edits of the Document,
// based on the current mode and the held modifier keys.
type Dispatcher struct {
	doc   *state.Document
	tools *tool.Controller
	view  *View
	opts  Options

	OnChange func()
	OnExport func(text string)

	held     map[Key]bool
	special  bool
	settings tool.Settings

	state       State
	anchor      state.Point // widget space
	anchorDoc   state.Point
	startCenter state.Point
	last        state.Point
	draft       *state.Shape
	overlay     *state.Rect
	target      string
}

func NewDispatcher(doc *state.Document, tools *tool.Controller, view *View, opts Options) *Dispatcher {
	return &Dispatcher{
		doc:      doc,
		tools:    tools,
		view:     view,
		opts:     opts,
		held:     make(map[Key]bool),
		settings: tools.Current(),
	}
}

func (d *Dispatcher) State() State { return d.state }

func (d *Dispatcher) View() *View { return d.view }

func (d *Dispatcher) Held(k Key) bool { return d.held[k] }

// Target is the shape picked for moving by hovering with s held.
func (d *Dispatcher) Target() string { return d.target }

// Draft returns the shape being drawn, if any.
func (d *Dispatcher) Draft() (state.Shape, bool) {
	if d.draft == nil {
		return state.Shape{}, false
	}
	return d.draft.Clone(), true
}

// Overlay returns the box-select rectangle in document space.
func (d *Dispatcher) Overlay() (state.Rect, bool) {
	if d.overlay == nil {
		return state.Rect{}, false
	}
	return *d.overlay, true
}

// PointerDown starts a gesture at p, given in widget coordinates.
func (d *Dispatcher) PointerDown(p state.Point) {
	d.settings = d.tools.Read()
	if !(d.settings.Mode == tool.ModeMove && d.held[KeyS]) {
		d.doc.ClearSelection()
	}

	d.anchor = p
	d.anchorDoc = d.view.ToDocument(p)
	d.last = d.anchorDoc
	d.startCenter = d.view.Center()
	d.draft, d.overlay = nil, nil

	switch {
	case d.held[KeyShift]:
		d.state = BoxSelecting
	case (d.held[KeyQ] || d.held[KeyW]) && d.settings.Mode != tool.ModeMove:
		// shape sub-modes are built on drag; in move mode q and w lock
		// the pan axis instead
		d.state = Idle
	default:
		switch d.settings.Mode {
		case tool.ModeDraw:
			s := state.NewPath(d.anchorDoc, d.settings.Color, d.settings.Width)
			d.draft = &s
			d.state = Drawing
		case tool.ModeDelete:
			d.state = Deleting
			if hit := d.doc.HitTest(d.anchorDoc, d.opts.HitTolerance); hit.Found {
				d.doc.Remove(hit.ID)
				if d.target == hit.ID {
					d.target = ""
				}
				d.export()
			}
		case tool.ModeMove:
			d.state = Panning
			if d.held[KeyS] {
				d.state = MovingSelection
			}
		}
	}
	d.changed()
}

// PointerDrag continues the gesture with the button held at p.
func (d *Dispatcher) PointerDrag(p state.Point) {
	pd := d.view.ToDocument(p)

	switch d.state {
	case BoxSelecting:
		r := state.NewRect(d.anchorDoc, pd)
		d.overlay = &r
		d.doc.SelectInRect(r)
	case Idle:
		if d.settings.Mode == tool.ModeDraw {
			if s, ok := d.shapeDraft(pd); ok {
				d.draft = &s
			}
		}
	case Drawing:
		d.draft.Points = append(d.draft.Points, pd)
	case Panning, MovingSelection:
		if d.held[KeyS] {
			d.state = MovingSelection
			if d.target != "" {
				d.doc.Translate(d.target, pd.Sub(d.last))
			}
		} else {
			if d.state == MovingSelection {
				d.anchor = p
				d.startCenter = d.view.Center()
				d.state = Panning
			}
			d.view.Pan(d.startCenter, d.anchor.Sub(p), d.panAxis())
			pd = d.view.ToDocument(p)
		}
	case Deleting:
		return
	}

	d.last = pd
	d.changed()
}

func (d *Dispatcher) panAxis() Axis {
	switch {
	case d.held[KeyW]:
		return AxisVertical
	case d.held[KeyQ]:
		return AxisHorizontal
	}
	return AxisBoth
}

// shapeDraft builds the rectangle or circle spanned by the anchor and p.
func (d *Dispatcher) shapeDraft(p state.Point) (state.Shape, bool) {
	c, w := d.settings.Color, d.settings.Width
	switch {
	case d.held[KeyQ]:
		return state.NewRectangle(d.anchorDoc, p, d.opts.CornerRadius, c, w), true
	case d.held[KeyW] && d.held[KeyE]:
		return state.NewEllipse(d.anchorDoc, p, c, w), true
	case d.held[KeyW]:
		return state.NewCircle(d.anchorDoc, p, c, w), true
	}
	return state.Shape{}, false
}

// PointerMove handles motion with no button held. In move mode with s
// held it picks the shape under the pointer.
func (d *Dispatcher) PointerMove(p state.Point) {
	if d.state != Idle || d.tools.Current().Mode != tool.ModeMove || !d.held[KeyS] {
		return
	}
	d.doc.ClearSelection()
	d.target = ""
	if hit := d.doc.HitTest(d.view.ToDocument(p), d.opts.HitTolerance); hit.Found {
		d.doc.Select(hit.ID)
		d.target = hit.ID
	}
	d.changed()
}

// PointerUp ends the gesture, committing any drawn shape.
func (d *Dispatcher) PointerUp(p state.Point) {
	if d.draft != nil {
		switch d.state {
		case Drawing:
			d.doc.Add(state.FinalizePath(*d.draft, d.opts.SimplifyTolerance))
		case Idle:
			// the shape key must still be down when the button is released
			if d.held[KeyQ] || d.held[KeyW] {
				d.doc.Add(*d.draft)
			}
		}
	}

	d.state = Idle
	d.draft, d.overlay = nil, nil
	d.anchor, d.anchorDoc, d.last = state.Point{}, state.Point{}, state.Point{}
	d.changed()
	d.export()
}

// KeyDown records k as held. It reports whether the key was consumed and
// must not propagate further.
func (d *Dispatcher) KeyDown(k Key) bool {
	d.settings = d.tools.Read()
	d.held[k] = true

	if k == KeySpace || k == KeySpecial {
		d.special = true
	}
	if d.special {
		if m, ok := tool.DigitMode(k.digit()); ok {
			d.tools.SetMode(m)
			d.settings.Mode = m
			log.Printf("[INPUT] Mode switched to %s", m)
		}
		d.changed()
	}

	if k == KeyBackspace || k == KeyDelete {
		d.doc.RemoveSelected()
		d.doc.ClearSelection()
		d.target = ""
		d.changed()
		d.export()
		return true
	}
	return false
}

func (d *Dispatcher) KeyUp(k Key) {
	delete(d.held, k)

	if k == KeyS && (d.tools.Current().Mode == tool.ModeMove || d.target != "") {
		d.doc.ClearSelection()
		d.target = ""
		d.changed()
	}
	if k == KeySpace || k == KeySpecial {
		d.special = false
	}
}

// ReleaseAll forgets every held key, e.g. when the widget loses focus.
func (d *Dispatcher) ReleaseAll() {
	for k := range d.held {
		d.KeyUp(k)
	}
}

func (d *Dispatcher) changed() {
	if d.OnChange != nil {
		d.OnChange()
	}
}

func (d *Dispatcher) export() {
	if d.OnExport == nil {
		return
	}
	text, err := d.doc.ExportText()
	if err != nil {
		log.Printf("[INPUT] Export failed: %v", err)
		return
	}
	d.OnExport(text)
}
