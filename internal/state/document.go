package state

import (
	"log"
	"sync"
)

// Hit is the result of a hit-test against the Document.
type Hit struct {
	Found bool
	ID    string
}

// Document is the ordered set of shapes on the board. Insertion order is
// drawing order, so later shapes render on top.
type Document struct {
	sessionID string
	clock     idClock
	shapes    []Shape
	selected  map[string]bool
	mu        sync.RWMutex
}

// NewDocument creates an empty board with a fresh session id.
func NewDocument() *Document {
	return &Document{
		sessionID: newSessionID(),
		shapes:    make([]Shape, 0),
		selected:  make(map[string]bool),
	}
}

// SessionID identifies this running board.
func (d *Document) SessionID() string {
	return d.sessionID
}

// Add appends s, assigning the next id when s has none, and returns the
// stored shape.
func (d *Document) Add(s Shape) Shape {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clock.observe(s.ID)
	if s.ID == "" || d.indexLocked(s.ID) >= 0 {
		s.ID = d.clock.tick()
	}
	s = s.Clone()
	d.shapes = append(d.shapes, s)

	log.Printf("[DOC] Shape added: %s (%s)", s.ID, s.Kind.Tag())
	return s
}

// Remove deletes the shape with the given id.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.removeLocked(id)
}

func (d *Document) removeLocked(id string) bool {
	for i, s := range d.shapes {
		if s.ID == id {
			d.shapes = append(d.shapes[:i], d.shapes[i+1:]...)
			delete(d.selected, id)
			log.Printf("[DOC] Shape removed: %s", id)
			return true
		}
	}
	return false
}

// Clear empties the board and the selection.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shapes = make([]Shape, 0)
	d.selected = make(map[string]bool)
}

// Shapes returns a copy of all shapes in drawing order.
func (d *Document) Shapes() []Shape {
	d.mu.RLock()
	defer d.mu.RUnlock()

	shapes := make([]Shape, 0, len(d.shapes))
	for _, s := range d.shapes {
		shapes = append(shapes, s.Clone())
	}
	return shapes
}

func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.shapes)
}

func (d *Document) Get(id string) (Shape, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, s := range d.shapes {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return Shape{}, false
}

// Translate moves the shape with the given id by delta.
func (d *Document) Translate(id string, delta Point) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.shapes {
		if d.shapes[i].ID == id {
			d.shapes[i].Translate(delta)
			return true
		}
	}
	return false
}

// Select marks id as selected. Unknown ids are ignored so the selection
// only ever references shapes on the board.
func (d *Document) Select(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.indexLocked(id) < 0 {
		return false
	}
	d.selected[id] = true
	return true
}

func (d *Document) Deselect(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.selected, id)
}

func (d *Document) ClearSelection() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = make(map[string]bool)
}

func (d *Document) IsSelected(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selected[id]
}

// Selected returns the selected ids in drawing order.
func (d *Document) Selected() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, 0, len(d.selected))
	for _, s := range d.shapes {
		if d.selected[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// RemoveSelected deletes every selected shape and returns their ids.
func (d *Document) RemoveSelected() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := make([]string, 0, len(d.selected))
	kept := make([]Shape, 0, len(d.shapes))
	for _, s := range d.shapes {
		if d.selected[s.ID] {
			removed = append(removed, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	d.shapes = kept
	d.selected = make(map[string]bool)

	if len(removed) > 0 {
		log.Printf("[DOC] Removed %d selected shapes", len(removed))
	}
	return removed
}

// SelectInRect replaces the selection with every shape whose outline
// crosses the boundary of r or whose interior point lies inside r.
func (d *Document) SelectInRect(r Rect) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	edges := r.Edges()
	d.selected = make(map[string]bool)
	ids := make([]string, 0)
	for _, s := range d.shapes {
		hit := r.Contains(s.InteriorPoint())
		if !hit && r.Overlaps(s.BoundingBox()) {
			hit = polylinesIntersect(edges, s.Outline())
		}
		if hit {
			d.selected[s.ID] = true
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// HitTest finds the top-most shape whose stroke lies under p.
func (d *Document) HitTest(p Point, tol float32) Hit {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i].HitTest(p, tol) {
			return Hit{Found: true, ID: d.shapes[i].ID}
		}
	}
	return Hit{}
}

func (d *Document) indexLocked(id string) int {
	for i, s := range d.shapes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// replace swaps in a freshly imported shape list.
func (d *Document) replace(shapes []Shape) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.shapes = make([]Shape, 0, len(shapes))
	d.selected = make(map[string]bool)
	for _, s := range shapes {
		d.clock.observe(s.ID)
		d.shapes = append(d.shapes, s)
	}
	log.Printf("[DOC] Loaded %d shapes", len(shapes))
}
