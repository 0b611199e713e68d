package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument is wrapped by every Import failure.
var ErrMalformedDocument = errors.New("malformed document")

type vec [2]float32

func toVec(p Point) *vec   { return &vec{p.X, p.Y} }
func (v vec) point() Point { return Point{X: v[0], Y: v[1]} }

// shapePayload is the geometry half of a serialized [tag, payload] pair.
type shapePayload struct {
	ID          string  `json:"id"`
	Points      []vec   `json:"points,omitempty"`
	From        *vec    `json:"from,omitempty"`
	To          *vec    `json:"to,omitempty"`
	Radius      float32 `json:"radius,omitempty"`
	Center      *vec    `json:"center,omitempty"`
	Radii       *vec    `json:"radii,omitempty"`
	StrokeColor string  `json:"strokeColor"`
	StrokeWidth float32 `json:"strokeWidth"`
}

func payloadOf(s Shape) shapePayload {
	p := shapePayload{ID: s.ID, StrokeColor: s.StrokeColor, StrokeWidth: s.StrokeWidth}
	switch s.Kind {
	case KindRectangle:
		p.From, p.To, p.Radius = toVec(s.Bounds.Min), toVec(s.Bounds.Max), s.Radius
	case KindCircle:
		p.Center, p.Radii = toVec(s.Center), toVec(s.Radii)
	default:
		p.Points = make([]vec, 0, len(s.Points))
		for _, pt := range s.Points {
			p.Points = append(p.Points, vec{pt.X, pt.Y})
		}
	}
	return p
}

func (p shapePayload) shape(kind Kind) (Shape, error) {
	s := Shape{ID: p.ID, Kind: kind, StrokeColor: p.StrokeColor, StrokeWidth: p.StrokeWidth}
	switch kind {
	case KindRectangle:
		if p.From == nil || p.To == nil {
			return Shape{}, fmt.Errorf("rectangle %s: missing corners", p.ID)
		}
		s.Bounds, s.Radius = NewRect(p.From.point(), p.To.point()), p.Radius
	case KindCircle:
		if p.Center == nil || p.Radii == nil {
			return Shape{}, fmt.Errorf("circle %s: missing center or radii", p.ID)
		}
		s.Center, s.Radii = p.Center.point(), p.Radii.point()
	default:
		if len(p.Points) == 0 {
			return Shape{}, fmt.Errorf("path %s: no points", p.ID)
		}
		s.Points = make([]Point, 0, len(p.Points))
		for _, v := range p.Points {
			s.Points = append(s.Points, v.point())
		}
	}
	return s, nil
}

// Export serializes shapes as a JSON array of [tag, payload] pairs.
func Export(shapes []Shape) ([]byte, error) {
	pairs := make([][2]any, 0, len(shapes))
	for _, s := range shapes {
		pairs = append(pairs, [2]any{s.Kind.Tag(), payloadOf(s)})
	}
	return json.Marshal(pairs)
}

// Import parses text produced by Export.
func Import(text string) ([]Shape, error) {
	var pairs []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &pairs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if pairs == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformedDocument)
	}

	shapes := make([]Shape, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for i, raw := range pairs {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedDocument, i, err)
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d: want [tag, payload], got %d elements", ErrMalformedDocument, i, len(pair))
		}

		var tag string
		if err := json.Unmarshal(pair[0], &tag); err != nil {
			return nil, fmt.Errorf("%w: entry %d: tag: %w", ErrMalformedDocument, i, err)
		}
		kind, ok := kindFromTag(tag)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d: unknown tag %q", ErrMalformedDocument, i, tag)
		}

		var p shapePayload
		if err := json.Unmarshal(pair[1], &p); err != nil {
			return nil, fmt.Errorf("%w: entry %d: payload: %w", ErrMalformedDocument, i, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("%w: entry %d: missing id", ErrMalformedDocument, i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: entry %d: duplicate id %s", ErrMalformedDocument, i, p.ID)
		}
		seen[p.ID] = true

		s, err := p.shape(kind)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedDocument, i, err)
		}
		shapes = append(shapes, s)
	}
	return shapes, nil
}

// Load replaces the board with the shapes parsed from text. On error the
// board is left as it was.
func (d *Document) Load(text string) error {
	shapes, err := Import(text)
	if err != nil {
		return err
	}
	d.replace(shapes)
	return nil
}

// ExportText serializes the whole board for the save field.
func (d *Document) ExportText() (string, error) {
	data, err := Export(d.Shapes())
	if err != nil {
		return "", fmt.Errorf("export document: %w", err)
	}
	return string(data), nil
}
