package tool

import (
	"math"
	"strconv"
	"strings"

	"FreehandBoard/internal/state"
)

// Mode selects how pointer gestures are interpreted.
type Mode int

const (
	ModeDraw Mode = iota
	ModeMove
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeDelete:
		return "del"
	default:
		return "draw"
	}
}

// Modes lists the form options in toolbar order.
var Modes = []Mode{ModeMove, ModeDraw, ModeDelete}

// ParseMode reads a form value, falling back to draw.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draw":
		return ModeDraw, true
	case "move":
		return ModeMove, true
	case "del", "delete":
		return ModeDelete, true
	}
	return ModeDraw, false
}

// DigitMode maps the 1/2/3 hotkeys to modes.
func DigitMode(digit rune) (Mode, bool) {
	switch digit {
	case '1':
		return ModeMove, true
	case '2':
		return ModeDraw, true
	case '3':
		return ModeDelete, true
	}
	return 0, false
}

const (
	DefaultColor = "#000000"
	DefaultWidth = float32(6)
)

// Defaults are used whenever the form holds nothing usable.
type Defaults struct {
	Mode  Mode
	Color string
	Width float32
}

func DefaultDefaults() Defaults {
	return Defaults{Mode: ModeDraw, Color: DefaultColor, Width: DefaultWidth}
}

// ParseWidth normalizes a stroke width. Anything non-numeric or below 1
// yields the default.
func ParseWidth(s string, def float32) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return def
	}
	return float32(v)
}

// Settings is a normalized snapshot of the tool form.
type Settings struct {
	Mode  Mode
	Color string
	Width float32
}

// Form is the settings form the controller reads from.
type Form interface {
	Mode() string
	Color() string
	Width() string
	SetMode(mode string)
}

// Controller holds the current mode, color and width.
type Controller struct {
	form     Form
	defaults Defaults
	current  Settings
}

func NewController(form Form, defaults Defaults) *Controller {
	c := &Controller{
		form:     form,
		defaults: defaults,
		current:  Settings{Mode: defaults.Mode, Color: defaults.Color, Width: defaults.Width},
	}
	return c
}

// Read re-reads the form. Malformed values are silently replaced by the
// defaults.
func (c *Controller) Read() Settings {
	if c.form == nil {
		return c.current
	}
	mode, ok := ParseMode(c.form.Mode())
	if !ok {
		mode = c.defaults.Mode
	}
	color := strings.TrimSpace(c.form.Color())
	if _, err := state.ParseColor(color); err != nil {
		color = c.defaults.Color
	}
	c.current = Settings{
		Mode:  mode,
		Color: color,
		Width: ParseWidth(c.form.Width(), c.defaults.Width),
	}
	return c.current
}

// SetMode switches the mode and reflects it back into the form.
func (c *Controller) SetMode(m Mode) {
	c.current.Mode = m
	if c.form != nil {
		c.form.SetMode(m.String())
	}
}

func (c *Controller) Current() Settings {
	return c.current
}
