package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"FreehandBoard/internal/tool"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func hexOf(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// settingsForm holds the mode, color and width fields. It is the
// tool.Form the controller reads on every pointer-down and key-down.
type settingsForm struct {
	mode        *widget.Select
	color       *widget.Entry
	width       *widget.Entry
	modeButtons map[tool.Mode]*widget.Button
	OnChanged   func()
}

var _ tool.Form = (*settingsForm)(nil)

func newSettingsForm(defaults tool.Defaults) *settingsForm {
	f := &settingsForm{modeButtons: make(map[tool.Mode]*widget.Button)}

	options := make([]string, 0, len(tool.Modes))
	for _, m := range tool.Modes {
		options = append(options, m.String())
	}
	f.mode = widget.NewSelect(options, func(string) {
		f.highlight()
		f.changed()
	})

	f.color = widget.NewEntry()
	f.color.SetText(defaults.Color)
	f.color.OnChanged = func(string) { f.changed() }

	f.width = widget.NewEntry()
	f.width.SetText(strconv.FormatFloat(float64(defaults.Width), 'f', -1, 32))
	f.width.OnChanged = func(string) { f.changed() }

	for _, m := range tool.Modes {
		f.modeButtons[m] = widget.NewButton(m.String(), func() { f.SetMode(m.String()) })
	}
	f.mode.SetSelected(defaults.Mode.String())
	return f
}

func (f *settingsForm) Mode() string  { return f.mode.Selected }
func (f *settingsForm) Color() string { return f.color.Text }
func (f *settingsForm) Width() string { return f.width.Text }

func (f *settingsForm) SetMode(mode string) {
	if f.mode.Selected != mode {
		f.mode.SetSelected(mode)
	}
}

func (f *settingsForm) SetColor(c color.Color) {
	f.color.SetText(hexOf(c))
}

func (f *settingsForm) SetWidth(w float64) {
	f.width.SetText(strconv.FormatFloat(w, 'f', 0, 64))
}

// highlight marks the button of the selected mode.
func (f *settingsForm) highlight() {
	selected, _ := tool.ParseMode(f.mode.Selected)
	for m, btn := range f.modeButtons {
		if m == selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (f *settingsForm) changed() {
	if f.OnChanged != nil {
		f.OnChanged()
	}
}

// Actions are the toolbar callbacks.
type Actions struct {
	Clear     func()
	ExportPDF func()
	ExportPNG func()
}

// --- The Main Toolbar ---
func NewToolbar(form *settingsForm, actions Actions) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), actions.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), actions.ExportPDF),
		widget.NewToolbarAction(theme.FileImageIcon(), actions.ExportPNG),
	)

	modeBox := container.NewHBox()
	for _, m := range tool.Modes {
		modeBox.Add(form.modeButtons[m])
	}

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		form.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(float64(tool.ParseWidth(form.Width(), tool.DefaultWidth)))
	strokeSlider.OnChanged = form.SetWidth
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	fields := container.New(layout.NewGridWrapLayout(fyne.NewSize(90, 35)), form.color, form.width)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Mode:"),
		form.mode,
		modeBox,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Hex / Width:"),
		fields,
		sliderContainer,
		layout.NewSpacer(),
	)
}
