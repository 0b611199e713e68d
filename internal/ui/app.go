package ui

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/export"
	"FreehandBoard/internal/state"
	"FreehandBoard/internal/tool"
)

// Board bundles the widgets of one whiteboard window.
type Board struct {
	Doc     *state.Document
	Widget  *BoardWidget
	Form    *settingsForm
	Panel   *saveLoadPanel
	Status  *widget.Label
	Tools   *tool.Controller
	cfg     *config.Config
	onError func(error)
}

// NewBoard wires the document, settings form, drawing widget and
// save/load panel together.
func NewBoard(cfg *config.Config) *Board {
	doc := state.NewDocument()
	form := newSettingsForm(cfg.ToolDefaults())
	tools := tool.NewController(form, cfg.ToolDefaults())
	tools.Read()

	b := &Board{
		Doc:    doc,
		Form:   form,
		Tools:  tools,
		Panel:  newSaveLoadPanel(),
		Status: widget.NewLabel("Ready"),
		cfg:    cfg,
	}
	b.Widget = NewBoardWidget(doc, tools, cfg.InputOptions())
	b.Widget.OnExport = b.Panel.SetExport

	form.OnChanged = func() { tools.Read() }
	b.Panel.OnLoad = loadInto(doc, func() {
		b.Widget.Sync()
		b.SetStatus(fmt.Sprintf("Loaded %d shapes", doc.Len()))
	})
	b.Panel.OnError = b.showError
	b.Panel.OnInfo = b.SetStatus
	return b
}

func (b *Board) SetStatus(text string) {
	b.Status.SetText(text)
}

func (b *Board) showError(err error) {
	b.SetStatus(err.Error())
	if b.onError != nil {
		b.onError(err)
	}
}

// Clear removes every shape from the board.
func (b *Board) Clear() {
	b.Doc.Clear()
	b.Widget.Sync()
	b.SetStatus("Board cleared")
}

func (b *Board) exportName(ext string) string {
	id := b.Doc.SessionID()
	if len(id) > 8 {
		id = id[:8]
	}
	return b.cfg.ExportPath(fmt.Sprintf("board-%s.%s", id, ext))
}

// ExportPDF writes the board to a PDF in the export directory.
func (b *Board) ExportPDF() {
	path := b.exportName("pdf")
	b.reportExport(path, export.PDF(path, b.Doc.Shapes(), b.Doc.SessionID()))
}

// ExportPNG writes the board to a PNG in the export directory.
func (b *Board) ExportPNG() {
	path := b.exportName("png")
	b.reportExport(path, export.PNG(path, b.Doc.Shapes(), b.cfg.Export.PNGMargin))
}

func (b *Board) reportExport(path string, err error) {
	switch {
	case errors.Is(err, export.ErrEmptyDocument):
		b.SetStatus("Nothing to export")
	case err != nil:
		log.Printf("[UI] Export failed: %v", err)
		b.showError(err)
	default:
		b.SetStatus("Exported " + path)
	}
}

// Content lays out the toolbar, board, save/load panel and status bar.
func (b *Board) Content() fyne.CanvasObject {
	toolbar := NewToolbar(b.Form, Actions{
		Clear:     b.Clear,
		ExportPDF: b.ExportPDF,
		ExportPNG: b.ExportPNG,
	})
	split := container.NewHSplit(b.Widget, b.Panel.content())
	split.Offset = 0.75
	return container.NewBorder(toolbar, b.Status, nil, nil, split)
}

func RunApp(cfg *config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("FreehandBoard")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	board := NewBoard(cfg)
	board.onError = func(err error) { dialog.ShowError(err, myWindow) }

	myWindow.SetContent(board.Content())
	myWindow.Canvas().Focus(board.Widget)
	log.Printf("[UI] Board %s ready", board.Doc.SessionID())
	myWindow.ShowAndRun()
}
