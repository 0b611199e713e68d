package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/atotto/clipboard"

	"FreehandBoard/internal/state"
)

var errUnparsable = errors.New("text can't be parsed")

// saveLoadPanel shows the serialized board and accepts text to load.
type saveLoadPanel struct {
	save    *widget.Entry
	load    *widget.Entry
	OnLoad  func(text string) error
	OnError func(err error)
	OnInfo  func(msg string)
}

func newSaveLoadPanel() *saveLoadPanel {
	p := &saveLoadPanel{
		save: widget.NewMultiLineEntry(),
		load: widget.NewMultiLineEntry(),
	}
	p.save.Wrapping = fyne.TextWrapBreak
	p.save.SetPlaceHolder("Saved drawing appears here")
	p.load.Wrapping = fyne.TextWrapBreak
	p.load.SetPlaceHolder("Paste a saved drawing and press Load")
	return p
}

// SetExport replaces the save field with the latest serialized board.
func (p *saveLoadPanel) SetExport(text string) {
	p.save.SetText(text)
}

func (p *saveLoadPanel) copyToClipboard() {
	if err := clipboard.WriteAll(p.save.Text); err != nil {
		log.Printf("[UI] Clipboard write failed: %v", err)
		p.fail(fmt.Errorf("copy to clipboard: %w", err))
		return
	}
	p.info("Copied drawing to clipboard")
}

// submitLoad loads the load field into the board. The field is cleared
// whether or not the text parsed.
func (p *saveLoadPanel) submitLoad() {
	text := strings.TrimSpace(p.load.Text)
	defer p.load.SetText("")
	if text == "" || p.OnLoad == nil {
		return
	}
	if err := p.OnLoad(text); err != nil {
		log.Printf("[UI] Load failed: %v", err)
		p.fail(fmt.Errorf("%w\n%w", errUnparsable, err))
	}
}

func (p *saveLoadPanel) fail(err error) {
	if p.OnError != nil {
		p.OnError(err)
	}
}

func (p *saveLoadPanel) info(msg string) {
	if p.OnInfo != nil {
		p.OnInfo(msg)
	}
}

func (p *saveLoadPanel) content() fyne.CanvasObject {
	copyBtn := widget.NewButton("Copy", p.copyToClipboard)
	loadBtn := widget.NewButton("Load", p.submitLoad)
	return container.NewGridWithRows(2,
		container.NewBorder(widget.NewLabel("Save"), copyBtn, nil, nil, p.save),
		container.NewBorder(widget.NewLabel("Load"), loadBtn, nil, nil, p.load),
	)
}

// loadInto returns an OnLoad handler that replaces doc's contents.
func loadInto(doc *state.Document, after func()) func(string) error {
	return func(text string) error {
		if err := doc.Load(text); err != nil {
			return err
		}
		if after != nil {
			after()
		}
		return nil
	}
}
