package editor

import (
	"github.com/dyluth/creational/internal/trace"
	"github.com/dyluth/creational/internal/ui"
)

// Editor is a document editor whose widgets all come from one ui.Factory.
// The widgets are created once in New and never replaced, so an Editor's
// platform family is fixed for its lifetime.
type Editor struct {
	factory ui.Factory
	button  ui.Button
	menu    ui.Menu
	dialog  ui.Dialog
	tracer  *trace.Tracer
}

// New builds an editor and eagerly creates its button, menu and dialog
func New(factory ui.Factory, t *trace.Tracer) *Editor {
	return &Editor{
		factory: factory,
		button:  factory.CreateButton(),
		menu:    factory.CreateMenu(),
		dialog:  factory.CreateDialog(),
		tracer:  t.Named("editor").With(trace.F("platform", string(factory.Platform()))),
	}
}

// Platform is the widget family this editor is bound to
func (e *Editor) Platform() ui.Platform {
	return e.factory.Platform()
}

// Start renders the button and menu
func (e *Editor) Start() {
	e.tracer.Info("Starting document editor...")
	e.button.Render()
	e.menu.Render()
}

// OpenFile shows the dialog around the open action
func (e *Editor) OpenFile() {
	e.dialog.Show()
	e.tracer.Info("Opening file...")
	e.dialog.Close()
}

// SaveFile clicks the button then saves
func (e *Editor) SaveFile() {
	e.button.OnClick()
	e.tracer.Info("Saving file...")
}

func (e *Editor) ChooseMenu() {
	e.menu.Select()
}
