package a11y

import (
	"github.com/verdana-ai/verdana-web/prefs"
	"github.com/verdana-ai/verdana-web/reactive"
	"github.com/verdana-ai/verdana-web/ui"
)

// Dock is the small corner control that toggles the accessibility menu.
// It owns exactly one piece of state, the menu's open flag; it knows
// nothing about the font preference itself.
type Dock struct {
	open *reactive.Signal[bool]
	menu *Menu
}

// NewDock creates the dock and its menu. The menu is constructed (mounted)
// here, which is when it synchronizes against the preference store.
func NewDock(store *prefs.Store) *Dock {
	d := &Dock{open: reactive.NewSignal(false)}
	d.menu = NewMenu(store, d.close)
	return d
}

// Open opens the accessibility menu.
func (d *Dock) Open() {
	d.open.Set(true)
}

// IsOpen reports whether the menu is currently open.
func (d *Dock) IsOpen() bool {
	return d.open.Get()
}

// Menu returns the dock's menu.
func (d *Dock) Menu() *Menu {
	return d.menu
}

// Render emits the trigger button and, when open, the menu.
func (d *Dock) Render() *ui.Node {
	isOpen := d.open.Get()

	return ui.Div(
		ui.Class("dock"),
		ui.Button(
			ui.Class("dock-trigger"),
			ui.AriaLabel("Accessibility preferences"),
			ui.AriaHasPopup("dialog"),
			ui.AriaExpanded(isOpen),
			ui.OnClick(d.Open),
			ui.Text("Aa"),
		),
		d.menu.Render(isOpen),
	)
}

func (d *Dock) close() {
	d.open.Set(false)
}
