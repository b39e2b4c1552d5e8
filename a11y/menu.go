package a11y

import (
	"github.com/verdana-ai/verdana-web/prefs"
	"github.com/verdana-ai/verdana-web/reactive"
	"github.com/verdana-ai/verdana-web/ui"
)

// Menu is the accessibility preferences panel. It presents the enumerated
// font options and applies + persists a choice the moment it is clicked;
// the visible "Done" action only closes the panel.
//
// The menu does not own its open/closed state: the host passes the flag to
// Render, and a closed menu produces no node tree at all. Its selection
// state lives for the menu's lifetime and is synchronized against the
// preference store once, at construction.
type Menu struct {
	store    *prefs.Store
	selected *reactive.Signal[string]
	onClose  func()
}

// NewMenu creates the menu bound to a preference store. If storage holds a
// previously saved value the selection adopts it and the value is applied
// to the theme, so the page matches storage before any interaction.
func NewMenu(store *prefs.Store, onClose func()) *Menu {
	m := &Menu{
		store:    store,
		selected: reactive.NewSignal(prefs.DefaultFont().Value),
		onClose:  onClose,
	}

	if value, ok := store.Load(); ok {
		m.selected.Set(value)
		store.Apply(value)
	}

	return m
}

// Selected returns the currently selected font value.
func (m *Menu) Selected() string {
	return m.selected.Get()
}

// Render returns the panel's node tree when open, nil when closed.
// Exactly the option equal to the current selection is marked selected;
// an unrecognized selection marks none.
func (m *Menu) Render(isOpen bool) *ui.Node {
	if !isOpen {
		return nil
	}

	selected := m.selected.Get()

	options := make([]*ui.Node, 0, len(prefs.Fonts()))
	for _, font := range prefs.Fonts() {
		font := font
		isSelected := font.Value == selected

		class := "a11y-option"
		if isSelected {
			class += " a11y-option-selected"
		}

		options = append(options, ui.Li(
			ui.Button(
				ui.Class(class),
				ui.AriaPressed(isSelected),
				ui.StyleAttr("font-family: "+font.Value),
				ui.OnClick(func() { m.selectFont(font.Value) }),
				ui.Span(ui.Class("a11y-option-name"), ui.Text(font.Name)),
				ui.Span(ui.Class("a11y-option-desc"), ui.Text(font.Description)),
			),
		))
	}

	return ui.Div(
		ui.Class("a11y-backdrop"),
		ui.OnClick(m.close),
		ui.Div(
			ui.Class("a11y-menu"),
			ui.Role("dialog"),
			ui.AriaModal(true),
			ui.AriaLabel("Accessibility preferences"),
			ui.H2(ui.Text("Accessibility")),
			ui.P(ui.Class("a11y-menu-hint"), ui.Text("Choose a reading font. Your choice applies immediately and is remembered on this device.")),
			ui.Ul(ui.Class("a11y-options"), options),
			ui.Button(
				ui.Class("a11y-done"),
				ui.OnClick(m.close),
				ui.Text("Done"),
			),
		),
	)
}

// selectFont updates the selection and saves the choice. Save applies the
// style variable and persists in one operation.
func (m *Menu) selectFont(value string) {
	m.selected.Set(value)
	m.store.Save(value)
}

func (m *Menu) close() {
	if m.onClose != nil {
		m.onClose()
	}
}
