package prefs

import "github.com/verdana-ai/verdana-web/reactive"

// Theme is the document-wide style context. It holds the single style
// variable (`--font-family`) every text-rendering consumer of the page
// reads. Only the Store mutates it; everything else subscribes or reads.
type Theme struct {
	fontFamily *reactive.Signal[string]
}

// NewTheme creates a theme initialized to the default font.
func NewTheme() *Theme {
	return &Theme{
		fontFamily: reactive.NewSignal(DefaultFont().Value),
	}
}

// FontFamily returns the current value of the font style variable.
func (t *Theme) FontFamily() string {
	return t.fontFamily.Get()
}

// Subscribe registers fn to run whenever the font style variable changes.
func (t *Theme) Subscribe(fn func(value string)) reactive.Cleanup {
	return t.fontFamily.Subscribe(fn)
}

// StyleVariable returns the inline style declaration the page layout emits
// on the document root, e.g. `--font-family: system-ui, sans-serif`.
func (t *Theme) StyleVariable() string {
	return "--font-family: " + t.fontFamily.Get()
}

// setFontFamily mutates the style variable. Unexported: the Store is the
// single writer.
func (t *Theme) setFontFamily(value string) {
	t.fontFamily.Set(value)
}
