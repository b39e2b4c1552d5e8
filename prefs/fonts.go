package prefs

// StorageKey is the key the font preference is persisted under in the
// browser's localStorage.
const StorageKey = "accessibility-font"

// FontOption describes one selectable font in the accessibility menu.
type FontOption struct {
	// Name is the label shown to the user.
	Name string

	// Value is the CSS font-family stack applied and persisted.
	Value string

	// Description explains who the font helps.
	Description string
}

// fontOptions is the closed set of fonts the menu offers. The first entry
// is the default.
var fontOptions = []FontOption{
	{
		Name:        "System default",
		Value:       "system-ui, sans-serif",
		Description: "The standard interface font of your device.",
	},
	{
		Name:        "Atkinson Hyperlegible",
		Value:       "'Atkinson Hyperlegible', sans-serif",
		Description: "High-legibility font developed by the Braille Institute.",
	},
	{
		Name:        "OpenDyslexic",
		Value:       "'OpenDyslexic', sans-serif",
		Description: "Weighted letterforms that help dyslexic readers.",
	},
	{
		Name:        "Serif",
		Value:       "Georgia, 'Times New Roman', serif",
		Description: "Classic serif type for long-form reading.",
	},
}

// Fonts returns the enumerated set of font options.
func Fonts() []FontOption {
	out := make([]FontOption, len(fontOptions))
	copy(out, fontOptions)
	return out
}

// DefaultFont returns the fixed fallback font descriptor.
func DefaultFont() FontOption {
	return fontOptions[0]
}
