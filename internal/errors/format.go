package errors

import "strings"

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorWhite  = "\033[37m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

// color wraps text in ANSI color codes if colors are enabled.
func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string    { return color(colorRed, text) }
func yellow(text string) string { return color(colorYellow, text) }
func white(text string) string  { return color(colorWhite, text) }
func bold(text string) string   { return color(colorBold, text) }

// Format returns a formatted error message for terminal display.
func (e *SiteError) Format() string {
	var b strings.Builder

	b.WriteString(red(bold("ERROR ")))
	b.WriteString(white(bold(string(e.Category) + ": ")))
	b.WriteString(white(e.Message))
	b.WriteString("\n")

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(white(e.Wrapped.Error()))
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n")
		b.WriteString(yellow(bold("hint: ")))
		b.WriteString(e.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}
