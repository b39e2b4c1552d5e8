// Package a11y contains the accessibility surface of the site: the dock
// control and the font preferences menu it opens.
package a11y
