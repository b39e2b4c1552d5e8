package ui

import (
	"fmt"
	"io"
	"strings"
)

// Renderer turns a Node tree into HTML. Interactive nodes (those with
// event handlers) are assigned stable view IDs during the walk and their
// handlers are collected into a registry keyed "vid:event" so the live
// session can route client events back to them.
type Renderer struct {
	vidCounter int
	handlers   map[string]func()
}

// NewRenderer creates a Renderer with an empty handler registry.
func NewRenderer() *Renderer {
	return &Renderer{handlers: make(map[string]func())}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *Node) (string, error) {
	var buf strings.Builder
	if err := r.renderNode(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Handlers returns the handler registry collected during rendering.
// Keys are in the format "vid:event" (e.g., "v1:click").
func (r *Renderer) Handlers() map[string]func() {
	return r.handlers
}

// Reset clears the VID counter and handler registry for reuse.
func (r *Renderer) Reset() {
	r.vidCounter = 0
	r.handlers = make(map[string]func())
}

func (r *Renderer) renderNode(w io.Writer, node *Node) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindElement:
		return r.renderElement(w, node)
	case KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("ui: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *Node) error {
	if node.Tag == "" {
		return fmt.Errorf("ui: element node with empty tag")
	}

	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}

	if node.IsInteractive() {
		r.vidCounter++
		node.VID = fmt.Sprintf("v%d", r.vidCounter)
		for event, fn := range node.Handlers {
			r.handlers[node.VID+":"+event] = fn
		}
		if _, err := io.WriteString(w, ` data-vid="`+node.VID+`"`); err != nil {
			return err
		}
	}

	for _, attr := range node.Attrs {
		if _, err := io.WriteString(w, " "+attr.Key+`="`+escapeAttr(attr.Value)+`"`); err != nil {
			return err
		}
	}

	if IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+node.Tag+">")
	return err
}

// RenderString renders a node tree, discarding handler wiring and errors.
// Intended for tests and static pages.
func RenderString(node *Node) string {
	html, err := NewRenderer().RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard entities it escapes whitespace characters
// that could break attribute parsing.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
