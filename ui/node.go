package ui

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a server-side HTML node. Trees of Nodes are what components
// return from Render and what the renderer turns into HTML.
type Node struct {
	Kind     Kind
	Tag      string            // Element tag name (e.g., "div")
	Attrs    []Attr            // Ordered attributes
	Handlers map[string]func() // Event name ("click") -> handler
	Children []*Node
	Text     string // For KindText and KindRaw
	VID      string // View ID (assigned during render for interactive nodes)
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Handler represents an event handler to attach to an element.
type Handler struct {
	Event string // "click", "input", etc.
	Fn    func()
}

// IsInteractive returns true if this node has event handlers and needs a VID.
func (n *Node) IsInteractive() bool {
	return n != nil && n.Kind == KindElement && len(n.Handlers) > 0
}

// El constructs an element node. Args may be Attr, Handler, *Node,
// []*Node, or string (which becomes a text child). Nil nodes are skipped,
// which makes conditional children ergonomic.
func El(tag string, args ...any) *Node {
	n := &Node{Kind: KindElement, Tag: tag}
	for _, arg := range args {
		n.apply(arg)
	}
	return n
}

func (n *Node) apply(arg any) {
	switch v := arg.(type) {
	case nil:
	case Attr:
		if !v.IsEmpty() {
			n.Attrs = append(n.Attrs, v)
		}
	case Handler:
		if v.Fn != nil {
			if n.Handlers == nil {
				n.Handlers = make(map[string]func())
			}
			n.Handlers[v.Event] = v.Fn
		}
	case *Node:
		if v != nil {
			n.Children = append(n.Children, v)
		}
	case []*Node:
		for _, child := range v {
			if child != nil {
				n.Children = append(n.Children, child)
			}
		}
	case string:
		n.Children = append(n.Children, Text(v))
	default:
		// Unknown arg types become escaped text so mistakes are visible.
		n.Children = append(n.Children, Text(fmt.Sprint(v)))
	}
}

// Text creates a plain text node. Content is escaped during render.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a raw HTML node. The content is emitted verbatim, so it must
// come from a trusted source.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*Node) *Node {
	n := &Node{Kind: KindFragment}
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// If returns node when condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue when condition holds, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}
