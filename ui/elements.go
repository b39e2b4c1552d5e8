package ui

// Element constructors for the tags the site uses.

func Html(args ...any) *Node    { return El("html", args...) }
func Head(args ...any) *Node    { return El("head", args...) }
func Body(args ...any) *Node    { return El("body", args...) }
func TitleEl(args ...any) *Node { return El("title", args...) }
func Meta(args ...any) *Node    { return El("meta", args...) }
func LinkEl(args ...any) *Node  { return El("link", args...) }
func Script(args ...any) *Node  { return El("script", args...) }

func Header(args ...any) *Node  { return El("header", args...) }
func Footer(args ...any) *Node  { return El("footer", args...) }
func Main(args ...any) *Node    { return El("main", args...) }
func Nav(args ...any) *Node     { return El("nav", args...) }
func Section(args ...any) *Node { return El("section", args...) }
func Article(args ...any) *Node { return El("article", args...) }

func H1(args ...any) *Node { return El("h1", args...) }
func H2(args ...any) *Node { return El("h2", args...) }
func H3(args ...any) *Node { return El("h3", args...) }

func Div(args ...any) *Node    { return El("div", args...) }
func P(args ...any) *Node      { return El("p", args...) }
func Span(args ...any) *Node   { return El("span", args...) }
func A(args ...any) *Node      { return El("a", args...) }
func Ul(args ...any) *Node     { return El("ul", args...) }
func Li(args ...any) *Node     { return El("li", args...) }
func Button(args ...any) *Node { return El("button", args...) }
func Strong(args ...any) *Node { return El("strong", args...) }
func Em(args ...any) *Node     { return El("em", args...) }

// voidElements are elements that never have closing tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement returns true for tags rendered without a closing tag.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Attribute helpers.

func ID(id string) Attr              { return Attr{Key: "id", Value: id} }
func Class(class string) Attr        { return Attr{Key: "class", Value: class} }
func StyleAttr(style string) Attr    { return Attr{Key: "style", Value: style} }
func Href(href string) Attr          { return Attr{Key: "href", Value: href} }
func Src(src string) Attr            { return Attr{Key: "src", Value: src} }
func Rel(rel string) Attr            { return Attr{Key: "rel", Value: rel} }
func Lang(lang string) Attr          { return Attr{Key: "lang", Value: lang} }
func Charset(cs string) Attr         { return Attr{Key: "charset", Value: cs} }
func Name(name string) Attr          { return Attr{Key: "name", Value: name} }
func Content(content string) Attr    { return Attr{Key: "content", Value: content} }
func TypeAttr(t string) Attr         { return Attr{Key: "type", Value: t} }
func Data(key, value string) Attr    { return Attr{Key: "data-" + key, Value: value} }
func Role(role string) Attr          { return Attr{Key: "role", Value: role} }
func AriaLabel(label string) Attr    { return Attr{Key: "aria-label", Value: label} }
func AriaModal(modal bool) Attr      { return Attr{Key: "aria-modal", Value: boolAttr(modal)} }
func AriaHidden(hidden bool) Attr    { return Attr{Key: "aria-hidden", Value: boolAttr(hidden)} }
func AriaExpanded(exp bool) Attr     { return Attr{Key: "aria-expanded", Value: boolAttr(exp)} }
func AriaPressed(pressed bool) Attr  { return Attr{Key: "aria-pressed", Value: boolAttr(pressed)} }
func AriaLive(mode string) Attr      { return Attr{Key: "aria-live", Value: mode} }
func AriaSelected(sel bool) Attr     { return Attr{Key: "aria-selected", Value: boolAttr(sel)} }
func AriaHasPopup(value string) Attr { return Attr{Key: "aria-haspopup", Value: value} }

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Event helpers.

// OnClick attaches a click handler to an element.
func OnClick(fn func()) Handler {
	return Handler{Event: "click", Fn: fn}
}
