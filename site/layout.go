package site

import "github.com/verdana-ai/verdana-web/ui"

// Layout wraps page content in the document shell. fontFamily is the
// current value of the document-wide --font-family style variable; every
// text-rendering rule in site.css consumes it. overlay carries the
// interactive region (dock, menu, toasts) that the live session re-renders.
func Layout(title, fontFamily string, content, overlay *ui.Node) *ui.Node {
	return ui.Html(
		ui.Lang("en"),
		ui.StyleAttr("--font-family: "+fontFamily),
		ui.Head(
			ui.Meta(ui.Charset("utf-8")),
			ui.Meta(ui.Name("viewport"), ui.Content("width=device-width, initial-scale=1")),
			ui.TitleEl(ui.Text(title)),
			ui.LinkEl(ui.Rel("stylesheet"), ui.Href("/static/site.css")),
		),
		ui.Body(
			ui.Header(
				ui.Class("site-header"),
				ui.Nav(
					ui.A(ui.Href("/"), ui.Class("brand"), ui.Text("Verdana")),
					ui.A(ui.Href("/privacy"), ui.Text("Privacy")),
				),
			),
			ui.Main(ui.Class("site-main"), content),
			ui.Footer(
				ui.Class("site-footer"),
				ui.P(ui.Text("© 2026 Verdana, the EU Green Deal compliance assistant.")),
			),
			ui.Div(ui.ID("verdana-app"), overlay),
			ui.Script(ui.Src("/static/live.js")),
		),
	)
}
