// Package ui is the minimal HTML DSL for the Verdana site.
//
// Components return *Node trees from plain Go functions:
//
//	func Hello(name string) *ui.Node {
//	    return ui.Div(ui.Class("greeting"),
//	        ui.H1(ui.Text("Hello, "+name)),
//	    )
//	}
//
// Trees are rendered to HTML by a Renderer, which also assigns view IDs to
// interactive elements and collects their handlers so the live session can
// route client events back to server-side callbacks.
package ui
