package uitest

import (
	"testing"

	"github.com/verdana-ai/verdana-web/ui"
)

func TestRenderToString(t *testing.T) {
	node := ui.Div(ui.Class("box"), ui.Text("hello"))

	if got := RenderToString(node); got != `<div class="box">hello</div>` {
		t.Errorf("RenderToString = %q", got)
	}
}

func TestExpectHelpers(t *testing.T) {
	node := ui.Section(
		ui.ID("hero"),
		ui.H1(ui.Text("Welcome")),
	)

	ExpectContains(t, node, "Welcome")
	ExpectNotContains(t, node, "Goodbye")
	ExpectElement(t, node, "h1")
	ExpectAttribute(t, node, "id", "hero")
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate = %q, want abc...", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate = %q, want ab", got)
	}
}
