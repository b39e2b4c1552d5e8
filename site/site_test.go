package site

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/verdana-ai/verdana-web/ui"
	"github.com/verdana-ai/verdana-web/uitest"
)

func TestLayoutEmitsStyleVariable(t *testing.T) {
	doc := Layout("Verdana", "Georgia, serif", Home(), nil)

	html := ui.RenderString(doc)
	if !strings.Contains(html, "--font-family: Georgia, serif") {
		t.Errorf("document root missing style variable:\n%.300s", html)
	}
	if !strings.Contains(html, "<title>Verdana</title>") {
		t.Errorf("title missing:\n%.300s", html)
	}

	uitest.ExpectAttribute(t, doc, "id", "verdana-app")
	uitest.ExpectContains(t, doc, "/static/live.js")
}

func TestHomeContent(t *testing.T) {
	home := Home()

	for _, want := range []string{"Meet Verdana", "EU Green Deal", "Start a conversation"} {
		uitest.ExpectContains(t, home, want)
	}
	uitest.ExpectElement(t, home, "h1")
}

func TestPrivacyContent(t *testing.T) {
	privacy := Privacy()

	for _, want := range []string{
		"Privacy Policy",
		"accessibility-font",
		"local storage",
		"GDPR",
		"privacy@verdana.eu",
	} {
		uitest.ExpectContains(t, privacy, want)
	}
	uitest.ExpectNotContains(t, privacy, "data-vid")
}

func TestAssetsEmbedded(t *testing.T) {
	assets := AssetsFS()

	for _, name := range []string{"site.css", "live.js"} {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			t.Fatalf("asset %s not embedded: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("asset %s is empty", name)
		}
	}
}
