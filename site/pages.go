package site

import "github.com/verdana-ai/verdana-web/ui"

// Home is the landing page content.
func Home() *ui.Node {
	return ui.Fragment(
		ui.Section(
			ui.Class("hero"),
			ui.H1(ui.Text("Meet Verdana")),
			ui.P(ui.Class("tagline"), ui.Text("Your conversational guide to the EU Green Deal. Ask about CBAM, CSRD, the EU taxonomy or any other green policy, and get answers grounded in the official documents.")),
			ui.A(ui.Href("/chat"), ui.Class("cta"), ui.Text("Start a conversation")),
		),
		ui.Section(
			ui.Class("features"),
			ui.Article(
				ui.H2(ui.Text("Grounded answers")),
				ui.P(ui.Text("Every EU policy answer cites the regulations and guidance documents it came from, so you can verify the source yourself.")),
			),
			ui.Article(
				ui.H2(ui.Text("Always current")),
				ui.P(ui.Text("Verdana cross-checks its document library against the latest published updates before answering compliance questions.")),
			),
			ui.Article(
				ui.H2(ui.Text("Built for everyone")),
				ui.P(ui.Text("Adjustable reading fonts and an accessible interface. Use the Aa button in the corner to make the site comfortable for you.")),
			),
		),
	)
}

// Privacy is the privacy policy page content.
func Privacy() *ui.Node {
	return ui.Article(
		ui.Class("privacy"),
		ui.H1(ui.Text("Privacy Policy")),
		ui.P(ui.Text("This policy explains what data the Verdana website handles and why. The short version: we keep as little as possible, and nothing leaves your browser without a reason.")),

		ui.Section(
			ui.H2(ui.Text("What we store on your device")),
			ui.P(ui.Text("The site stores a single preference in your browser's local storage: your chosen reading font, under the key \"accessibility-font\". It never leaves your device, and clearing your browser storage removes it. No tracking cookies, no analytics identifiers.")),
		),
		ui.Section(
			ui.H2(ui.Text("Conversations")),
			ui.P(ui.Text("Questions you ask the assistant are processed to generate an answer and to retrieve relevant EU policy documents. Conversations are not used to build profiles and are not sold or shared with advertisers.")),
		),
		ui.Section(
			ui.H2(ui.Text("Third-party services")),
			ui.P(ui.Text("Answer generation relies on external language-model and web-search providers. Only the text needed to answer your question is sent to them; they receive no account or device identifiers from us.")),
		),
		ui.Section(
			ui.H2(ui.Text("Your rights")),
			ui.P(ui.Text("Under the GDPR you may request access to or deletion of any personal data we hold. Since the site itself stores nothing about you server-side, this usually applies only to conversation logs.")),
		),
		ui.Section(
			ui.H2(ui.Text("Contact")),
			ui.P(
				ui.Text("Questions about this policy? Write to "),
				ui.A(ui.Href("mailto:privacy@verdana.eu"), ui.Text("privacy@verdana.eu")),
				ui.Text("."),
			),
		),
	)
}
