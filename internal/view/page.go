// Package view renders the site with gomponents. Renderers are pure: they read
// a ui.State and a Links builder and never touch the request.
package view

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"retrosite/internal/ui"
)

// PageProps is everything the root view needs.
type PageProps struct {
	State ui.State
	Links Links
	// PrintOnLoad opens the print dialog once and rewrites the address bar to CleanURL.
	PrintOnLoad bool
	CleanURL    string
}

// Page composes the navbar, the content sections and the popup in fixed order.
func Page(p PageProps) g.Node {
	zoom := p.State.Zoom
	if zoom == 0 {
		zoom = ui.ZoomDefault
	}

	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(siteTitle)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(h.Style(fmt.Sprintf("zoom: %d%%", zoom)),
				Navbar(p.State, p.Links),
				Banner(),
				Requirements(),
				Info(),
				Footer(),
				g.If(p.State.Popup.Visible, Popup(p.State.Popup.Message, p.Links.Action(ui.ActionDismiss))),
				g.If(p.PrintOnLoad, h.Script(h.Src("/static/print.js"), h.Data("clean-url", p.CleanURL))),
			),
		),
	)
}
