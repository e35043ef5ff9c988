package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Popup is a modal overlay with one acknowledgement link pointing at dismiss.
func Popup(message, dismiss string) g.Node {
	return h.Div(h.Class("popup-overlay"),
		h.Div(h.Class("popup"), g.Attr("role", "dialog"), g.Attr("aria-modal", "true"),
			h.P(h.Class("popup-message"), g.Text(message)),
			h.A(h.Class("popup-button"), h.Href(dismiss), g.Attr("autofocus"), g.Text("OK")),
		),
	)
}
