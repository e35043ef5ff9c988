package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"retrosite/internal/ui"
)

// Links turns navbar transitions into hrefs. The page has no client state, so
// every callback handle is a URL carrying the state it starts from.
type Links interface {
	Menu(m ui.Menu) string
	Action(a ui.Action) string
}

const siteTitle = "Stylized-Text-Editor"

// Navbar renders the title bar, the three menu buttons and the open dropdown.
func Navbar(st ui.State, links Links) g.Node {
	return g.Group{
		h.Div(h.Class("title-bar"),
			h.Span(h.Class("title-text"), g.Text(siteTitle)),
		),
		h.Nav(h.Class("navbar"),
			g.Map(ui.Menus, func(m ui.Menu) g.Node {
				return dropdown(m, st.Menu == m, links)
			}),
		),
	}
}

func dropdown(m ui.Menu, open bool, links Links) g.Node {
	return h.Div(h.Class("dropdown"),
		h.A(h.Class("menu-button"), g.Attr("role", "button"), h.Href(links.Menu(m)),
			g.Attr("aria-expanded", boolAttr(open)),
			g.Text(m.Label()),
		),
		g.If(open, h.Div(h.Class("dropdown-content"), h.Data("menu", string(m)),
			g.Map(ui.Items(m), func(item ui.Item) g.Node {
				return menuItem(item, links)
			}),
		)),
	)
}

func menuItem(item ui.Item, links Links) g.Node {
	return h.A(h.Class("dropdown-item"), h.Href(links.Action(item.Action)),
		g.If(item.External, g.Group{h.Target("_blank"), h.Rel("noopener noreferrer")}),
		g.Text(item.Label),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
