package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"retrosite/internal/ui"
)

// ScreenshotPath is the banner image served from the asset directory.
const ScreenshotPath = "/screenshot.png"

func underlined(text string) g.Node {
	return g.El("u", g.Text(text))
}

func Banner() g.Node {
	return h.Section(h.Class("panel banner"),
		h.Div(h.Class("banner-header"),
			h.H1(g.Text("Welcome to My Text Editor")),
			h.P(g.Text("A simple, retro text editor that takes you back to the 90's!")),
		),
		h.Div(h.Class("banner-image"),
			h.Img(h.Src(ScreenshotPath), h.Alt("90's Banner")),
		),
	)
}

var requirements = []string{
	"Java Runtime Environment (JRE)",
	"JDK 1.8.0",
	"480 Kilobytes of Disk Space",
}

func Requirements() g.Node {
	return h.Section(h.Class("panel requirements"),
		h.H2(underlined("System Requirements:")),
		squareList(requirements),
	)
}

type featureGroup struct {
	title string
	items []string
}

var features = []featureGroup{
	{"Text Styling", []string{"Bold", "Underline", "Bullet points", "Change text color", "Highlight text"}},
	{"File Operations", []string{
		"Create new files",
		"Open existing files (supports .txt and .rtf formats)",
		"Save files (supports .txt and .rtf formats)",
	}},
	{"Undo/Redo", []string{"Supports undo and redo operations for text editing"}},
	{"User-Friendly Interface", []string{"Intuitive design with easy-to-use menus and toolbars"}},
}

// Info carries the anchor the File > Details action scrolls to.
func Info() g.Node {
	return h.Section(h.ID(ui.InfoAnchor), h.Class("panel info"),
		h.H2(underlined("About This Text Editor:")),
		h.Div(h.Class("info-content"),
			h.P(g.Text("This is a simple text editor designed to bring you back to the 90's. "+
				"It's made for Windows machines and the main purpose is to take the role of the default notepad app! "+
				"Notes can be stylized, making it easier to look over in them in the future.")),
			h.P(g.Text("Perfect for writing notes, code, or just reminiscing about the good old days of computing!")),
			h.H3(underlined("Features:")),
			g.Map(features, func(f featureGroup) g.Node {
				return g.Group{h.H4(g.Text(f.title)), squareList(f.items)}
			}),
		),
	)
}

func Footer() g.Node {
	return h.Footer(h.Class("panel footer"),
		h.P(g.Text("© 2025 Stylized Text Editor")),
		h.P(g.Text("Made with ❤️ using Go and 90's nostalgia by Layton Yates.")),
	)
}

func squareList(items []string) g.Node {
	return h.Ul(h.Class("square-list"),
		g.Map(items, func(item string) g.Node {
			return h.Li(g.Text(item))
		}),
	)
}
