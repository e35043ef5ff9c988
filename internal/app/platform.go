package app

import (
	"net/url"

	"retrosite/internal/ui"
)

// redirectPlatform records what the navbar asked of the browser and turns it
// into the Location of a 303. Only the last request of each kind is kept.
type redirectPlatform struct {
	download *ui.Asset
	anchor   string
	print    bool
	zoom     int
	open     string
}

func (p *redirectPlatform) Download(asset ui.Asset) { p.download = &asset }

func (p *redirectPlatform) ScrollIntoView(anchor string) { p.anchor = anchor }

func (p *redirectPlatform) Print() { p.print = true }

// SetZoom needs no redirect of its own; the body scale is rendered from state.
func (p *redirectPlatform) SetZoom(percent int) { p.zoom = percent }

func (p *redirectPlatform) Open(target string) { p.open = target }

// location picks the redirect target for st after the recorded effects.
func (p *redirectPlatform) location(st ui.State) string {
	switch {
	case p.download != nil:
		return p.download.Path
	case p.open != "":
		return p.open
	}

	extra := url.Values{}
	if p.print {
		extra.Set(effectParam, effectPrint)
	}
	return pageURL(st, extra, p.anchor)
}

const (
	effectParam = "fx"
	effectPrint = "print"
)

// pageURL is "/" plus the encoded state, any one-shot parameters and a fragment.
func pageURL(st ui.State, extra url.Values, fragment string) string {
	values := st.Query()
	for k, vs := range extra {
		for _, v := range vs {
			values.Add(k, v)
		}
	}

	u := url.URL{Path: "/", RawQuery: values.Encode(), Fragment: fragment}
	return u.String()
}

// stateLinks builds navbar hrefs that carry the state they start from.
type stateLinks struct {
	state ui.State
}

func (l stateLinks) Menu(m ui.Menu) string {
	return withQuery("/menu/"+string(m), l.state)
}

func (l stateLinks) Action(a ui.Action) string {
	return withQuery("/action/"+string(a), l.state)
}

func withQuery(path string, st ui.State) string {
	u := url.URL{Path: path, RawQuery: st.Query().Encode()}
	return u.String()
}
