package ui

import (
	"errors"
	"fmt"
)

// Asset is a file the browser should save rather than display.
type Asset struct {
	Path string
	Name string
}

// Platform is everything the navbar asks of the browser. Implementations are
// best-effort: a missing asset or anchor is a silent no-op, never an error.
type Platform interface {
	Download(asset Asset)
	ScrollIntoView(anchor string)
	Print()
	SetZoom(percent int)
	Open(url string)
}

// Action names a dropdown item.
type Action string

const (
	ActionDownload      Action = "download"
	ActionDetails       Action = "details"
	ActionPrint         Action = "print"
	ActionZoomIn        Action = "zoom-in"
	ActionZoomOut       Action = "zoom-out"
	ActionResetZoom     Action = "reset-zoom"
	ActionDocumentation Action = "documentation"
	ActionSupport       Action = "support"
	ActionDismiss       Action = "dismiss"
)

// ErrUnknownAction is returned by Invoke for names no menu offers.
var ErrUnknownAction = errors.New("unknown action")

// Item is one link inside a dropdown.
type Item struct {
	Action Action
	Label  string
	// External items open in a new browsing context.
	External bool
}

var menuItems = map[Menu][]Item{
	MenuFile: {
		{Action: ActionDownload, Label: "Download"},
		{Action: ActionDetails, Label: "Details"},
		{Action: ActionPrint, Label: "Print"},
	},
	MenuView: {
		{Action: ActionZoomIn, Label: "Zoom In"},
		{Action: ActionZoomOut, Label: "Zoom Out"},
		{Action: ActionResetZoom, Label: "Reset Zoom"},
	},
	MenuHelp: {
		{Action: ActionDocumentation, Label: "Documentation", External: true},
		{Action: ActionSupport, Label: "Support"},
	},
}

// Items returns the dropdown contents for a menu, nil for MenuNone.
func Items(m Menu) []Item {
	items := menuItems[m]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ParseAction accepts the action names listed by Items plus ActionDismiss.
func ParseAction(raw string) (Action, error) {
	a := Action(raw)
	if a == ActionDismiss {
		return a, nil
	}
	for _, m := range Menus {
		for _, item := range menuItems[m] {
			if item.Action == a {
				return a, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// Options carries the fixed targets of the navbar actions.
type Options struct {
	DownloadAsset  Asset
	InfoAnchor     string
	DocsURL        string
	SupportMessage string
}

const (
	DefaultDocsURL      = "https://github.com/Wlyates00/stylized-text-editor"
	DefaultSupportEmail = "wlyates1@gmail.com"
	InfoAnchor          = "info-section"
)

// SupportMessage is the popup text for a contact address.
func SupportMessage(email string) string {
	return "Email the developer at " + email
}

// DefaultOptions mirrors the published site.
func DefaultOptions() Options {
	return Options{
		DownloadAsset:  Asset{Path: "/TextEditor.exe", Name: "TextEditor.exe"},
		InfoAnchor:     InfoAnchor,
		DocsURL:        DefaultDocsURL,
		SupportMessage: SupportMessage(DefaultSupportEmail),
	}
}

// Messages maps popup keys to their text, for ParseState.
func (o Options) Messages() map[string]string {
	return map[string]string{SupportPopupKey: o.SupportMessage}
}

// Navbar owns the dropdown selection, zoom level and popup.
type Navbar struct {
	state    State
	platform Platform
	opts     Options
}

// NewNavbar starts a controller from an existing state.
func NewNavbar(st State, platform Platform, opts Options) *Navbar {
	if st.Zoom == 0 {
		st.Zoom = ZoomDefault
	}
	return &Navbar{state: st, platform: platform, opts: opts}
}

// State returns a copy of the current state.
func (n *Navbar) State() State {
	return n.state
}

// Toggle opens m, or closes it when it is already the open menu.
func (n *Navbar) Toggle(m Menu) {
	if n.state.Menu == m {
		n.state.Menu = MenuNone
		return
	}
	n.state.Menu = m
}

// ShowPopup makes the overlay visible with msg.
func (n *Navbar) ShowPopup(key, msg string) {
	n.state.Popup = PopupState{Visible: true, Key: key, Message: msg}
}

// ClosePopup hides the overlay.
func (n *Navbar) ClosePopup() {
	n.state.Popup = PopupState{}
}

// Invoke runs a dropdown item. The open menu is left as it is.
func (n *Navbar) Invoke(a Action) error {
	switch a {
	case ActionDownload:
		n.platform.Download(n.opts.DownloadAsset)
	case ActionDetails:
		n.platform.ScrollIntoView(n.opts.InfoAnchor)
	case ActionPrint:
		n.platform.Print()
	case ActionZoomIn:
		n.setZoom(n.state.Zoom + ZoomStep)
	case ActionZoomOut:
		n.setZoom(n.state.Zoom - ZoomStep)
	case ActionResetZoom:
		n.setZoom(ZoomDefault)
	case ActionDocumentation:
		n.platform.Open(n.opts.DocsURL)
	case ActionSupport:
		n.ShowPopup(SupportPopupKey, n.opts.SupportMessage)
	case ActionDismiss:
		n.ClosePopup()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	return nil
}

// setZoom applies the stored level, not the one before it.
func (n *Navbar) setZoom(percent int) {
	n.state.Zoom = ClampZoom(percent)
	n.platform.SetZoom(n.state.Zoom)
}
