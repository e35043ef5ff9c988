package ui

import (
	"errors"
	"net/url"
	"strconv"
)

// Menu identifies which dropdown is open.
type Menu string

const (
	MenuNone Menu = ""
	MenuFile Menu = "file"
	MenuView Menu = "view"
	MenuHelp Menu = "help"
)

// Menus lists the dropdowns in navbar order.
var Menus = []Menu{MenuFile, MenuView, MenuHelp}

// ErrUnknownMenu is returned for menu names outside Menus.
var ErrUnknownMenu = errors.New("unknown menu")

// ParseMenu maps a query or path value onto a Menu.
func ParseMenu(raw string) (Menu, error) {
	switch Menu(raw) {
	case MenuFile, MenuView, MenuHelp:
		return Menu(raw), nil
	}
	return MenuNone, ErrUnknownMenu
}

// Label is the text shown on the menu button.
func (m Menu) Label() string {
	switch m {
	case MenuFile:
		return "File"
	case MenuView:
		return "View"
	case MenuHelp:
		return "Help"
	}
	return ""
}

const (
	ZoomMin     = 50
	ZoomMax     = 200
	ZoomStep    = 10
	ZoomDefault = 100
)

// ClampZoom keeps a zoom percentage inside [ZoomMin, ZoomMax] on a ZoomStep grid.
func ClampZoom(percent int) int {
	if percent < ZoomMin {
		return ZoomMin
	}
	if percent > ZoomMax {
		return ZoomMax
	}
	// round half up onto the step grid
	return (percent + ZoomStep/2) / ZoomStep * ZoomStep
}

// PopupState is the modal overlay. Key names the message so it can travel in a URL.
type PopupState struct {
	Visible bool
	Key     string
	Message string
}

// SupportPopupKey is the only message the popup knows about.
const SupportPopupKey = "support"

// State is the whole transient UI state of one page view.
type State struct {
	Menu  Menu
	Zoom  int
	Popup PopupState
}

// NewState returns the state of a fresh page load.
func NewState() State {
	return State{Menu: MenuNone, Zoom: ZoomDefault}
}

// ParseState decodes state from a query string. Unknown or malformed values fall
// back to defaults; popup text is looked up from messages, never read from the URL.
func ParseState(values url.Values, messages map[string]string) State {
	st := NewState()

	if m, err := ParseMenu(values.Get("menu")); err == nil {
		st.Menu = m
	}

	if raw := values.Get("zoom"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			st.Zoom = ClampZoom(n)
		}
	}

	if key := values.Get("popup"); key != "" {
		if msg, ok := messages[key]; ok {
			st.Popup = PopupState{Visible: true, Key: key, Message: msg}
		}
	}

	return st
}

// Query encodes the state, omitting defaults so the initial page is a bare "/".
func (s State) Query() url.Values {
	values := url.Values{}
	if s.Menu != MenuNone {
		values.Set("menu", string(s.Menu))
	}
	if s.Zoom != ZoomDefault && s.Zoom != 0 {
		values.Set("zoom", strconv.Itoa(s.Zoom))
	}
	if s.Popup.Visible && s.Popup.Key != "" {
		values.Set("popup", s.Popup.Key)
	}
	return values
}
