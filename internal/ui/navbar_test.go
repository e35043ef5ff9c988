package ui

import (
	"errors"
	"math/rand"
	"testing"
)

type recordedPlatform struct {
	downloads []Asset
	scrolls   []string
	prints    int
	zooms     []int
	opened    []string
}

func (p *recordedPlatform) Download(asset Asset)         { p.downloads = append(p.downloads, asset) }
func (p *recordedPlatform) ScrollIntoView(anchor string) { p.scrolls = append(p.scrolls, anchor) }
func (p *recordedPlatform) Print()                       { p.prints++ }
func (p *recordedPlatform) SetZoom(percent int)          { p.zooms = append(p.zooms, percent) }
func (p *recordedPlatform) Open(url string)              { p.opened = append(p.opened, url) }

func newTestNavbar() (*Navbar, *recordedPlatform) {
	p := &recordedPlatform{}
	return NewNavbar(NewState(), p, DefaultOptions()), p
}

func TestToggleOpensAndCloses(t *testing.T) {
	nav, _ := newTestNavbar()

	if got := nav.State().Menu; got != MenuNone {
		t.Fatalf("initial menu = %q, want none", got)
	}

	nav.Toggle(MenuFile)
	if got := nav.State().Menu; got != MenuFile {
		t.Fatalf("menu after File = %q, want file", got)
	}

	items := Items(nav.State().Menu)
	want := []string{"Download", "Details", "Print"}
	if len(items) != len(want) {
		t.Fatalf("file items = %v, want %v", items, want)
	}
	for i, item := range items {
		if item.Label != want[i] {
			t.Fatalf("file item %d = %q, want %q", i, item.Label, want[i])
		}
	}

	nav.Toggle(MenuFile)
	if got := nav.State().Menu; got != MenuNone {
		t.Fatalf("menu after second File = %q, want none", got)
	}
}

func TestToggleSwitchesMenus(t *testing.T) {
	nav, _ := newTestNavbar()
	nav.Toggle(MenuFile)
	nav.Toggle(MenuHelp)
	if got := nav.State().Menu; got != MenuHelp {
		t.Fatalf("menu = %q, want help", got)
	}
}

func TestToggleAtMostOneMenuOpen(t *testing.T) {
	nav, _ := newTestNavbar()
	rng := rand.New(rand.NewSource(7))

	open := MenuNone
	for i := 0; i < 500; i++ {
		m := Menus[rng.Intn(len(Menus))]
		nav.Toggle(m)
		if open == m {
			open = MenuNone
		} else {
			open = m
		}
		if got := nav.State().Menu; got != open {
			t.Fatalf("step %d: menu = %q, want %q", i, got, open)
		}
	}
}

func TestZoomClampsAtBounds(t *testing.T) {
	nav, p := newTestNavbar()

	for i := 0; i < 3; i++ {
		if err := nav.Invoke(ActionZoomIn); err != nil {
			t.Fatalf("zoom in: %v", err)
		}
	}
	if got := nav.State().Zoom; got != 130 {
		t.Fatalf("zoom after 3 steps = %d, want 130", got)
	}

	for i := 0; i < 10; i++ {
		_ = nav.Invoke(ActionZoomIn)
	}
	if got := nav.State().Zoom; got != ZoomMax {
		t.Fatalf("zoom = %d, want %d", got, ZoomMax)
	}

	for i := 0; i < 30; i++ {
		_ = nav.Invoke(ActionZoomOut)
	}
	if got := nav.State().Zoom; got != ZoomMin {
		t.Fatalf("zoom = %d, want %d", got, ZoomMin)
	}

	_ = nav.Invoke(ActionResetZoom)
	if got := nav.State().Zoom; got != ZoomDefault {
		t.Fatalf("zoom after reset = %d, want %d", got, ZoomDefault)
	}

	if last := p.zooms[len(p.zooms)-1]; last != ZoomDefault {
		t.Fatalf("applied zoom = %d, want %d", last, ZoomDefault)
	}
}

func TestZoomAppliesStoredLevel(t *testing.T) {
	nav, p := newTestNavbar()
	_ = nav.Invoke(ActionZoomIn)
	_ = nav.Invoke(ActionZoomIn)
	_ = nav.Invoke(ActionZoomOut)

	want := []int{110, 120, 110}
	if len(p.zooms) != len(want) {
		t.Fatalf("applied zooms = %v, want %v", p.zooms, want)
	}
	for i := range want {
		if p.zooms[i] != want[i] {
			t.Fatalf("applied zooms = %v, want %v", p.zooms, want)
		}
	}
}

func TestZoomRandomWalkStaysInRange(t *testing.T) {
	nav, _ := newTestNavbar()
	rng := rand.New(rand.NewSource(42))
	actions := []Action{ActionZoomIn, ActionZoomOut, ActionResetZoom}
	for i := 0; i < 1000; i++ {
		_ = nav.Invoke(actions[rng.Intn(len(actions))])
		if z := nav.State().Zoom; z < ZoomMin || z > ZoomMax || z%ZoomStep != 0 {
			t.Fatalf("step %d: zoom %d out of range", i, z)
		}
	}
}

func TestSupportPopup(t *testing.T) {
	nav, _ := newTestNavbar()
	if nav.State().Popup.Visible {
		t.Fatalf("popup visible on a fresh page")
	}

	nav.Toggle(MenuHelp)
	if err := nav.Invoke(ActionSupport); err != nil {
		t.Fatalf("support: %v", err)
	}
	popup := nav.State().Popup
	if !popup.Visible || popup.Message != "Email the developer at wlyates1@gmail.com" {
		t.Fatalf("popup = %+v", popup)
	}
	if got := nav.State().Menu; got != MenuHelp {
		t.Fatalf("menu after support = %q, want help", got)
	}

	if err := nav.Invoke(ActionDismiss); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if nav.State().Popup.Visible {
		t.Fatalf("popup still visible after dismiss")
	}
}

func TestSideEffectsReachPlatform(t *testing.T) {
	nav, p := newTestNavbar()
	for _, a := range []Action{ActionDownload, ActionDetails, ActionPrint, ActionDocumentation} {
		if err := nav.Invoke(a); err != nil {
			t.Fatalf("invoke %s: %v", a, err)
		}
	}

	if len(p.downloads) != 1 || p.downloads[0].Name != "TextEditor.exe" {
		t.Fatalf("downloads = %v", p.downloads)
	}
	if len(p.scrolls) != 1 || p.scrolls[0] != InfoAnchor {
		t.Fatalf("scrolls = %v", p.scrolls)
	}
	if p.prints != 1 {
		t.Fatalf("prints = %d, want 1", p.prints)
	}
	if len(p.opened) != 1 || p.opened[0] != DefaultDocsURL {
		t.Fatalf("opened = %v", p.opened)
	}
}

func TestInvokeUnknownAction(t *testing.T) {
	nav, _ := newTestNavbar()
	if err := nav.Invoke("explode"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Invoke error = %v, want ErrUnknownAction", err)
	}
	if _, err := ParseAction("explode"); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("ParseAction error = %v, want ErrUnknownAction", err)
	}
	if a, err := ParseAction("zoom-in"); err != nil || a != ActionZoomIn {
		t.Fatalf("ParseAction(zoom-in) = %q, %v", a, err)
	}
}
