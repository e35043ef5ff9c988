package app

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"retrosite/internal/ui"
	"retrosite/internal/view"
)

// Server wires handlers, views, and external dependencies together.
type Server struct {
	cfg        Config
	opts       ui.Options
	events     EventStore
	tracer     oteltrace.Tracer
	mux        *http.ServeMux
	statsGroup singleflight.Group
}

// NewServer constructs an HTTP handler serving the site. A nil events store
// disables action counting.
func NewServer(cfg Config, events EventStore, tracer oteltrace.Tracer) (*Server, error) {
	if events == nil {
		events = NopEventStore{}
	}
	if tracer == nil {
		tracer = (*Tracing)(nil).Tracer()
	}

	srv := &Server{
		cfg:    cfg,
		opts:   cfg.NavOptions(),
		events: events,
		tracer: tracer,
		mux:    http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /{$}", srv.handleIndex)
	srv.mux.HandleFunc("GET /menu/{menu}", srv.handleMenu)
	srv.mux.HandleFunc("GET /action/{action}", srv.handleAction)
	srv.mux.HandleFunc("GET "+srv.opts.DownloadAsset.Path, srv.handleDownload)
	srv.mux.HandleFunc("GET "+view.ScreenshotPath, srv.handleScreenshot)
	srv.mux.Handle("GET /static/", http.FileServerFS(staticFS))
	srv.mux.HandleFunc("GET /stats", srv.handleStats)
	srv.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	st := ui.ParseState(values, s.opts.Messages())

	props := view.PageProps{
		State: st,
		Links: stateLinks{state: st},
	}
	if values.Get(effectParam) == effectPrint {
		props.PrintOnLoad = true
		props.CleanURL = pageURL(st, nil, "")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := view.Page(props).Render(w); err != nil {
		log.Printf("render page: %v", err)
	}
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := ui.ParseMenu(r.PathValue("menu"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	nav := ui.NewNavbar(ui.ParseState(r.URL.Query(), s.opts.Messages()), &redirectPlatform{}, s.opts)
	nav.Toggle(menu)

	http.Redirect(w, r, pageURL(nav.State(), nil, ""), http.StatusSeeOther)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	action, err := ui.ParseAction(r.PathValue("action"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	ctx, span := s.tracer.Start(r.Context(), "navbar.action",
		oteltrace.WithAttributes(attribute.String("retrosite.action", string(action))))
	defer span.End()

	platform := &redirectPlatform{}
	nav := ui.NewNavbar(ui.ParseState(r.URL.Query(), s.opts.Messages()), platform, s.opts)
	if err := nav.Invoke(action); err != nil {
		// ParseAction already vetted the name
		log.Printf("invoke %s: %v", action, err)
		http.NotFound(w, r)
		return
	}
	span.SetAttributes(attribute.Int("retrosite.zoom", nav.State().Zoom))

	if platform.download != nil && !s.assetExists(platform.download.Name) {
		log.Printf("download %s: asset missing", platform.download.Name)
		platform.download = nil
	}

	if err := s.events.Record(ctx, action); err != nil {
		log.Printf("record %s: %v", action, err)
	}

	http.Redirect(w, r, platform.location(nav.State()), http.StatusSeeOther)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	asset := s.opts.DownloadAsset
	f, err := os.Open(filepath.Join(s.cfg.AssetDir, asset.Name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("open %s: %v", asset.Name, err)
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+asset.Name+`"`)
	http.ServeContent(w, r, asset.Name, info.ModTime(), f)
}

func (s *Server) assetExists(name string) bool {
	info, err := os.Stat(filepath.Join(s.cfg.AssetDir, name))
	return err == nil && !info.IsDir()
}

func (s *Server) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.cfg.AssetDir, filepath.Base(view.ScreenshotPath)))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	result, err, _ := s.statsGroup.Do("counts", func() (interface{}, error) {
		return s.events.Counts(r.Context())
	})
	if err != nil {
		log.Printf("count events: %v", err)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	counts, ok := result.(map[string]int)
	if !ok {
		log.Printf("stats result type mismatch")
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		Actions map[string]int `json:"actions"`
	}{Actions: counts}); err != nil {
		log.Printf("encode stats: %v", err)
	}
}
