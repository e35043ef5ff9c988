package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"retrosite/internal/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	var events app.EventStore = app.NopEventStore{}
	if cfg.DSN != "" {
		db, err := app.NewDB(cfg)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()

		if err := db.PingContext(startupCtx); err != nil {
			log.Fatalf("ping db: %v", err)
		}

		store := app.NewSQLEventStore(db)
		if err := store.EnsureSchema(startupCtx); err != nil {
			log.Fatalf("create schema: %v", err)
		}
		events = store
	} else {
		log.Printf("no database configured; action counts disabled")
	}

	tracing, err := app.NewTracing(startupCtx, cfg)
	if err != nil {
		log.Fatalf("init tracing: %v", err)
	}

	handler, err := app.NewServer(cfg, events, tracing.Tracer())
	if err != nil {
		log.Fatalf("init server: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("retrosite listening on %s (assets from %s)", srv.Addr, cfg.AssetDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	if err := tracing.Shutdown(ctx); err != nil {
		log.Printf("flush traces: %v", err)
	}
}
