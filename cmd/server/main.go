package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/gielis/iconmaker/internal/catalog"
	"github.com/gielis/iconmaker/internal/config"
	"github.com/gielis/iconmaker/internal/export"
	"github.com/gielis/iconmaker/internal/library"
	"github.com/gielis/iconmaker/internal/live"
	mw "github.com/gielis/iconmaker/internal/middleware"
	"github.com/gielis/iconmaker/internal/preview"
	"github.com/gielis/iconmaker/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var documents store.Store
	if cfg.DatabaseURL == "" {
		slog.Info("DATABASE_URL not set, keeping documents in memory")
		documents = store.NewMemory()
	} else {
		pool, err := store.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pg := store.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			slog.Error("prepare database", "error", err)
			os.Exit(1)
		}
		documents = pg
	}

	libraryHandler := library.NewHandler(library.NewService(documents))
	exportHandler := export.NewHandler(export.NewExporter(cfg.ICOSizes, cfg.TouchIconSize))
	previewHandler := preview.NewHandler(preview.NewService(preview.NewCache(cfg.ThumbnailCache), cfg.ThumbnailSize))
	catalogHandler := catalog.NewHandler()
	liveHandler := live.NewHandler(cfg.OriginHosts(), cfg.PreviewSVGSize)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Building blocks
	r.HandleFunc("/presets", catalogHandler.Presets).Methods("GET")
	r.HandleFunc("/demos", catalogHandler.Demos).Methods("GET")
	r.HandleFunc("/demos/{key}", catalogHandler.Demo).Methods("GET")
	r.HandleFunc("/palette", catalogHandler.Palette).Methods("GET")
	r.HandleFunc("/palette/random", catalogHandler.RandomPalette).Methods("GET")

	// Export and thumbnails
	r.HandleFunc("/export/{format}", exportHandler.Export).Methods("POST", "OPTIONS")
	r.HandleFunc("/thumbnails", previewHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/thumbnails/{key}.png", previewHandler.Serve).Methods("GET")

	// Saved documents
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/documents", libraryHandler.List).Methods("GET")
	api.HandleFunc("/documents", libraryHandler.Create).Methods("POST")
	api.HandleFunc("/documents/{id}", libraryHandler.Get).Methods("GET")
	api.HandleFunc("/documents/{id}", libraryHandler.Update).Methods("PUT")
	api.HandleFunc("/documents/{id}", libraryHandler.Delete).Methods("DELETE")

	// WebSocket endpoint
	r.Handle("/ws/preview", liveHandler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
