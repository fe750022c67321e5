package server

import (
	"context"
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/demoserve/internal/config"
)

// Server serves the demo page's static files from a fixed root directory,
// injecting permissive CORS headers on every response so the page can be
// exercised from any origin during manual testing.
type Server struct {
	cfg   *config.Config
	fs    afero.Fs
	files http.Handler
	hub   *reloadHub
}

// New builds a server rooted at cfg.RootDir. The serving filesystem is a
// read-only view of that directory; lookups cannot escape it.
func New(cfg *config.Config) *Server {
	root := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.RootDir))

	s := &Server{
		cfg: cfg,
		fs:  root,
		hub: newReloadHub(),
	}
	s.files = http.FileServer(afero.NewHttpFs(root).Dir("/"))
	return s
}

// Handler assembles the route table. CORS injection wraps the whole mux so
// the headers land on every response, error statuses included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	if s.cfg.LiveReload {
		mux.HandleFunc("/events", s.hub.handleSSE)
	}
	mux.HandleFunc("/", gzipHandler(s.serveFile))
	return corsHandler(mux)
}

// Run binds the listener and serves until ctx is cancelled, then shuts the
// HTTP server down gracefully and returns nil. A bind failure is returned
// to the caller.
func (s *Server) Run(ctx context.Context) error {
	// Force register the WASM mime type
	// (Fixes "Incorrect response MIME type" errors in browser)
	_ = mime.AddExtensionType(".wasm", "application/wasm")

	if s.cfg.LiveReload {
		w, err := newWatcher(s.cfg.RootDir, s.cfg.DebounceDuration, s.hub.broadcast)
		if err != nil {
			log.Printf("Live reload disabled: %v", err)
		} else {
			w.Start()
			defer w.Stop()
		}
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		fmt.Println("\n🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}()

	displayHost := s.cfg.Host
	if displayHost == "" || displayHost == "0.0.0.0" {
		displayHost = "localhost"
	}
	fmt.Printf("🌍 Serving %s on http://%s:%d\n", s.cfg.RootDir, displayHost, s.cfg.Port)
	if s.cfg.Host == "" || s.cfg.Host == "0.0.0.0" {
		fmt.Println("   (Accessible on your local network)")
	}
	if s.cfg.LiveReload {
		fmt.Println("   (Auto-reload enabled via /events)")
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	fmt.Println("✅ Server stopped.")
	return nil
}
