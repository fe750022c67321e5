package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// serveFile handles every non-reserved path: rewrites "/" to the index
// file, refuses traversal, then hands off to the stock file server.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		r.URL.Path = "/index.html"
	}

	name := normalizeRequestPath(r.URL.Path)
	if err := validateRequestPath(name); err != nil {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("403 - Forbidden: Invalid path"))
		return
	}

	info, err := s.fs.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			s.serveNotFound(w)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("500 - Internal Server Error"))
		}
		return
	}

	// The demo page gets edited between manual test runs; never let the
	// browser cache HTML.
	if info.IsDir() || strings.HasSuffix(name, ".html") {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
	}

	// net/http's file server canonicalizes any path ending in /index.html
	// with a 301 back to ./, so index files are served directly.
	if strings.HasSuffix(name, "/index.html") {
		f, err := s.fs.Open(name)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("500 - Internal Server Error"))
			return
		}
		defer func() { _ = f.Close() }()
		http.ServeContent(w, r, name, info.ModTime(), f)
		return
	}

	r.URL.Path = name
	s.files.ServeHTTP(w, r)
}

// serveNotFound prefers a 404.html from the served root over the plain
// fallback text.
func (s *Server) serveNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	if content, err := afero.ReadFile(s.fs, "/404.html"); err == nil {
		_, _ = w.Write(content)
	} else {
		_, _ = w.Write([]byte("404 - Page Not Found"))
	}
}
