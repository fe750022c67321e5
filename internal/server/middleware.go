package server

import (
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// corsHandler adds permissive CORS headers before the wrapped handler
// runs, so they are present on every response regardless of status code.
func corsHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// compressedWriter sends body bytes through the gzip stream while header
// writes stay on the original ResponseWriter.
type compressedWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *compressedWriter) Write(b []byte) (int, error) {
	return w.zw.Write(b)
}

func (w *compressedWriter) WriteHeader(code int) {
	// The length of the uncompressed body no longer applies
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

// gzipHandler compresses responses for clients that advertise gzip support.
func gzipHandler(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Add("Vary", "Accept-Encoding")
		zw := gzip.NewWriter(w)
		defer func() { _ = zw.Close() }()
		next(&compressedWriter{ResponseWriter: w, zw: zw}, r)
	}
}
