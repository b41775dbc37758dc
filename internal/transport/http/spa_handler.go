package http

import (
	"io/fs"
	"net/http"
	"strings"
)

// SPAHandler serves the embedded records UI. Files present in the bundle are
// served as-is; every other path falls back to index.html so the UI owns its
// own routing.
type SPAHandler struct {
	StaticFS fs.FS
}

func (h SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")

	if path != "" {
		if f, err := h.StaticFS.Open(path); err == nil {
			f.Close()
			http.FileServer(http.FS(h.StaticFS)).ServeHTTP(w, r)
			return
		}
	}

	h.serveIndex(w)
}

func (h SPAHandler) serveIndex(w http.ResponseWriter) {
	content, err := fs.ReadFile(h.StaticFS, "index.html")
	if err != nil {
		http.Error(w, "index.html not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
