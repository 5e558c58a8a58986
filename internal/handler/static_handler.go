package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// spaHandler serves the single-page frontend: real files under assets/, and
// index.html for every other client-side route.
type spaHandler struct {
	index  string
	assets http.Handler // nil when the bundle has no assets dir
}

func newSPAHandler(dir string) *spaHandler {
	h := &spaHandler{index: filepath.Join(dir, "index.html")}
	assetsDir := filepath.Join(dir, "assets")
	if fi, err := os.Stat(assetsDir); err == nil && fi.IsDir() {
		h.assets = http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir)))
	}
	return h
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, "/")

	switch {
	case strings.HasPrefix(p, "api/"):
		writeError(w, http.StatusNotFound, "Endpoint not found")
		return
	case h.assets != nil && strings.HasPrefix(p, "assets/"):
		h.assets.ServeHTTP(w, r)
		return
	case strings.Contains(path.Base("/"+p), "."):
		writeError(w, http.StatusNotFound, "Asset not found")
		return
	}

	if fi, err := os.Stat(h.index); err != nil || fi.IsDir() {
		writeError(w, http.StatusNotFound, "Frontend bundle not found")
		return
	}
	http.ServeFile(w, r, h.index)
}
