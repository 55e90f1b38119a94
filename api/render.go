package api

import (
	"fmt"
	"net/http"

	"github.com/patrickmn/go-cache"

	"github.com/Justina18/qr-code-app/widget"
)

// handlePreview serves the live-preview PNG. Renders are cached per state
// revision so a polling client doesn't re-encode an unchanged code.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	// One snapshot feeds both the key and the render, so a concurrent
	// mutation can't cache a newer render under an older revision.
	st := s.Widget.State()
	key := fmt.Sprintf("preview_%d", st.Revision)
	if data, found := s.previews.Get(key); found {
		servePNG(w, data.([]byte))
		return
	}

	data, err := s.Widget.RenderState(st)
	if err != nil {
		s.Log.Error("preview render failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.previews.Set(key, data, cache.DefaultExpiration)
	servePNG(w, data)
}

// handleExport delivers the current render as a file download with a
// timestamped filename.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.Widget.Render()
	if err != nil {
		s.Log.Error("export render failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", widget.ExportFilename()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleShare redirects to the outbound messaging deep link in a new
// browsing context (the page opens it with target=_blank).
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.Widget.ShareURL(), http.StatusFound)
}

func servePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
