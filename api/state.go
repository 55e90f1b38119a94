package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Justina18/qr-code-app/widget"
)

// updateStateRequest carries a partial form update; absent fields are left
// untouched.
type updateStateRequest struct {
	Text           *string `json:"text,omitempty"`
	Size           *int    `json:"size,omitempty"`
	Foreground     *string `json:"foreground,omitempty"`
	Background     *string `json:"background,omitempty"`
	ShowBackground *bool   `json:"show_background,omitempty"`
	Level          *string `json:"level,omitempty"`
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Widget.State())
}

func (s *Server) handleUpdateState(w http.ResponseWriter, r *http.Request) {
	var req updateStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validate every field before applying any, so a rejected update
	// leaves the state untouched.
	var level widget.Level
	if req.Foreground != nil {
		if err := widget.ValidateColor(*req.Foreground); err != nil {
			writeError(w, http.StatusBadRequest, "foreground: "+err.Error())
			return
		}
	}
	if req.Background != nil {
		if err := widget.ValidateColor(*req.Background); err != nil {
			writeError(w, http.StatusBadRequest, "background: "+err.Error())
			return
		}
	}
	if req.Level != nil {
		var err error
		if level, err = widget.ParseLevel(*req.Level); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if req.Text != nil {
		s.Widget.SetText(*req.Text)
	}
	if req.Size != nil {
		// Out-of-range sizes are clamped, not rejected.
		s.Widget.SetSize(*req.Size)
	}
	if req.Foreground != nil {
		if err := s.Widget.SetForeground(*req.Foreground); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Background != nil {
		if err := s.Widget.SetBackground(*req.Background); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.ShowBackground != nil {
		s.Widget.SetShowBackground(*req.ShowBackground)
	}
	if req.Level != nil {
		if err := s.Widget.SetLevel(level); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, s.Widget.State())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.Widget.Reset()
	writeJSON(w, http.StatusOK, s.Widget.State())
}

type statusResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ready",
		Uptime:  time.Since(s.startTime).Truncate(time.Second).String(),
		Version: s.Version,
	})
}
