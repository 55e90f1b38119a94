package api

import "net/http"

func (s *Server) handleUploadLogo(w http.ResponseWriter, r *http.Request) {
	// 10 MB max
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	logo, err := s.Widget.SetLogo(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, logo)
}

func (s *Server) handleRemoveLogo(w http.ResponseWriter, r *http.Request) {
	s.Widget.RemoveLogo()
	writeJSON(w, http.StatusOK, s.Widget.State())
}
