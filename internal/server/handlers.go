package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/orgchart/pkg/buildinfo"
	"github.com/matzehuels/orgchart/pkg/document"
	orgerrors "github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/extract"
)

// multipart overhead allowed on top of the file size
const formSlack = 1 << 20

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Company Structure API",
		"version":   buildinfo.Version,
		"endpoints": []string{"/upload", "/health"},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+formSlack)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, r, orgerrors.New(orgerrors.ErrCodeFileTooLarge, "File too large"))
			return
		}
		s.fail(w, r, orgerrors.Wrap(orgerrors.ErrCodeNoFile, err, "No file provided"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, r, orgerrors.New(orgerrors.ErrCodeNoFile, "No file provided"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.fail(w, r, orgerrors.New(orgerrors.ErrCodeNoFile, "No file selected"))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		s.fail(w, r, orgerrors.Wrap(orgerrors.ErrCodeInternal, err, "Failed to read file"))
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		s.fail(w, r, orgerrors.New(orgerrors.ErrCodeFileTooLarge, "File too large"))
		return
	}

	doc, err := document.Open(header.Filename, data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("processing file", "file", doc.Name, "kind", doc.Kind, "bytes", len(data),
		"request_id", middleware.GetReqID(r.Context()))

	resp, err := s.svc.Process(r.Context(), doc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// fail writes err as {"error": message}. Internal errors are logged with
// their cause and reported with a generic prefix.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := orgerrors.HTTPStatus(err)
	msg := orgerrors.UserMessage(err)
	if status >= 500 {
		s.logger.Error("upload failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
		msg = "Internal server error: " + msg
	}
	writeJSON(w, status, extract.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
