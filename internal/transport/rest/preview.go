package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/callhistory-backend/internal/preview"
)

type previewRenderer interface {
	Render(ctx context.Context, u preview.Upload) string
}

// PreviewHandler renders uploaded spreadsheets as HTML tables.
type PreviewHandler struct {
	preview  previewRenderer
	maxBytes int64
	log      *slog.Logger
}

// NewPreviewHandler creates a PreviewHandler accepting uploads up to
// maxBytes.
func NewPreviewHandler(renderer previewRenderer, maxBytes int64, logger *slog.Logger) *PreviewHandler {
	return &PreviewHandler{
		preview:  renderer,
		maxBytes: maxBytes,
		log:      logger.With("handler", "preview"),
	}
}

// Preview renders the multipart "file" field. The optional "file_type"
// field overrides the extension. The body is an HTML fragment, either a
// table or an alert.
// POST /api/v1/preview
func (h *PreviewHandler) Preview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "expected multipart/form-data")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation error",
			Fields: []fieldError{{Field: "file", Message: "required"}},
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.log.ErrorContext(r.Context(), "read upload", slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	html := h.preview.Render(r.Context(), preview.Upload{
		Filename: header.Filename,
		FileType: r.FormValue("file_type"),
		Content:  content,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, html) //nolint:errcheck
}
