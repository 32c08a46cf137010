package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/logger"
)

type pickFileRequest struct {
	MimeFilters []string `json:"mimeFilters,omitempty"`
}

type pickFileResponse struct {
	Source *domain.ContentSource `json:"source"`
}

// PickFile opens the native file picker and normalizes the result into a
// content source for the customization flow. A 204 means the user cancelled.
func PickFile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pickFileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		picked, err := d.Bridge.PickFile(r.Context(), req.MimeFilters)
		if err != nil {
			d.Logger.Warn("native file picker failed", logger.Error(err))
			writeError(w, http.StatusBadGateway, "file picker unavailable")
			return
		}
		if picked == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, pickFileResponse{Source: &domain.ContentSource{
			Kind:        domain.SourceFile,
			URI:         picked.URI,
			MimeType:    picked.MimeType,
			Name:        picked.Name,
			FileSize:    picked.Size,
			IsLargeFile: picked.Size > d.InlineMax,
		}})
	}
}
