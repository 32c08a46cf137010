package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pindrop/pindrop/internal/classify"
	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/icon"
)

type iconCandidatesRequest struct {
	Source    *domain.ContentSource `json:"source"`
	Thumbnail string                `json:"thumbnail,omitempty"`
}

type iconCandidatesResponse struct {
	Candidates  []icon.Candidate `json:"candidates"`
	DisplayName string           `json:"displayName"`
}

// IconCandidates returns the ranked icon candidates and the derived display
// name for a content source, for the customization screen.
func IconCandidates(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req iconCandidatesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Source == nil {
			writeError(w, http.StatusBadRequest, "missing content source")
			return
		}

		t := d.Tables.Current()
		writeJSON(w, http.StatusOK, iconCandidatesResponse{
			Candidates:  icon.Candidates(req.Source, req.Thumbnail, t),
			DisplayName: classify.ExtractDisplayName(req.Source, t),
		})
	}
}
