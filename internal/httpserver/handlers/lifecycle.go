package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/ingest"
	"github.com/pindrop/pindrop/internal/logger"
)

type lifecycleRequest struct {
	Signal string `json:"signal"`
}

type lifecycleResponse struct {
	Ingestion    *ingest.Outcome `json:"ingestion,omitempty"`
	ClipboardURL string          `json:"clipboardUrl,omitempty"`
}

// Lifecycle runs the two trigger-point checks for a lifecycle signal: pending
// share-event ingestion and clipboard URL detection. Gateway failures are
// logged and degrade to an empty outcome, they never fail the request.
func Lifecycle(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req lifecycleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var trigger ingest.Trigger
		switch req.Signal {
		case string(ingest.TriggerColdStart):
			trigger = ingest.TriggerColdStart
		case string(ingest.TriggerForeground):
			trigger = ingest.TriggerForeground
		default:
			writeError(w, http.StatusBadRequest, "unknown lifecycle signal: "+req.Signal)
			return
		}

		var resp lifecycleResponse

		outcome, err := d.Ingestor.Check(r.Context(), trigger)
		if err != nil {
			d.Logger.Warn("share ingestion check failed",
				logger.String("trigger", string(trigger)),
				logger.Error(err))
		} else {
			resp.Ingestion = outcome
		}

		resp.ClipboardURL = d.Clipboard.Check(r.Context(), trigger == ingest.TriggerForeground)

		writeJSON(w, http.StatusOK, resp)
	}
}
