package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pindrop/pindrop/internal/bridge"
	"github.com/pindrop/pindrop/internal/classify"
	"github.com/pindrop/pindrop/internal/domain"
	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/intent"
	"github.com/pindrop/pindrop/internal/logger"
	redisstore "github.com/pindrop/pindrop/internal/store/redis"
)

type createShortcutRequest struct {
	Shortcut domain.ShortcutData   `json:"shortcut"`
	Source   *domain.ContentSource `json:"source,omitempty"`
}

type createShortcutResponse struct {
	Shortcut  *domain.ShortcutData    `json:"shortcut"`
	Directive *domain.LaunchDirective `json:"directive"`
}

// CreateShortcut finalizes a customized shortcut: validates the source,
// builds the launch directive, asks the native layer to pin it, and persists
// the record. Pinning is the commit point; persistence after it is
// best-effort.
func CreateShortcut(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createShortcutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if req.Source != nil {
			if err := req.Source.Validate(d.InlineMax); err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
		}

		rec := &req.Shortcut
		t := d.Tables.Current()

		now := time.Now()
		if rec.ID == "" {
			rec.ID = uuid.NewString()
			rec.CreatedAt = now
		}
		rec.UpdatedAt = now
		if rec.Label == "" {
			rec.Label = classify.ExtractDisplayName(req.Source, t)
		}

		var caps intent.CallCapability
		if rec.Category == domain.CategoryContact {
			caps = intent.PreflightCall(r.Context(), d.Bridge, d.Logger)
		}

		directive, err := d.IntentBuilder.Build(rec, req.Source, t, caps)
		if err != nil {
			var sizeErr *domain.SizeExceededError
			switch {
			case errors.As(err, &sizeErr):
				writeError(w, http.StatusRequestEntityTooLarge, sizeErr.Error())
			case errors.Is(err, domain.ErrDeadTransientURI):
				writeError(w, http.StatusUnprocessableEntity, err.Error())
			default:
				writeError(w, http.StatusBadRequest, err.Error())
			}
			return
		}

		if err := d.Bridge.CreatePinnedShortcut(r.Context(), bridge.NewPinRequest(rec, directive)); err != nil {
			var nativeErr *domain.NativeCreationError
			if errors.As(err, &nativeErr) {
				d.Logger.Error("native pinning rejected shortcut",
					logger.String("id", rec.ID),
					logger.String("label", rec.Label),
					logger.String("reason", nativeErr.Reason))
			} else {
				d.Logger.Error("native pinning unreachable",
					logger.String("id", rec.ID),
					logger.Error(err))
			}
			writeError(w, http.StatusBadGateway, "native shortcut creation failed")
			return
		}

		// Record persistence is best-effort: the pinned artifact already
		// exists and the memory index keeps it visible.
		if d.RedisClient != nil {
			store := redisstore.NewStore(d.RedisClient)
			if err := store.SaveShortcut(r.Context(), rec); err != nil {
				d.Logger.Warn("failed to persist shortcut record",
					logger.String("id", rec.ID),
					logger.Error(err))
			}
		}
		d.MemoryIndex.AddShortcut(rec)

		d.Logger.Info("shortcut created",
			logger.String("id", rec.ID),
			logger.String("label", rec.Label),
			logger.String("category", string(rec.Category)))

		writeJSON(w, http.StatusCreated, createShortcutResponse{
			Shortcut:  rec,
			Directive: directive,
		})
	}
}

type listShortcutsResponse struct {
	Shortcuts []*domain.ShortcutData `json:"shortcuts"`
	Count     int                    `json:"count"`
}

// ListShortcuts returns all known shortcut records, most-used first.
func ListShortcuts(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := d.MemoryIndex.GetAllShortcuts()

		sort.Slice(records, func(i, j int) bool {
			if records[i].Counter != records[j].Counter {
				return records[i].Counter > records[j].Counter
			}
			return records[i].Label < records[j].Label
		})

		writeJSON(w, http.StatusOK, listShortcutsResponse{
			Shortcuts: records,
			Count:     len(records),
		})
	}
}

// ShortcutUsed bumps the launch counter after the native layer reports an
// invocation.
func ShortcutUsed(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, ok := d.MemoryIndex.GetShortcut(id); !ok {
			writeError(w, http.StatusNotFound, "unknown shortcut: "+id)
			return
		}

		d.MemoryIndex.IncrementCounter(id)

		if d.RedisClient != nil {
			store := redisstore.NewStore(d.RedisClient)
			if err := store.IncrementUsage(r.Context(), id); err != nil {
				d.Logger.Warn("failed to persist usage increment",
					logger.String("id", id),
					logger.Error(err))
			}
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
