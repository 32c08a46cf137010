package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pindrop/pindrop/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	ShortcutsKnown *int   `json:"shortcuts_known,omitempty"`
	LastReload     string `json:"last_reload,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	PipelineMode string                     `json:"pipeline_mode"`
	Components   map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		shortcutCount := d.MemoryIndex.Count()
		lastReload := d.Tables.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"index": {
				OK:             true,
				ShortcutsKnown: &shortcutCount,
			},
			"tables": {
				OK:         true,
				LastReload: lastReloadStr,
			},
			"redis":   checkRedis(d),
			"gateway": checkGateway(d),
		}

		response := infraResponse{
			PipelineMode: determinePipelineMode(components),
			Components:   components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determinePipelineMode(components map[string]componentStatus) string {
	// Without the gateway nothing can be ingested or pinned.
	if gw, exists := components["gateway"]; exists && !gw.OK {
		return "critical"
	}

	// Redis down = degraded (no persistence, no clipboard cooldown)
	if rd, exists := components["redis"]; exists && !rd.OK {
		return "degraded"
	}

	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "persistence-enabled",
	}
}

func checkGateway(d deps.Deps) componentStatus {
	if d.GatewayPing == nil {
		return componentStatus{OK: false, Error: "gateway not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.GatewayPing(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Impact: "ingestion-and-pinning-disabled",
			Error:  err.Error(),
		}
	}
	return componentStatus{OK: true}
}
