package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/pindrop/pindrop/internal/httpserver/deps"
	"github.com/pindrop/pindrop/internal/httpserver/handlers"
	"github.com/pindrop/pindrop/internal/httpserver/mw"
)

func init() { Register(registerPipeline) }

func registerPipeline(r chi.Router, d deps.Deps) {
	guarded := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             30,
			RefillPerIPPerMin: 120,
			TrustProxy:        d.TrustProxy,
		}),
	)

	guarded.Post("/v1/lifecycle", handlers.Lifecycle(d))
	guarded.Post("/v1/shortcuts", handlers.CreateShortcut(d))
	guarded.Get("/v1/shortcuts", handlers.ListShortcuts(d))
	guarded.Post("/v1/shortcuts/{id}/used", handlers.ShortcutUsed(d))
	guarded.Post("/v1/icons/candidates", handlers.IconCandidates(d))
	guarded.Post("/v1/files/pick", handlers.PickFile(d))
}
