package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/mw"
)

func init() { Register(registerDomains) }

// Generation and availability share one per-client budget.
func registerDomains(r chi.Router, d deps.Deps) {
	limited := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			MaxEntries:        10000,
			TrustProxy:        d.TrustProxy,
		}),
	)
	limited.Post("/api/domains/generate", handlers.Generate(d))
	limited.Post("/api/domains/check-availability", handlers.CheckAvailability(d))
}
