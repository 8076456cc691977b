package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/brainstorm/internal/availability"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

type availabilityRequest struct {
	Domains  []string `json:"domains"`
	Provider string   `json:"provider"`
}

// CheckAvailability serves POST /api/domains/check-availability. The response
// maps every requested domain to whether it can be registered.
func CheckAvailability(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req availabilityRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeBadRequest(w, d.Logger, err)
			return
		}

		results, err := d.Availability.Check(r.Context(), req.Domains, req.Provider)
		switch {
		case err == nil:
			writeJSON(w, d.Logger, http.StatusOK, results)
		case errors.Is(err, availability.ErrInvalidInput):
			writeError(w, d.Logger, http.StatusBadRequest, "Invalid input", map[string]string{"domains": err.Error()})
		case errors.Is(err, availability.ErrUnknownProvider):
			writeError(w, d.Logger, http.StatusBadRequest, "Invalid input", map[string]string{"provider": err.Error()})
		default:
			d.Logger.Warn("availability check failed",
				logger.Int("domains", len(req.Domains)),
				logger.Error(err))
			writeError(w, d.Logger, http.StatusBadGateway, "Availability check failed", nil)
		}
	}
}
