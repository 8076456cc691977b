package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/brainstorm/internal/dictionary"
	"github.com/MrSnakeDoc/brainstorm/internal/generator"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

type meaningfulRequest struct {
	Words *[]string `json:"words"`
}

// CheckMeaningful serves POST /api/words/check-meaningful.
func CheckMeaningful(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req meaningfulRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeBadRequest(w, d.Logger, err)
			return
		}
		if req.Words == nil {
			writeError(w, d.Logger, http.StatusBadRequest, "Invalid input", map[string]string{"words": "is required"})
			return
		}
		if n := len(*req.Words); n > generator.MaxPageSize {
			writeError(w, d.Logger, http.StatusBadRequest, "Invalid input",
				map[string]string{"words": "at most " + strconv.Itoa(generator.MaxPageSize) + " words per request"})
			return
		}

		results, err := d.Dictionary.Lookup(r.Context(), *req.Words)
		if err != nil {
			status := http.StatusBadGateway
			if errors.Is(err, dictionary.ErrNotLoaded) {
				status = http.StatusServiceUnavailable
			}
			d.Logger.Warn("meaningful check failed", logger.Error(err))
			writeError(w, d.Logger, status, "Dictionary lookup failed", nil)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, results)
	}
}
