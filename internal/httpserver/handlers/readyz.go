package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
	Words int  `json:"words"`
}

// Readyz reports ready once a dictionary snapshot has been published.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dict := d.Dictionary.Load()
		status := http.StatusOK
		if dict == nil {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, d.Logger, status, readyzResponse{
			Ready: dict != nil,
			Words: dict.Size(),
		})
	}
}
