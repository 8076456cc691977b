package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

// Reload triggers a manual reload of the dictionary word list.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case d.ReloadTrigger <- struct{}{}:
			d.Logger.Info("manual dictionary reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, d.Logger, http.StatusAccepted, messageResponse{Message: "Reload triggered"})
		default:
			d.Logger.Warn("dictionary reload already pending",
				logger.String("remote_ip", r.RemoteAddr))
			writeJSON(w, d.Logger, http.StatusTooManyRequests, messageResponse{Message: "Reload already in progress, please wait"})
		}
	}
}
