package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
)

type componentStatus struct {
	OK         bool     `json:"ok"`
	Words      *int     `json:"words,omitempty"`
	Source     string   `json:"source,omitempty"`
	LastReload string   `json:"last_reload,omitempty"`
	Backend    string   `json:"backend,omitempty"`
	Providers  []string `json:"providers,omitempty"`
	Default    string   `json:"default,omitempty"`
	Mode       string   `json:"mode,omitempty"`
	Impact     string   `json:"impact,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of every backing component.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"dictionary":   dictionaryStatus(d),
			"favorites":    {OK: true, Backend: d.Favorites.Backend()},
			"redis":        checkRedis(r.Context(), d),
			"availability": {OK: true, Providers: d.Availability.Providers(), Default: d.Availability.Default()},
		}

		writeJSON(w, d.Logger, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func dictionaryStatus(d deps.Deps) componentStatus {
	dict := d.Dictionary.Load()
	words := dict.Size()
	st := componentStatus{OK: dict != nil, Words: &words, LastReload: "never"}

	if d.ReloadStatus != nil {
		rs := d.ReloadStatus()
		st.Source = rs.Source
		st.Error = rs.LastError
		if !rs.LoadedAt.IsZero() {
			st.LastReload = rs.LoadedAt.Format("2006-01-02 15:04:05")
		}
	}
	return st
}

func overallStatus(components map[string]componentStatus) string {
	if dict, ok := components["dictionary"]; !ok || !dict.OK {
		return "critical" // nothing can be classified
	}
	if redis, ok := components["redis"]; ok && !redis.OK {
		return "degraded" // favorites unavailable
	}
	return "ok"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "favorites-in-memory",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "favorites-unavailable",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "optimal",
	}
}
