package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/mw"
)

func init() { Register(registerFavorites) }

func registerFavorites(r chi.Router, d deps.Deps) {
	fav := r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.EnforceHost(d.AllowedHosts, d.Logger))
	fav.Get("/api/favorites", handlers.ListFavorites(d))
	fav.Post("/api/favorites/add", handlers.AddFavorite(d))
	fav.Post("/api/favorites/remove", handlers.RemoveFavorite(d))
}
