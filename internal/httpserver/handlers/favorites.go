package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/brainstorm/internal/favorites"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

type favoriteRequest struct {
	Domain string `json:"domain"`
}

type favoritesResponse struct {
	Favorites []string `json:"favorites"`
}

func ListFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := d.Favorites.List(r.Context())
		if err != nil {
			d.Logger.Error("failed to list favorites", logger.Error(err))
			writeError(w, d.Logger, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, favoritesResponse{Favorites: list})
	}
}

func AddFavorite(d deps.Deps) http.HandlerFunc {
	return favoriteMutation(d, d.Favorites.Add, "Domain added to favorites")
}

func RemoveFavorite(d deps.Deps) http.HandlerFunc {
	return favoriteMutation(d, d.Favorites.Remove, "Domain removed from favorites")
}

func favoriteMutation(d deps.Deps, apply func(context.Context, string) error, okMsg string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req favoriteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeBadRequest(w, d.Logger, err)
			return
		}

		if err := apply(r.Context(), req.Domain); err != nil {
			if errors.Is(err, favorites.ErrInvalidDomain) {
				writeError(w, d.Logger, http.StatusBadRequest, "Invalid input", map[string]string{"domain": err.Error()})
				return
			}
			d.Logger.Error("favorite update failed",
				logger.String("domain", req.Domain),
				logger.Error(err))
			writeError(w, d.Logger, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		writeJSON(w, d.Logger, http.StatusOK, messageResponse{Message: okMsg})
	}
}
