package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBadRequest    = errors.New("bad request")
	ErrGetGames      = errors.New("failed to fetch games")
	ErrGetGame       = errors.New("failed to fetch game")
	ErrCreate        = errors.New("failed to create game")
	ErrUpdate        = errors.New("failed to update game")
	ErrDelete        = errors.New("failed to delete game")
	ErrImport        = errors.New("failed to import game")
	ErrGetFavorites  = errors.New("failed to fetch favorites")
	ErrAddFavorite   = errors.New("failed to add favorite")
	ErrDelFavorite   = errors.New("failed to remove favorite")
	ErrCheckFavorite = errors.New("failed to check favorite")
	ErrRecommend     = errors.New("failed to get recommendations")
	ErrEncoding      = errors.New("failed to encode response")
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, log *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error(ErrEncoding.Error(), slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, log *slog.Logger, status int, message string) {
	respondJSON(w, log, status, errorResponse{Error: message})
}
