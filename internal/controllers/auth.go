package controllers

import (
	"log/slog"
	"net/http"

	"gamecatalog/internal/middleware"
)

type AuthController struct {
	auth *middleware.AdminAuth
	log  *slog.Logger
}

func NewAuthController(auth *middleware.AdminAuth, log *slog.Logger) *AuthController {
	return &AuthController{
		auth: auth,
		log:  log,
	}
}

// Login validates the admin credential. On success the client keeps the
// credential itself for later admin calls; no session is created.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.auth.Login"

	if !c.auth.Verify(r) {
		c.log.Info("admin login rejected", slog.String("operation", op))
		respondJSON(w, c.log, http.StatusUnauthorized, errorResponse{
			Error:   "Unauthorized",
			Message: "Admin credentials required",
		})
		return
	}

	respondJSON(w, c.log, http.StatusOK, map[string]string{"status": "ok"})
}
