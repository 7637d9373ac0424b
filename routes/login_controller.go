package routes

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"github.com/cquiroga/briefing-wizard/app"
	"github.com/cquiroga/briefing-wizard/config"
	"github.com/cquiroga/briefing-wizard/httpx"
	"github.com/cquiroga/briefing-wizard/log"
)

// Login exchanges the shared admin password for a session token.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := render.DecodeJSON(r.Body, &body); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if !passwordMatches(app.Config, body.Password) {
			httpx.LogStatus(w, http.StatusUnauthorized, log.DebugLevel, "login.bad_password")
			return
		}

		claims := map[string]any{"role": "admin"}
		jwtauth.SetIssuedNow(claims)
		jwtauth.SetExpiryIn(claims, app.TokenTTL)
		_, token, err := app.TokenAuth.Encode(claims)
		if err != nil {
			httpx.LogInternalError(w, "login.token_encode", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"token":     token,
			"expiresIn": int(app.TokenTTL.Seconds()),
		})
	}
}

func passwordMatches(cfg config.Config, password string) bool {
	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(cfg.AdminPassword), []byte(password)) == 1
}
