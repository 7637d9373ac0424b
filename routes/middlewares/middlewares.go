package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// Admin guards the dashboard API. It accepts either the shared secret in the
// X-Admin-Token header or a session token with the admin role.
func Admin(tokenAuth *jwtauth.JWTAuth, sharedSecret string) func(http.Handler) http.Handler {
	verifier := jwtauth.Verifier(tokenAuth)

	return func(next http.Handler) http.Handler {
		authed := verifier(requireAdminClaim(next))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if legacy := r.Header.Get("X-Admin-Token"); legacy != "" {
				if subtle.ConstantTimeCompare([]byte(legacy), []byte(sharedSecret)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			authed.ServeHTTP(w, r)
		})
	}
}

func requireAdminClaim(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
