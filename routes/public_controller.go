package routes

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/cquiroga/briefing-wizard/app"
	"github.com/cquiroga/briefing-wizard/briefing"
	"github.com/cquiroga/briefing-wizard/httpx"
	"github.com/cquiroga/briefing-wizard/pricing"
)

func SubmitBriefing(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, reject := app.Pipeline.Submit(r.Context(), clientAddr(r), r.Body)
		if reject != nil {
			render.Status(r, reject.Status)
			render.JSON(w, r, reject)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, result)
	}
}

func ListBriefingConfigs(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, briefing.Enabled())
	}
}

func GetBriefingConfig(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		briefingType := chi.URLParam(r, "type")
		cfg := briefing.Get(briefingType)
		if cfg == nil {
			httpx.LogNotFound(w, "briefing.get_config", briefingType)
			return
		}
		render.JSON(w, r, cfg)
	}
}

func CalculatePrice(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var values map[string]any
		if err := render.DecodeJSON(r.Body, &values); err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "request.parse_body", "Datos de cotización inválidos.")
			return
		}
		render.JSON(w, r, pricing.Calculate(values))
	}
}

// clientAddr resolves the submitting client's address, preferring proxy
// headers over the socket peer.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return "unknown"
}
