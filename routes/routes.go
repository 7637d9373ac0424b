package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cquiroga/briefing-wizard/app"
	"github.com/cquiroga/briefing-wizard/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/briefings", SubmitBriefing(app))
	api.Get("/briefings/config", ListBriefingConfigs(app))
	api.Get("/briefings/config/{type}", GetBriefingConfig(app))
	api.Post("/briefings/price", CalculatePrice(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenAuth, app.TokenSecret))

		r.Get("/briefings", ListBriefings(app))
		r.Get("/briefings/export", ExportCSV(app))
		r.Get("/briefings/{id}", GetBriefingByID(app))
		r.Patch("/briefings/{id}", PatchBriefing(app))
		r.Get("/briefings/{id}/docx", ExportDocx(app))
		r.Get("/briefings/{id}/xlsx", ExportXlsx(app))
	})

	api.Post("/login", Login(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
