package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/cquiroga/briefing-wizard/app"
	"github.com/cquiroga/briefing-wizard/config"
	"github.com/cquiroga/briefing-wizard/database"
	"github.com/cquiroga/briefing-wizard/log"
	"github.com/cquiroga/briefing-wizard/mail"
	"github.com/cquiroga/briefing-wizard/pipeline"
	"github.com/cquiroga/briefing-wizard/ratelimit"
	"github.com/cquiroga/briefing-wizard/routes"
	"github.com/cquiroga/briefing-wizard/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg.DBUrl)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := ratelimit.New(ratelimit.DefaultMax, ratelimit.DefaultWindow)
	limiter.StartSweep(ctx)

	briefings := store.New(db)

	app := app.App{
		Store:     briefings,
		Config:    cfg,
		TokenAuth: jwtauth.New("HS256", []byte(cfg.TokenSecret), nil),
		Pipeline: &pipeline.Pipeline{
			Limiter:    limiter,
			Store:      briefings,
			Docs:       pipeline.DocRenderer{},
			Mail:       mail.New(cfg.Mail),
			AdminEmail: cfg.Mail.AdminTo,
		},
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
