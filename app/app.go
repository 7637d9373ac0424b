package app

import (
	"github.com/go-chi/jwtauth/v5"

	"github.com/cquiroga/briefing-wizard/config"
	"github.com/cquiroga/briefing-wizard/pipeline"
	"github.com/cquiroga/briefing-wizard/store"
)

type App struct {
	*store.Store
	config.Config
	TokenAuth *jwtauth.JWTAuth
	Pipeline  *pipeline.Pipeline
}
