// Package app wires the services and handler from externally supplied
// dependencies.
package app

import (
	"log/slog"

	"sheetregistry/internal/api"
	"sheetregistry/internal/config"
	"sheetregistry/internal/domain"
	"sheetregistry/internal/service"
)

// Deps holds the external dependencies main() must provide: config, the
// spreadsheet gateway, the identity verifier, and the logger.
type Deps struct {
	Cfg      *config.Config
	Store    domain.RangeStore
	Verifier domain.TokenVerifier
	Logger   *slog.Logger
}

// App holds the fully wired application.
type App struct {
	Gate    *service.IdentityGate
	Users   *service.UserDirectory
	Audit   *service.AuditLog
	Records *service.RecordCatalog
	Handler *api.Handler
}

// New wires all services from the provided deps.
func New(deps Deps) *App {
	cfg := deps.Cfg

	audit := service.NewAuditLog(deps.Store, cfg.Sheets.AuditSheet)
	users := service.NewUserDirectory(deps.Store, cfg.Sheets.UsersSheet)
	records := service.NewRecordCatalog(deps.Store, audit, cfg.Sheets.RecordsSheet)
	gate := service.NewIdentityGate(
		deps.Verifier, users, audit,
		[]byte(cfg.Auth.SessionSecret), cfg.Auth.SessionTTL,
	)

	handler := api.NewHandler(gate, records, deps.Logger.With("component", "api"))

	return &App{
		Gate:    gate,
		Users:   users,
		Audit:   audit,
		Records: records,
		Handler: handler,
	}
}
