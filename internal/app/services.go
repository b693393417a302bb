package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres"
	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres/assignment"
	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres/call"
	"github.com/heartmarshall/callhistory-backend/internal/adapter/postgres/trash"
	"github.com/heartmarshall/callhistory-backend/internal/adapter/provider/retell"
	"github.com/heartmarshall/callhistory-backend/internal/auth"
	"github.com/heartmarshall/callhistory-backend/internal/config"
	"github.com/heartmarshall/callhistory-backend/internal/preview"
	"github.com/heartmarshall/callhistory-backend/internal/service/assignments"
	"github.com/heartmarshall/callhistory-backend/internal/service/calls"
	"github.com/heartmarshall/callhistory-backend/internal/service/callsync"
	"github.com/heartmarshall/callhistory-backend/internal/service/calltrash"
)

// Services is the wired service layer shared by the server and the one-shot
// commands.
type Services struct {
	Calls       *calls.Service
	Sync        *callsync.Service
	Trash       *calltrash.Service
	Assignments *assignments.Service
	Preview     *preview.Previewer
	Tokens      *auth.JWTManager
}

// NewServices builds repositories, the Retell client and every service on
// top of pool.
func NewServices(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool) *Services {
	txm := postgres.NewTxManager(pool)

	callRepo := call.New(pool)
	trashRepo := trash.New(pool)

	source := retell.NewClient(cfg.Retell.BaseURL, cfg.Retell.APIKey, cfg.Retell.Timeout, logger)

	return &Services{
		Calls:       calls.NewService(logger, callRepo),
		Sync:        callsync.NewService(logger, callRepo, source),
		Trash:       calltrash.NewService(logger, callRepo, trashRepo, txm, cfg.Trash.Retention()),
		Assignments: assignments.NewService(logger, assignment.New(pool), callRepo),
		Preview: preview.New(logger, preview.Config{
			MaxRows:   cfg.Preview.MaxRows,
			MaxCols:   cfg.Preview.MaxCols,
			LegacyXLS: cfg.Preview.LegacyXLS,
		}),
		Tokens: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),
	}
}
