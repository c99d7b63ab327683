package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medassist/medassist_backend/config"
	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/repo"
	"github.com/medassist/medassist_backend/internal/service/appointment"
	"github.com/medassist/medassist_backend/internal/service/auth"
	"github.com/medassist/medassist_backend/internal/service/notification"
	"github.com/medassist/medassist_backend/internal/service/quote"
	"github.com/medassist/medassist_backend/internal/service/user"
	"github.com/medassist/medassist_backend/pkg/authorize"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideAppointmentService,
		ProvideQuoteService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz, slog.Default())
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideAppointmentService(db *repo.Client, bus realtime.Bus) appointment.Service {
	return appointment.New(db, bus, slog.Default())
}

func ProvideQuoteService(db *repo.Client, bus realtime.Bus) quote.Service {
	return quote.New(db, bus, slog.Default())
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
