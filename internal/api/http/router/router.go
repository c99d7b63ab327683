package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medassist/medassist_backend/config"
	"github.com/medassist/medassist_backend/internal/api/http/handler"
	"github.com/medassist/medassist_backend/internal/api/http/middleware"
	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/service/appointment"
	"github.com/medassist/medassist_backend/internal/service/auth"
	"github.com/medassist/medassist_backend/internal/service/notification"
	"github.com/medassist/medassist_backend/internal/service/quote"
	"github.com/medassist/medassist_backend/internal/service/user"
	"github.com/medassist/medassist_backend/pkg/authorize"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
	s3pkg "github.com/medassist/medassist_backend/pkg/s3"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	Bus             realtime.Bus
	S3              *s3pkg.Client
	UserSvc         user.Service
	AuthSvc         auth.Service
	AppointmentSvc  appointment.Service
	QuoteSvc        quote.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.S3)
	quoteH := handler.NewQuoteHandler(r.p.QuoteSvc, r.p.S3)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)
	realtimeH := handler.NewRealtimeHandler(r.p.Bus, r.p.Cfg)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, quoteH, authRequired, requirePerm)
	r.registerQuoteRoutes(api, quoteH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requireSelf)
	r.registerRealtimeRoutes(api, realtimeH, authRequired, requireSelf)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
