package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/api/http/handler"
	"github.com/medassist/medassist_backend/pkg/authorize"
)

func (r *Router) registerRealtimeRoutes(
	api fiber.Router,
	h *handler.RealtimeHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	rt := api.Group("/realtime", authRequired,
		requireSelf(authorize.ResourceRealtime, authorize.ActionExecute))

	rt.Get("/stream", h.Stream)
}
