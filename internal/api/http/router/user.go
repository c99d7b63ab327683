package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/api/http/handler"
	"github.com/medassist/medassist_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	// Self-service: any authenticated user.
	users.Get("/me", h.Me)
	users.Post("/me/password", h.ChangePassword)

	// Staff user administration.
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.Create)

	u := users.Group("/:id")
	u.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionRead), h.GetByID)
	u.Patch("/", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Update)
	u.Patch("/activate", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Activate)
	u.Patch("/deactivate", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Deactivate)
	u.Delete("/", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Delete)

	u.Get("/roles", requirePerm(authorize.ResourceRBAC, authorize.ActionRead), h.Roles)
	u.Post("/roles", requirePerm(authorize.ResourceRBAC, authorize.ActionGrant), h.AssignRole)
	u.Delete("/roles/:role", requirePerm(authorize.ResourceRBAC, authorize.ActionRevoke), h.RevokeRole)
}
