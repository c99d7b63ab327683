package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/api/http/handler"
	"github.com/medassist/medassist_backend/pkg/authorize"
)

func (r *Router) registerNotificationRoutes(
	api fiber.Router,
	nh *handler.NotificationHandler,
	authRequired fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	notifs := api.Group("/notifications", authRequired,
		requireSelf(authorize.ResourceNotification, authorize.ActionManage))

	notifs.Get("/", nh.List)
	notifs.Get("/unread-count", nh.UnreadCount)
	notifs.Patch("/read-all", nh.MarkAllRead)
	notifs.Patch("/:id/read", nh.MarkRead)
}
