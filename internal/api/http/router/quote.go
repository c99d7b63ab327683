package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/api/http/handler"
	"github.com/medassist/medassist_backend/pkg/authorize"
)

func (r *Router) registerQuoteRoutes(
	api fiber.Router,
	h *handler.QuoteHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	quotes := api.Group("/quotes", authRequired)

	// Patient space first: "/me" must not be swallowed by "/:id".
	quotes.Get("/me", h.ListMine)

	quotes.Get("/", requirePerm(authorize.ResourceQuote, authorize.ActionList), h.List)
	quotes.Post("/", requirePerm(authorize.ResourceQuote, authorize.ActionCreate), h.Create)

	q := quotes.Group("/:id")
	q.Get("/", requirePerm(authorize.ResourceQuote, authorize.ActionRead), h.GetByID)
	q.Put("/", requirePerm(authorize.ResourceQuote, authorize.ActionUpdate), h.Update)
	q.Post("/file", requirePerm(authorize.ResourceQuoteFile, authorize.ActionCreate), h.UploadFile)
	q.Get("/file", requirePerm(authorize.ResourceQuote, authorize.ActionRead), h.DownloadFile)
	q.Post("/send", requirePerm(authorize.ResourceQuote, authorize.ActionExecute), h.SendToPatient)
	q.Post("/respond", requirePerm(authorize.ResourceQuote, authorize.ActionUpdate), h.Respond)
}
