package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/api/http/handler"
	"github.com/medassist/medassist_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	qh *handler.QuoteHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Get("/stats", requirePerm(authorize.ResourceStats, authorize.ActionRead), ah.Stats)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Patch("/status", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.UpdateStatus)
	a.Delete("/", requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), ah.Delete)

	a.Post("/clinic-quote", requirePerm(authorize.ResourceQuoteFile, authorize.ActionCreate), ah.UploadClinicQuote)
	a.Get("/clinic-quote", requirePerm(authorize.ResourceQuoteFile, authorize.ActionRead), ah.DownloadClinicQuote)
	a.Delete("/clinic-quote", requirePerm(authorize.ResourceQuoteFile, authorize.ActionDelete), ah.RemoveClinicQuote)

	a.Get("/quote", requirePerm(authorize.ResourceQuote, authorize.ActionRead), qh.GetByAppointment)
}
