package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/service/appointment"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
	s3pkg "github.com/medassist/medassist_backend/pkg/s3"
)

type AppointmentHandler struct {
	svc appointment.Service
	s3  *s3pkg.Client
}

func NewAppointmentHandler(svc appointment.Service, s3 *s3pkg.Client) *AppointmentHandler {
	return &AppointmentHandler{svc: svc, s3: s3}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrStatusFinal):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrNotAssigned):
		return forbidden(c)
	case errors.Is(err, appointment.ErrNoQuoteFile):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		AgentID    int    `query:"agent_id"`
		CliniqueID int    `query:"clinique_id"`
		PatientID  int    `query:"patient_id"`
		Status     string `query:"status"`
		From       string `query:"from"`
		To         string `query:"to"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.AgentID > 0 {
		req.AgentID = &q.AgentID
	}
	if q.CliniqueID > 0 {
		req.CliniqueID = &q.CliniqueID
	}
	if q.PatientID > 0 {
		req.PatientID = &q.PatientID
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/stats
func (h *AppointmentHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, stats)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID    *int      `json:"patient_id"`
		CliniqueID   *int      `json:"clinique_id"`
		DateRdv      time.Time `json:"date_rdv"`
		FullName     string    `json:"full_name"`
		Phone        string    `json:"phone"`
		Intervention *string   `json:"intervention"`
		Notes        *string   `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FullName == "" || body.Phone == "" {
		return badRequest(c, "full_name and phone are required")
	}
	if body.DateRdv.IsZero() {
		return badRequest(c, "date_rdv is required")
	}

	appt, err := h.svc.Create(c.Context(), appointment.CreateRequest{
		AgentID:      int(claims.UserID),
		PatientID:    body.PatientID,
		CliniqueID:   body.CliniqueID,
		DateRdv:      body.DateRdv,
		FullName:     body.FullName,
		Phone:        body.Phone,
		Intervention: body.Intervention,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c fiber.Ctx) error {
	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Status != "confirmed" && body.Status != "cancelled" {
		return badRequest(c, "status must be confirmed or cancelled")
	}

	appt, err := h.svc.UpdateStatus(c.Context(), apptID, body.Status)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// POST /appointments/:id/clinic-quote
func (h *AppointmentHandler) UploadClinicQuote(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if filepath.Ext(fh.Filename) != ".pdf" {
		return badRequest(c, "only PDF files are accepted")
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()

	key := fmt.Sprintf("clinic-quotes/%d/%s", apptID, filepath.Base(fh.Filename))
	if err := h.s3.Upload(c.Context(), key, "application/pdf", f, fh.Size); err != nil {
		return internalError(c)
	}

	appt, err := h.svc.AttachClinicQuote(c.Context(), apptID, int(claims.UserID), key)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// GET /appointments/:id/clinic-quote
func (h *AppointmentHandler) DownloadClinicQuote(c fiber.Ctx) error {
	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	if appt.ClinicQuotePath == nil {
		return notFound(c, appointment.ErrNoQuoteFile.Error())
	}

	url, err := h.s3.PresignDownload(c.Context(), *appt.ClinicQuotePath)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{"url": url})
}

// DELETE /appointments/:id/clinic-quote
func (h *AppointmentHandler) RemoveClinicQuote(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	key := appt.ClinicQuotePath

	if err := h.svc.RemoveClinicQuote(c.Context(), apptID, int(claims.UserID)); err != nil {
		return mapAppointmentError(c, err)
	}

	// The DB reference is gone; the object itself is best-effort cleanup.
	if key != nil {
		_ = h.s3.Delete(c.Context(), *key)
	}

	return noContent(c)
}

// DELETE /appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.SoftDelete(c.Context(), apptID); err != nil {
		return mapAppointmentError(c, err)
	}

	return noContent(c)
}
