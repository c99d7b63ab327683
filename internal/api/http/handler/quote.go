package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/realtime"
	"github.com/medassist/medassist_backend/internal/service/quote"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
	s3pkg "github.com/medassist/medassist_backend/pkg/s3"
)

type QuoteHandler struct {
	svc quote.Service
	s3  *s3pkg.Client
}

func NewQuoteHandler(svc quote.Service, s3 *s3pkg.Client) *QuoteHandler {
	return &QuoteHandler{svc: svc, s3: s3}
}

func mapQuoteError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, quote.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, quote.ErrQuoteExists),
		errors.Is(err, quote.ErrAlreadySent),
		errors.Is(err, quote.ErrAlreadyResponded):
		return conflict(c, err.Error())
	case errors.Is(err, quote.ErrEmptyQuote),
		errors.Is(err, quote.ErrCommentRequired),
		errors.Is(err, quote.ErrNotSent):
		return badRequest(c, err.Error())
	case errors.Is(err, quote.ErrNotYourQuote):
		return forbidden(c)
	case errors.Is(err, realtime.ErrUnknownSenderRole):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// senderRole picks the staff role the quote is sent under. Only admins and
// supervisors reach this code path (RBAC gates the route), so the claims
// carry at least one of the two.
func senderRole(claims *pasetotoken.Claims) string {
	for _, r := range claims.Roles {
		if r == realtime.RoleAdministrateur {
			return r
		}
	}
	for _, r := range claims.Roles {
		if r == realtime.RoleSuperviseur {
			return r
		}
	}
	return ""
}

// POST /quotes
func (h *QuoteHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		AppointmentID      int               `json:"appointment_id"`
		TotalCliniqueCents int64             `json:"total_clinique_cents"`
		Items              []quote.ItemInput `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.AppointmentID <= 0 {
		return badRequest(c, "appointment_id is required")
	}
	if body.TotalCliniqueCents < 0 {
		return badRequest(c, "total_clinique_cents must not be negative")
	}

	q, err := h.svc.Create(c.Context(), quote.CreateRequest{
		AppointmentID:      body.AppointmentID,
		CreatedBy:          int(claims.UserID),
		TotalCliniqueCents: body.TotalCliniqueCents,
		Items:              body.Items,
	})
	if err != nil {
		return mapQuoteError(c, err)
	}

	return created(c, q)
}

// GET /quotes
func (h *QuoteHandler) List(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Sent    string `query:"sent"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := quote.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Sent != "" {
		sent := q.Sent == "true"
		req.Sent = &sent
	}

	quotes, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, quotes)
}

// GET /quotes/me  (patient space: only released quotes)
func (h *QuoteHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	quotes, err := h.svc.ListForPatient(c.Context(), int(claims.UserID))
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, quotes)
}

// GET /quotes/:id
func (h *QuoteHandler) GetByID(c fiber.Ctx) error {
	quoteID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid quote id")
	}

	q, err := h.svc.GetByID(c.Context(), quoteID)
	if err != nil {
		return mapQuoteError(c, err)
	}

	items, err := h.svc.Items(c.Context(), quoteID)
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, fiber.Map{"quote": q, "items": items})
}

// GET /appointments/:id/quote
func (h *QuoteHandler) GetByAppointment(c fiber.Ctx) error {
	apptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	q, err := h.svc.GetByAppointment(c.Context(), apptID)
	if err != nil {
		return mapQuoteError(c, err)
	}

	items, err := h.svc.Items(c.Context(), q.ID)
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, fiber.Map{"quote": q, "items": items})
}

// PUT /quotes/:id
func (h *QuoteHandler) Update(c fiber.Ctx) error {
	quoteID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid quote id")
	}

	var body struct {
		TotalCliniqueCents int64             `json:"total_clinique_cents"`
		Items              []quote.ItemInput `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.TotalCliniqueCents < 0 {
		return badRequest(c, "total_clinique_cents must not be negative")
	}

	q, err := h.svc.Update(c.Context(), quoteID, quote.UpdateRequest{
		TotalCliniqueCents: body.TotalCliniqueCents,
		Items:              body.Items,
	})
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, q)
}

// POST /quotes/:id/file
func (h *QuoteHandler) UploadFile(c fiber.Ctx) error {
	quoteID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid quote id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if filepath.Ext(fh.Filename) != ".pdf" {
		return badRequest(c, "only PDF files are accepted")
	}

	q, err := h.svc.GetByID(c.Context(), quoteID)
	if err != nil {
		return mapQuoteError(c, err)
	}
	if q.SentToPatientAt != nil {
		return conflict(c, quote.ErrAlreadySent.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()

	name := filepath.Base(fh.Filename)
	key := fmt.Sprintf("quotes/%d/%s", quoteID, name)
	if err := h.s3.Upload(c.Context(), key, "application/pdf", f, fh.Size); err != nil {
		return internalError(c)
	}

	items, err := h.svc.Items(c.Context(), quoteID)
	if err != nil {
		return mapQuoteError(c, err)
	}
	inputs := make([]quote.ItemInput, 0, len(items))
	for _, it := range items {
		inputs = append(inputs, quote.ItemInput{
			Label:       it.Label,
			AmountCents: it.AmountCents,
		})
	}

	q, err = h.svc.Update(c.Context(), quoteID, quote.UpdateRequest{
		TotalCliniqueCents: q.TotalCliniqueCents,
		Items:              inputs,
		FilePath:           &key,
		FileName:           &name,
	})
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, q)
}

// GET /quotes/:id/file
func (h *QuoteHandler) DownloadFile(c fiber.Ctx) error {
	quoteID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid quote id")
	}

	q, err := h.svc.GetByID(c.Context(), quoteID)
	if err != nil {
		return mapQuoteError(c, err)
	}
	if q.FilePath == nil {
		return notFound(c, "quote has no file")
	}

	url, err := h.s3.PresignDownload(c.Context(), *q.FilePath)
	if err != nil {
		return internalError(c)
	}

	return ok(c, fiber.Map{"url": url})
}

// POST /quotes/:id/send
func (h *QuoteHandler) SendToPatient(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	quoteID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid quote id")
	}

	role := senderRole(claims)
	if role == "" {
		return forbidden(c)
	}

	q, err := h.svc.SendToPatient(c.Context(), quoteID, int(claims.UserID), role)
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, q)
}

// POST /quotes/:id/respond  (patient)
func (h *QuoteHandler) Respond(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	quoteID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid quote id")
	}

	var body struct {
		Accept  bool    `json:"accept"`
		Comment *string `json:"comment"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	q, err := h.svc.Respond(c.Context(), quoteID, quote.RespondRequest{
		PatientID: int(claims.UserID),
		Accept:    body.Accept,
		Comment:   body.Comment,
	})
	if err != nil {
		return mapQuoteError(c, err)
	}

	return ok(c, q)
}
