package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/internal/service/user"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrClinicNameRequired),
		errors.Is(err, user.ErrLastRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrInvalidPassword):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /users
func (h *UserHandler) Create(c fiber.Ctx) error {
	var body struct {
		FirstName  string   `json:"first_name"`
		LastName   string   `json:"last_name"`
		Email      string   `json:"email"`
		Phone      *string  `json:"phone"`
		Password   string   `json:"password"`
		Roles      []string `json:"roles"`
		ClinicName *string  `json:"clinic_name"`
		Address    *string  `json:"address"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" || body.LastName == "" || body.Email == "" || body.Password == "" {
		return badRequest(c, "first_name, last_name, email and password are required")
	}
	if len(body.Roles) == 0 {
		return badRequest(c, "at least one role is required")
	}

	u, err := h.svc.Create(c.Context(), user.CreateRequest{
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Email:      body.Email,
		Phone:      body.Phone,
		Password:   body.Password,
		Roles:      body.Roles,
		ClinicName: body.ClinicName,
		Address:    body.Address,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return created(c, u)
}

// GET /users
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Active  string `query:"active"`
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Role != "" {
		req.Role = &q.Role
	}
	if q.Active != "" {
		active := q.Active == "true"
		req.Active = &active
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	users, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, users)
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), int(claims.UserID))
	if err != nil {
		return mapUserError(c, err)
	}

	roles, err := h.svc.Roles(c.Context(), u.ID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"user": u, "roles": roles})
}

// POST /users/me/password
func (h *UserHandler) ChangePassword(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return badRequest(c, "current_password and new_password are required")
	}

	if err := h.svc.ChangePassword(c.Context(), int(claims.UserID), body.CurrentPassword, body.NewPassword); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

// GET /users/:id
func (h *UserHandler) GetByID(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		FirstName  *string `json:"first_name"`
		LastName   *string `json:"last_name"`
		Phone      *string `json:"phone"`
		ClinicName *string `json:"clinic_name"`
		Address    *string `json:"address"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), userID, user.UpdateRequest{
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Phone:      body.Phone,
		ClinicName: body.ClinicName,
		Address:    body.Address,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /users/:id/activate
func (h *UserHandler) Activate(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Activate(c.Context(), userID); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

// PATCH /users/:id/deactivate
func (h *UserHandler) Deactivate(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Deactivate(c.Context(), userID); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.SoftDelete(c.Context(), userID); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

// GET /users/:id/roles
func (h *UserHandler) Roles(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	roles, err := h.svc.Roles(c.Context(), userID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, roles)
}

// POST /users/:id/roles
func (h *UserHandler) AssignRole(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Role == "" {
		return badRequest(c, "role is required")
	}

	if err := h.svc.AssignRole(c.Context(), userID, body.Role); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}

// DELETE /users/:id/roles/:role
func (h *UserHandler) RevokeRole(c fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	role := c.Params("role")
	if role == "" {
		return badRequest(c, "role is required")
	}

	if err := h.svc.RevokeRole(c.Context(), userID, role); err != nil {
		return mapUserError(c, err)
	}

	return noContent(c)
}
