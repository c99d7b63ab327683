package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/medassist/medassist_backend/pkg/authorize"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
)

// RequirePermission checks the authenticated user against the Casbin policy
// in the sys domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(strconv.FormatInt(claims.UserID, 10))
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSelfPermission checks a permission in the caller's own user domain.
// Self-owned resources (sessions, notifications, realtime streams) live
// there rather than in sys.
func RequireSelfPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(strconv.FormatInt(claims.UserID, 10))
		domain := authorize.UserDomain(int(claims.UserID))
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
