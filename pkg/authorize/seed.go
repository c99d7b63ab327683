package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Administrateur: god mode
		{RoleAdministrateur, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Superviseur: everything except user and RBAC management
		{RoleSuperviseur, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceQuote, ActionManage, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceQuote, ActionExecute, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceQuoteFile, ActionManage, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceStats, ActionRead, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceUser, ActionRead, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceUser, ActionList, EffectAllow},
		{RoleSuperviseur, DomainSys, ResourceAudit, ActionRead, EffectAllow},

		// Confirmateur: works the pending queue
		{RoleConfirmateur, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleConfirmateur, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleConfirmateur, DomainSys, ResourceAppointment, ActionUpdate, EffectAllow},

		// Agent: creates and reads intakes
		{RoleAgent, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleAgent, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleAgent, DomainSys, ResourceAppointment, ActionList, EffectAllow},

		// Clinique: reads its assignments, uploads quote documents
		{RoleClinique, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinique, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleClinique, DomainSys, ResourceQuoteFile, ActionCreate, EffectAllow},
		{RoleClinique, DomainSys, ResourceQuoteFile, ActionDelete, EffectAllow},

		// Patient: reads own data, responds to quotes
		{RolePatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceQuote, ActionRead, EffectAllow},
		{RolePatient, DomainSys, ResourceQuote, ActionList, EffectAllow},
		{RolePatient, DomainSys, ResourceQuote, ActionUpdate, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRealtime, ActionExecute, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID int) error {
	domain := UserDomain(userID)
	subject := UserSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignSystemRole grants a platform role. The grant lives in the sys domain;
// the roles table row is written by the user service in the same operation so
// the realtime channel registry and the REST enforcer never disagree.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID int, role Role) error {
	if _, ok := KnownRoles[role]; !ok || role == RoleUserSelf {
		return ErrInvalidArgs
	}

	subject := UserSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a platform role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID int, role Role) error {
	subject := UserSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// GetSystemRoles returns the platform roles a user holds.
func GetSystemRoles(ctx context.Context, auth IAuthorization, userID int) ([]Role, error) {
	subject := UserSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainSys)
}
