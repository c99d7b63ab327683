package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // send, confirm, respond, etc.

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"

	// Brokerage
	ResourceAppointment Resource = "appointment"
	ResourceQuote       Resource = "quote"
	ResourceQuoteFile   Resource = "quote_file"
	ResourceStats       Resource = "stats"

	// Communication
	ResourceNotification Resource = "notification"
	ResourceRealtime     Resource = "realtime"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {},
	ResourceAppointment: {}, ResourceQuote: {}, ResourceQuoteFile: {}, ResourceStats: {},
	ResourceNotification: {}, ResourceRealtime: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.
// The short names match the roles table exactly; the realtime channel
// registry derives its entitlements from the same assignments.

const (
	WildcardRole Role = "*"

	RoleAdministrateur Role = "role:administrateur"
	RoleSuperviseur    Role = "role:superviseur"
	RoleConfirmateur   Role = "role:confirmateur"
	RoleAgent          Role = "role:agent"
	RoleClinique       Role = "role:clinique"
	RolePatient        Role = "role:patient"

	// Private user scope (domain = user:<id>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleAdministrateur: {},
	RoleSuperviseur:    {},
	RoleConfirmateur:   {},
	RoleAgent:          {},
	RoleClinique:       {},
	RolePatient:        {},
	RoleUserSelf:       {},
}

// French display names
var RoleDisplayNamesFR = map[Role]string{
	RoleAdministrateur: "Administrateur",
	RoleSuperviseur:    "Superviseur",
	RoleConfirmateur:   "Confirmateur",
	RoleAgent:          "Agent",
	RoleClinique:       "Clinique",
	RolePatient:        "Patient",
	RoleUserSelf:       "Utilisateur",
}

// DBRoleToRBACRole maps roles.name values to Casbin roles.
var DBRoleToRBACRole = map[string]Role{
	"administrateur": RoleAdministrateur,
	"superviseur":    RoleSuperviseur,
	"confirmateur":   RoleConfirmateur,
	"agent":          RoleAgent,
	"clinique":       RoleClinique,
	"patient":        RolePatient,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefix for per-user private scopes.
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reIntID = regexp.MustCompile(`^[0-9]+$`)
)

// UserDomain builds the private domain for one user id.
func UserDomain(userID int) Domain {
	return Domain(fmt.Sprintf("%s%d", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reIntID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// UserSubject builds the grouping subject for a user id.
func UserSubject(userID int) GroupSubject {
	return GroupSubject(fmt.Sprintf("%d", userID))
}

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
