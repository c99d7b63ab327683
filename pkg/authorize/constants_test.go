package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid user domain", Domain("user:42"), true},
		{"large user id", Domain("user:9223372036854775807"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"user without id", Domain("user:"), false},
		{"user with non-numeric id", Domain("user:abc"), false},
		{"user with trailing garbage", Domain("user:5abc"), false},
		{"user with negative id", Domain("user:-1"), false},
		{"unknown prefix", Domain("clinic:42"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestUserDomain(t *testing.T) {
	expected := Domain("user:42")

	result := UserDomain(42)
	if result != expected {
		t.Errorf("UserDomain(42) = %q, want %q", result, expected)
	}
	if !IsValidDomain(result) {
		t.Errorf("UserDomain(42) produced invalid domain %q", result)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession, ResourceRefreshToken,
		ResourceAppointment, ResourceQuote, ResourceQuoteFile, ResourceStats,
		ResourceNotification, ResourceRealtime,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RoleAdministrateur, RoleSuperviseur, RoleConfirmateur,
		RoleAgent, RoleClinique, RolePatient,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestDBRoleToRBACRole(t *testing.T) {
	// Every roles.name value must map to a known Casbin role.
	for dbRole, rbacRole := range DBRoleToRBACRole {
		if _, ok := KnownRoles[rbacRole]; !ok {
			t.Errorf("DB role %q maps to unknown Casbin role %q", dbRole, rbacRole)
		}
	}
	if len(DBRoleToRBACRole) != 6 {
		t.Errorf("expected 6 DB roles, got %d", len(DBRoleToRBACRole))
	}
}

func TestRoleDisplayNamesFR(t *testing.T) {
	// Verify all roles have French display names
	for role := range KnownRoles {
		if name, ok := RoleDisplayNamesFR[role]; !ok || name == "" {
			t.Errorf("Expected role %q to have a French display name", role)
		}
	}
}
