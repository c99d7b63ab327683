package realtime

// The channel authorization registry: a closed, declarative mapping from
// channel kinds to predicates over (principal, channel id). This is the
// single multi-tenant boundary for the fan-out subsystem. Extend it only by
// adding entries here, never by special-casing inside an emitter.

type predicate func(p Principal, id int64) bool

var registry = map[channelKind]predicate{
	kindUser: func(p Principal, id int64) bool {
		return p.ID == id
	},
	kindRoleAdmin: func(p Principal, _ int64) bool {
		return p.HasRole(RoleAdministrateur)
	},
	kindRoleSuperviseur: func(p Principal, _ int64) bool {
		return p.HasRole(RoleSuperviseur)
	},
	kindRoleConfirmateur: func(p Principal, _ int64) bool {
		return p.HasRole(RoleConfirmateur)
	},
	kindRoleAgent: func(p Principal, id int64) bool {
		return p.HasRole(RoleAgent) && p.ID == id
	},
	kindRolePatient: func(p Principal, id int64) bool {
		return p.HasRole(RolePatient) && p.ID == id
	},
	kindClinique: func(p Principal, id int64) bool {
		return p.HasRole(RoleClinique) && p.ID == id
	},
}

// Authorize answers whether the principal may join the named channel.
// Malformed names and unknown patterns are denials, not errors.
func Authorize(p Principal, name string) bool {
	parsed, err := ParseChannel(name)
	if err != nil {
		return false
	}
	pred, ok := registry[parsed.kind]
	if !ok {
		return false
	}
	return pred(p, parsed.id)
}
