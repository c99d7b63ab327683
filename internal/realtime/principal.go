package realtime

// Role names as stored on user role assignments. The casbin layer guards the
// REST surface with the same assignments, so channel and HTTP authorization
// cannot disagree.
const (
	RoleAdministrateur = "administrateur"
	RoleSuperviseur    = "superviseur"
	RoleConfirmateur   = "confirmateur"
	RoleAgent          = "agent"
	RoleClinique       = "clinique"
	RolePatient        = "patient"
)

// Principal is the authenticated subscriber evaluated against channel
// predicates: an id plus a role-set snapshot taken at subscription time.
type Principal struct {
	ID    int64
	roles map[string]struct{}
}

func NewPrincipal(id int64, roles ...string) Principal {
	rs := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		rs[r] = struct{}{}
	}
	return Principal{ID: id, roles: rs}
}

func (p Principal) HasRole(name string) bool {
	_, ok := p.roles[name]
	return ok
}

// EntitledChannels returns the default channel set for the principal's
// roles: the mirror image of the registry predicates, used by clients that
// want "everything I am allowed to hear".
func (p Principal) EntitledChannels() []Channel {
	chs := []Channel{UserChannel(p.ID)}
	if p.HasRole(RoleAdministrateur) {
		chs = append(chs, ChannelAdmin)
	}
	if p.HasRole(RoleSuperviseur) {
		chs = append(chs, ChannelSuperviseur)
	}
	if p.HasRole(RoleConfirmateur) {
		chs = append(chs, ChannelConfirmateur)
	}
	if p.HasRole(RoleAgent) {
		chs = append(chs, AgentChannel(p.ID))
	}
	if p.HasRole(RolePatient) {
		chs = append(chs, PatientChannel(p.ID))
	}
	if p.HasRole(RoleClinique) {
		chs = append(chs, CliniqueChannel(p.ID))
	}
	return chs
}
