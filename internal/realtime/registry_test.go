package realtime

import "testing"

func TestAuthorize(t *testing.T) {
	admin := NewPrincipal(1, RoleAdministrateur)
	superviseur := NewPrincipal(2, RoleSuperviseur)
	confirmateur := NewPrincipal(3, RoleConfirmateur)
	agent := NewPrincipal(4, RoleAgent)
	clinique5 := NewPrincipal(5, RoleClinique)
	patient5 := NewPrincipal(5, RolePatient)
	patient9 := NewPrincipal(9, RolePatient)

	tests := []struct {
		name      string
		principal Principal
		channel   string
		want      bool
	}{
		{"admin joins role.admin", admin, "role.admin", true},
		{"superviseur joins role.superviseur", superviseur, "role.superviseur", true},
		{"confirmateur joins role.confirmateur", confirmateur, "role.confirmateur", true},
		{"admin cannot join role.superviseur", admin, "role.superviseur", false},
		{"agent cannot join role.admin", agent, "role.admin", false},

		{"agent joins own agent channel", agent, "role.agent.4", true},
		{"agent cannot join another agent channel", agent, "role.agent.5", false},
		{"admin cannot join agent channel without role", admin, "role.agent.1", false},

		{"clinique joins own channel", clinique5, "clinique.5", true},
		{"clinique cannot join other clinic", clinique5, "clinique.6", false},
		{"patient cannot join clinique channel with same id", patient5, "clinique.5", false},
		{"clinique cannot join patient channel", clinique5, "role.patient.5", false},

		{"patient joins own channel", patient9, "role.patient.9", true},
		{"patient cannot join another patient", patient9, "role.patient.5", false},

		{"user channel own id", agent, "user.4", true},
		{"user channel other id", agent, "user.5", false},

		{"malformed id denied", clinique5, "clinique.5abc", false},
		{"negative id denied", clinique5, "clinique.-1", false},
		{"unknown pattern denied", admin, "role.directeur", false},
		{"empty denied", admin, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authorize(tt.principal, tt.channel); got != tt.want {
				t.Errorf("Authorize(id=%d, %q) = %v, want %v", tt.principal.ID, tt.channel, got, tt.want)
			}
		})
	}
}

func TestEntitledChannels(t *testing.T) {
	p := NewPrincipal(5, RoleClinique)
	chs := p.EntitledChannels()

	want := map[Channel]bool{
		UserChannel(5):     true,
		CliniqueChannel(5): true,
	}
	if len(chs) != len(want) {
		t.Fatalf("EntitledChannels() = %v, want exactly %v", chs, want)
	}
	for _, ch := range chs {
		if !want[ch] {
			t.Errorf("unexpected entitled channel %q", ch)
		}
		// Entitlement and registry must agree.
		if !Authorize(p, string(ch)) {
			t.Errorf("entitled channel %q denied by registry", ch)
		}
	}
}

func TestEntitledChannelsMultiRole(t *testing.T) {
	p := NewPrincipal(1, RoleAdministrateur, RoleSuperviseur)
	for _, ch := range p.EntitledChannels() {
		if !Authorize(p, string(ch)) {
			t.Errorf("entitled channel %q denied by registry", ch)
		}
	}
}
