package realtime

import (
	"errors"
	"testing"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		kind    channelKind
		id      int64
		wantErr bool
	}{
		{"admin role channel", "role.admin", kindRoleAdmin, 0, false},
		{"superviseur role channel", "role.superviseur", kindRoleSuperviseur, 0, false},
		{"confirmateur role channel", "role.confirmateur", kindRoleConfirmateur, 0, false},
		{"agent channel", "role.agent.12", kindRoleAgent, 12, false},
		{"patient channel", "role.patient.7", kindRolePatient, 7, false},
		{"clinique channel", "clinique.3", kindClinique, 3, false},
		{"user channel", "user.42", kindUser, 42, false},
		{"max int64 id", "user.9223372036854775807", kindUser, 9223372036854775807, false},

		{"empty", "", 0, 0, true},
		{"unknown pattern", "role.banquier", 0, 0, true},
		{"unknown root", "quotes.5", 0, 0, true},
		{"trailing garbage on id", "clinique.5abc", 0, 0, true},
		{"hex-looking id", "clinique.1x", 0, 0, true},
		{"negative id", "clinique.-1", 0, 0, true},
		{"plus-signed id", "user.+5", 0, 0, true},
		{"empty id segment", "clinique.", 0, 0, true},
		{"int64 overflow", "user.9223372036854775808", 0, 0, true},
		{"spaces in id", "user. 5", 0, 0, true},
		{"bare role prefix", "role.agent.", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseChannel(tt.channel)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseChannel(%q) expected error, got %+v", tt.channel, parsed)
				}
				if !errors.Is(err, ErrMalformedChannel) {
					t.Errorf("ParseChannel(%q) error = %v, want ErrMalformedChannel", tt.channel, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChannel(%q) unexpected error: %v", tt.channel, err)
			}
			if parsed.kind != tt.kind {
				t.Errorf("ParseChannel(%q) kind = %v, want %v", tt.channel, parsed.kind, tt.kind)
			}
			if parsed.id != tt.id {
				t.Errorf("ParseChannel(%q) id = %d, want %d", tt.channel, parsed.id, tt.id)
			}
		})
	}
}

func TestChannelBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  Channel
		want Channel
	}{
		{"agent", AgentChannel(12), "role.agent.12"},
		{"patient", PatientChannel(7), "role.patient.7"},
		{"clinique", CliniqueChannel(3), "clinique.3"},
		{"user", UserChannel(42), "user.42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
			// Every builder output must round-trip through the parser.
			if _, err := ParseChannel(string(tt.got)); err != nil {
				t.Errorf("ParseChannel(%q) failed: %v", tt.got, err)
			}
		})
	}
}
