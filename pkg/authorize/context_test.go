package authorize

import (
	"context"
	"testing"
)

// mockClaimsProvider implements ClaimsProvider for testing
type mockClaimsProvider struct {
	userID int64
}

func (m *mockClaimsProvider) GetUserID() int64 {
	return m.userID
}

func TestSubjectFromContext(t *testing.T) {
	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{userID: 42}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: GroupSubject("42"),
			wantErr:     false,
		},
		{
			name: "no claims provider in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "zero id in claims provider",
			setupCtx: func() context.Context {
				cp := &mockClaimsProvider{userID: 0}
				return WithClaimsProvider(context.Background(), cp)
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	// Test panic case
	t.Run("panics when no claims", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	// Test success case
	t.Run("returns subject when claims exist", func(t *testing.T) {
		cp := &mockClaimsProvider{userID: 7}
		ctx := WithClaimsProvider(context.Background(), cp)

		subject := MustSubjectFromContext(ctx)
		if subject != GroupSubject("7") {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, "7")
		}
	})
}

func TestDomainFromResource(t *testing.T) {
	userID := 456

	tests := []struct {
		name       string
		userID     *int
		wantDomain Domain
	}{
		{
			name:       "user domain when userID provided",
			userID:     &userID,
			wantDomain: Domain("user:456"),
		},
		{
			name:       "sys domain when not provided",
			userID:     nil,
			wantDomain: DomainSys,
		},
		{
			name:       "sys domain when zero id provided",
			userID:     intPtr(0),
			wantDomain: DomainSys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DomainFromResource(tt.userID)
			if result != tt.wantDomain {
				t.Errorf("DomainFromResource() = %q, want %q", result, tt.wantDomain)
			}
		})
	}
}

func TestUserSelfDomain(t *testing.T) {
	expected := Domain("user:42")

	result := UserSelfDomain(42)
	if result != expected {
		t.Errorf("UserSelfDomain(42) = %q, want %q", result, expected)
	}
}

func intPtr(i int) *int {
	return &i
}
