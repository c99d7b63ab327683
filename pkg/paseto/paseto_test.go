package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "medassist",
		Audience:   "medassist-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 30 * 24 * time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(t)
	sid := uuid.New()

	tok, err := m.IssueAccess(42, []string{"administrateur", "agent"}, &sid)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "administrateur" || claims.Roles[1] != "agent" {
		t.Errorf("Roles = %v, want [administrateur agent]", claims.Roles)
	}
	if claims.SessionID == nil || *claims.SessionID != sid {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sid)
	}
}

func TestRefreshTokenCarriesNoRoles(t *testing.T) {
	m := newTestManager(t)
	sid := uuid.New()

	tok, err := m.IssueRefresh(7, &sid)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if len(claims.Roles) != 0 {
		t.Errorf("Roles = %v, want none on a refresh token", claims.Roles)
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	m := newTestManager(t)
	other := newTestManager(t)

	tok, err := m.IssueAccess(1, nil, nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := other.Verify(tok); err == nil {
		t.Error("Verify accepted a token encrypted with a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Verify("v4.local.not-a-token"); err == nil {
		t.Error("Verify accepted a malformed token")
	}
}
