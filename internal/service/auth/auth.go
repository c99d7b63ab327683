package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/medassist/medassist_backend/config"
	"github.com/medassist/medassist_backend/internal/repo"
	entrole "github.com/medassist/medassist_backend/internal/repo/role"
	entuser "github.com/medassist/medassist_backend/internal/repo/user"
	pasetotoken "github.com/medassist/medassist_backend/pkg/paseto"
	"github.com/medassist/medassist_backend/pkg/util/password"
)

const (
	accountLockMins  = 15
	maxLoginAttempts = 5
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyLoginFail returns the Redis key for the failed-login counter.
func redisKeyLoginFail(userID int) string { return "login:fail:" + strconv.Itoa(userID) }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	u, err := s.db.User.Query().
		Where(entuser.EmailEqualFold(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// A deactivated account cannot log in, whatever the password says.
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	// Check lockout
	fails, _ := s.rdb.Get(ctx, redisKeyLoginFail(u.ID)).Int()
	if fails >= maxLoginAttempts {
		return nil, ErrAccountLocked
	}

	// Verify password
	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	// Reset failure counter
	s.rdb.Del(ctx, redisKeyLoginFail(u.ID))
	s.db.User.UpdateOne(u).
		SetLastLoginAt(time.Now()).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// The account may have been disabled since the session was created.
	u, err := s.db.User.Query().
		Where(entuser.ID(int(claims.UserID)), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout).
	// Roles are re-read so a role change takes effect on the next refresh.
	roles, err := s.roleNames(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, roles, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, strconv.Itoa(u.ID), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	roles, err := s.roleNames(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(int64(u.ID), roles, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(int64(u.ID), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) roleNames(ctx context.Context, userID int) ([]string, error) {
	rows, err := s.db.Role.Query().
		Where(entrole.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, string(r.Name))
	}
	return out, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	key := redisKeyLoginFail(u.ID)
	fails, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if fails == 1 || fails >= maxLoginAttempts {
		s.rdb.Expire(ctx, key, accountLockMins*time.Minute)
	}
}
