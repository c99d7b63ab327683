package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/medassist/medassist_backend/internal/repo"
	entrole "github.com/medassist/medassist_backend/internal/repo/role"
	entuser "github.com/medassist/medassist_backend/internal/repo/user"
	"github.com/medassist/medassist_backend/pkg/authorize"
	"github.com/medassist/medassist_backend/pkg/util/password"
	"github.com/medassist/medassist_backend/pkg/util/phone"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      *string
	Password   string
	Roles      []string
	ClinicName *string
	Address    *string
}

type UpdateRequest struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	ClinicName *string
	Address    *string
}

type ListRequest struct {
	Role    *string
	Active  *bool
	Search  *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.User, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*repo.User, error)
	GetByID(ctx context.Context, id int) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)
	List(ctx context.Context, req ListRequest) ([]*repo.User, error)
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	SoftDelete(ctx context.Context, id int) error
	ChangePassword(ctx context.Context, id int, current, next string) error

	// Role assignments. The roles table row and the Casbin grouping policy
	// are written together: the REST enforcer and the realtime channel
	// registry read the same assignment.
	Roles(ctx context.Context, id int) ([]string, error)
	AssignRole(ctx context.Context, id int, role string) error
	RevokeRole(ctx context.Context, id int, role string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db        *repo.Client
	authorize authorize.IAuthorization
	logger    *slog.Logger
}

func New(db *repo.Client, authz authorize.IAuthorization, logger *slog.Logger) Service {
	return &userService{db: db, authorize: authz, logger: logger}
}

func (s *userService) Create(ctx context.Context, req CreateRequest) (*repo.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	for _, r := range req.Roles {
		if _, ok := authorize.DBRoleToRBACRole[r]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, r)
		}
	}
	if hasRole(req.Roles, "clinique") && (req.ClinicName == nil || *req.ClinicName == "") {
		return nil, ErrClinicNameRequired
	}

	var phoneE164 *string
	if req.Phone != nil && *req.Phone != "" {
		p, err := phone.Normalize(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		phoneE164 = &p
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(email)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(email).
		SetNillablePhone(phoneE164).
		SetPasswordHash(hash).
		SetNillableClinicName(req.ClinicName).
		SetNillableAddress(req.Address).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignUserSelfRole(ctx, s.authorize, u.ID); err != nil {
		s.logger.Error("assign self role failed", "user_id", u.ID, "err", err)
	}
	for _, r := range req.Roles {
		if err := s.AssignRole(ctx, u.ID, r); err != nil {
			return nil, err
		}
	}

	return u, nil
}

func (s *userService) Update(ctx context.Context, id int, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u).
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillableClinicName(req.ClinicName).
		SetNillableAddress(req.Address)

	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			p, err := phone.Normalize(*req.Phone)
			if err != nil {
				return nil, ErrInvalidPhone
			}
			upd = upd.SetPhone(p)
		}
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// GetByID retrieves a user by ID, excluding soft-deleted users.
func (s *userService) GetByID(ctx context.Context, id int) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.ID(id),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.Email(strings.ToLower(strings.TrimSpace(email))),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, req ListRequest) ([]*repo.User, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.User.Query().
		Where(entuser.DeletedAtIsNil())

	if req.Role != nil {
		ids, err := s.db.Role.Query().
			Where(entrole.NameEQ(entrole.Name(*req.Role))).
			Select(entrole.FieldUserID).
			Ints(ctx)
		if err != nil {
			return nil, fmt.Errorf("list role members: %w", err)
		}
		q = q.Where(entuser.IDIn(ids...))
	}
	if req.Active != nil {
		q = q.Where(entuser.IsActive(*req.Active))
	}
	if req.Search != nil && *req.Search != "" {
		q = q.Where(entuser.Or(
			entuser.FirstNameContainsFold(*req.Search),
			entuser.LastNameContainsFold(*req.Search),
			entuser.EmailContainsFold(*req.Search),
			entuser.ClinicNameContainsFold(*req.Search),
		))
	}

	users, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Activate(ctx context.Context, id int) error {
	return s.setActive(ctx, id, true)
}

func (s *userService) Deactivate(ctx context.Context, id int) error {
	return s.setActive(ctx, id, false)
}

func (s *userService) setActive(ctx context.Context, id int, active bool) error {
	n, err := s.db.User.Update().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) SoftDelete(ctx context.Context, id int) error {
	n, err := s.db.User.Update().
		Where(entuser.ID(id), entuser.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		SetIsActive(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userService) ChangePassword(ctx context.Context, id int, current, next string) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := password.Verify(u.PasswordHash, current); err != nil {
		return ErrInvalidPassword
	}

	hash, err := password.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.db.User.UpdateOne(u).
		SetPasswordHash(hash).
		Exec(ctx)
}

func (s *userService) Roles(ctx context.Context, id int) ([]string, error) {
	rows, err := s.db.Role.Query().
		Where(entrole.UserID(id)).
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

func (s *userService) AssignRole(ctx context.Context, id int, role string) error {
	rbacRole, ok := authorize.DBRoleToRBACRole[role]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	exists, err := s.db.Role.Query().
		Where(entrole.UserID(id), entrole.NameEQ(entrole.Name(role))).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check role: %w", err)
	}
	if !exists {
		if _, err := s.db.Role.Create().
			SetUserID(id).
			SetName(entrole.Name(role)).
			Save(ctx); err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
	}

	if err := authorize.AssignSystemRole(ctx, s.authorize, id, rbacRole); err != nil {
		return fmt.Errorf("sync role grant: %w", err)
	}
	return nil
}

func (s *userService) RevokeRole(ctx context.Context, id int, role string) error {
	rbacRole, ok := authorize.DBRoleToRBACRole[role]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	count, err := s.db.Role.Query().
		Where(entrole.UserID(id)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if count <= 1 {
		return ErrLastRole
	}

	if _, err := s.db.Role.Delete().
		Where(entrole.UserID(id), entrole.NameEQ(entrole.Name(role))).
		Exec(ctx); err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}

	if err := authorize.RemoveSystemRole(ctx, s.authorize, id, rbacRole); err != nil {
		return fmt.Errorf("sync role revoke: %w", err)
	}
	return nil
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
