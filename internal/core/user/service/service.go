package userapp

import (
	"context"
	"fmt"

	userEntity "yoripe/internal/core/user"

	"yoripe/internal/apperrors"
	"yoripe/internal/core/policy"
	userPort "yoripe/internal/ports/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// PageSize is the fixed listing page size.
const PageSize = 10

// UserService orchestrates the users resource. Every operation, viewing
// included, is admin-gated through the policy; instance operations resolve
// the target first so a missing user surfaces as Not Found before the
// policy decision.
type UserService struct {
	UserRepository userPort.UserRepository
}

func NewUserService(repo userPort.UserRepository) *UserService {
	return &UserService{UserRepository: repo}
}

func (s *UserService) ListUsers(ctx context.Context, actor *userEntity.User, page int) (*userPort.Page, error) {
	if !policy.AllowUser(actor, policy.ActionList) {
		return nil, apperrors.ErrForbidden
	}

	if page < 1 {
		page = 1
	}

	users, total, err := s.UserRepository.List(ctx, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	items := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		items = append(items, toDTO(u))
	}

	return &userPort.Page{
		Items:   items,
		Page:    page,
		PerPage: PageSize,
		Total:   total,
	}, nil
}

// CreateUser hashes the password before storage and assigns the requested
// role. Email must be unique among non-deleted users; a soft-deleted user's
// email may be reused.
func (s *UserService) CreateUser(ctx context.Context, actor *userEntity.User, in userPort.CreateUserInput) (*userPort.UserDTO, error) {
	if !policy.AllowUser(actor, policy.ActionCreate) {
		return nil, apperrors.ErrForbidden
	}

	if _, err := s.UserRepository.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.UserRepository.ReplaceRoles(ctx, created, in.Role); err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}

	reloaded, err := s.UserRepository.FindByID(ctx, created.ID.String())
	if err != nil {
		return nil, err
	}

	return toDTO(reloaded), nil
}

func (s *UserService) GetUser(ctx context.Context, actor *userEntity.User, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.AllowUser(actor, policy.ActionView) {
		return nil, apperrors.ErrForbidden
	}

	return toDTO(u), nil
}

// UpdateUser applies only the supplied fields. A supplied password is
// re-hashed; a supplied role replaces the prior assignment rather than
// adding to it.
func (s *UserService) UpdateUser(ctx context.Context, actor *userEntity.User, id string, in userPort.UpdateUserInput) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.AllowUser(actor, policy.ActionUpdate) {
		return nil, apperrors.ErrForbidden
	}

	// Supplied fields follow the create rules; omitted fields stay as stored.
	var violations []apperrors.FieldViolation
	if in.Name != nil && *in.Name == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "name", Message: "The name field is required."})
	}
	if in.Email != nil && validate.Var(*in.Email, "required,email") != nil {
		violations = append(violations, apperrors.FieldViolation{Field: "email", Message: "The email field must be a valid email address."})
	}
	if in.Password != nil && *in.Password == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "password", Message: "The password field is required."})
	}
	if in.Role != nil && validate.Var(*in.Role, "oneof=admin manager user") != nil {
		violations = append(violations, apperrors.FieldViolation{Field: "role", Message: "The selected role is invalid."})
	}
	if len(violations) > 0 {
		return nil, &apperrors.ValidationError{Violations: violations}
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil && *in.Email != u.Email {
		if other, err := s.UserRepository.FindByEmail(ctx, *in.Email); err == nil && other.ID != u.ID {
			return nil, apperrors.ErrEmailTaken
		}
		u.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.Password = string(hashed)
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if in.Role != nil {
		if err := s.UserRepository.ReplaceRoles(ctx, u, *in.Role); err != nil {
			return nil, fmt.Errorf("failed to reassign role: %w", err)
		}
	}

	reloaded, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toDTO(reloaded), nil
}

// DeleteUser marks the soft-delete tombstone and returns the pre-deletion
// values; the row itself persists outside the default scope.
func (s *UserService) DeleteUser(ctx context.Context, actor *userEntity.User, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.AllowUser(actor, policy.ActionDelete) {
		return nil, apperrors.ErrForbidden
	}

	removed := toDTO(u)

	if err := s.UserRepository.SoftDelete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return removed, nil
}

func toDTO(u *userEntity.User) *userPort.UserDTO {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Name)
	}

	return &userPort.UserDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
