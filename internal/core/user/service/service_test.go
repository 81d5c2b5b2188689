package userapp

import (
	"context"
	"errors"
	"testing"

	"yoripe/internal/adapters/memory"
	"yoripe/internal/apperrors"
	userEntity "yoripe/internal/core/user"
	userPort "yoripe/internal/ports/user"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

func actorWith(roles ...string) *userEntity.User {
	u := &userEntity.User{ID: uuid.Must(uuid.NewV4())}
	for _, r := range roles {
		u.Roles = append(u.Roles, userEntity.Role{Name: r})
	}
	return u
}

func strPtr(s string) *string { return &s }

func createInput(email string) userPort.CreateUserInput {
	return userPort.CreateUserInput{Name: "A", Email: email, Password: "pw", Role: userEntity.RoleUser}
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	svc := NewUserService(memory.NewUserRepositoryMemory())

	for _, actor := range []*userEntity.User{actorWith(userEntity.RoleUser), actorWith(userEntity.RoleManager)} {
		_, err := svc.CreateUser(context.Background(), actor, createInput("a@x.com"))
		if !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("expected ErrForbidden for roles %v, got %v", actor.Roles, err)
		}
	}
}

func TestCreateUserHashesPasswordAndAssignsRole(t *testing.T) {
	repo := memory.NewUserRepositoryMemory()
	svc := NewUserService(repo)
	admin := actorWith(userEntity.RoleAdmin)

	dto, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if dto.Name != "A" {
		t.Fatalf("expected name A, got %q", dto.Name)
	}
	if len(dto.Roles) != 1 || dto.Roles[0] != userEntity.RoleUser {
		t.Fatalf("expected roles [user], got %v", dto.Roles)
	}

	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.Password == "pw" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestCreateUserRejectsTakenEmail(t *testing.T) {
	svc := NewUserService(memory.NewUserRepositoryMemory())
	admin := actorWith(userEntity.RoleAdmin)

	if _, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com")); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com")); !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestNonAdminDeniedEveryOperation(t *testing.T) {
	repo := memory.NewUserRepositoryMemory()
	svc := NewUserService(repo)
	admin := actorWith(userEntity.RoleAdmin)

	target, err := svc.CreateUser(context.Background(), admin, createInput("t@x.com"))
	if err != nil {
		t.Fatalf("seed create returned error: %v", err)
	}

	for _, actor := range []*userEntity.User{actorWith(userEntity.RoleUser), actorWith(userEntity.RoleManager)} {
		if _, err := svc.ListUsers(context.Background(), actor, 1); !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("list: expected ErrForbidden for %v, got %v", actor.Roles, err)
		}
		if _, err := svc.GetUser(context.Background(), actor, target.ID); !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("get: expected ErrForbidden for %v, got %v", actor.Roles, err)
		}
		if _, err := svc.UpdateUser(context.Background(), actor, target.ID, userPort.UpdateUserInput{Name: strPtr("B")}); !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("update: expected ErrForbidden for %v, got %v", actor.Roles, err)
		}
		if _, err := svc.DeleteUser(context.Background(), actor, target.ID); !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("delete: expected ErrForbidden for %v, got %v", actor.Roles, err)
		}
	}
}

func TestUpdateUserIsPartial(t *testing.T) {
	repo := memory.NewUserRepositoryMemory()
	svc := NewUserService(repo)
	admin := actorWith(userEntity.RoleAdmin)

	created, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), admin, created.ID, userPort.UpdateUserInput{Name: strPtr("B")})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != "B" {
		t.Fatalf("expected name B, got %q", updated.Name)
	}
	if updated.Email != "a@x.com" {
		t.Fatalf("omitted email changed: %q", updated.Email)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != userEntity.RoleUser {
		t.Fatalf("omitted role changed: %v", updated.Roles)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := memory.NewUserRepositoryMemory()
	svc := NewUserService(repo)
	admin := actorWith(userEntity.RoleAdmin)

	created, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), admin, created.ID, userPort.UpdateUserInput{Password: strPtr("next")}); err != nil {
		t.Fatalf("update returned error: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.Password == "next" {
		t.Fatal("new password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("next")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestUpdateUserReplacesRole(t *testing.T) {
	repo := memory.NewUserRepositoryMemory()
	svc := NewUserService(repo)
	admin := actorWith(userEntity.RoleAdmin)

	created, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	updated, err := svc.UpdateUser(context.Background(), admin, created.ID, userPort.UpdateUserInput{Role: strPtr(userEntity.RoleManager)})
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if len(updated.Roles) != 1 || updated.Roles[0] != userEntity.RoleManager {
		t.Fatalf("expected roles replaced by [manager], got %v", updated.Roles)
	}
}

func TestUpdateUserValidatesSuppliedFields(t *testing.T) {
	svc := NewUserService(memory.NewUserRepositoryMemory())
	admin := actorWith(userEntity.RoleAdmin)

	created, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	_, err = svc.UpdateUser(context.Background(), admin, created.ID, userPort.UpdateUserInput{
		Email: strPtr("not-an-email"),
		Role:  strPtr("sultan"),
	})
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", verr.Violations)
	}
	if verr.Violations[0].Field != "email" || verr.Violations[1].Field != "role" {
		t.Fatalf("unexpected violation fields: %+v", verr.Violations)
	}
}

func TestDeleteUserIsSoft(t *testing.T) {
	repo := memory.NewUserRepositoryMemory()
	svc := NewUserService(repo)
	admin := actorWith(userEntity.RoleAdmin)

	created, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	removed, err := svc.DeleteUser(context.Background(), admin, created.ID)
	if err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if removed.Email != "a@x.com" {
		t.Fatalf("deleted payload lost field values: %+v", removed)
	}

	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("soft-deleted user still in default scope: %v", err)
	}

	tombstoned, err := repo.FindByIDUnscoped(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("soft-deleted row physically removed: %v", err)
	}
	if !tombstoned.DeletedAt.Valid {
		t.Fatal("tombstone not set")
	}
}

func TestSoftDeletedEmailIsReusable(t *testing.T) {
	svc := NewUserService(memory.NewUserRepositoryMemory())
	admin := actorWith(userEntity.RoleAdmin)

	created, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com"))
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := svc.DeleteUser(context.Background(), admin, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}

	if _, err := svc.CreateUser(context.Background(), admin, createInput("a@x.com")); err != nil {
		t.Fatalf("email of soft-deleted user not reusable: %v", err)
	}
}
