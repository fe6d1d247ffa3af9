package services

import (
	"context"
	"errors"
	"testing"

	"memtrack/internal/adapters/persistence/models"
	"memtrack/internal/core/domain"
	"memtrack/internal/pkg/password"
)

func newTestOfficerService(t *testing.T) (*OfficerService, *fakeUserRepo, uint) {
	t.Helper()
	repo := newFakeUserRepo()

	hash, err := password.Hash("admin123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	admin := &models.User{
		Name:     "System Administrator",
		Email:    "admin@memtrack.local",
		Password: hash,
		Role:     string(domain.RoleAdmin),
		IsActive: true,
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}

	return NewOfficerService(repo), repo, admin.ID
}

func createOfficer(t *testing.T, svc *OfficerService, email, role string) *models.UserResponse {
	t.Helper()
	officer, err := svc.Create(context.Background(), &CreateOfficerInput{
		Name:     "Officer " + role,
		Email:    email,
		Password: "secret123",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("create officer failed: %v", err)
	}
	return officer
}

func TestCreateOfficerRejectsAdminRole(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)

	_, err := svc.Create(context.Background(), &CreateOfficerInput{
		Name:     "Second Admin",
		Email:    "admin2@example.com",
		Password: "secret123",
		Role:     "Admin",
	})
	if _, ok := domain.AsValidationError(err); !ok {
		t.Errorf("expected ValidationError for Admin role, got %v", err)
	}
}

func TestCreateOfficerEmailInUse(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)

	createOfficer(t, svc, "pres@example.com", "President")
	_, err := svc.Create(context.Background(), &CreateOfficerInput{
		Name:     "Another",
		Email:    "pres@example.com",
		Password: "secret123",
		Role:     "Auditor",
	})
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Errorf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAdminAccountIsProtected(t *testing.T) {
	svc, _, adminID := newTestOfficerService(t)
	ctx := context.Background()

	name := "Renamed"
	if _, err := svc.Update(ctx, adminID, &UpdateOfficerInput{Name: &name}); !errors.Is(err, domain.ErrAdminProtected) {
		t.Errorf("update: expected ErrAdminProtected, got %v", err)
	}

	if err := svc.ResetPassword(ctx, adminID, "newsecret"); !errors.Is(err, domain.ErrAdminProtected) {
		t.Errorf("reset password: expected ErrAdminProtected, got %v", err)
	}

	if err := svc.Delete(ctx, adminID); !errors.Is(err, domain.ErrAdminProtected) {
		t.Errorf("delete: expected ErrAdminProtected, got %v", err)
	}
}

func TestUpdateOfficer(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)
	ctx := context.Background()

	officer := createOfficer(t, svc, "sec@example.com", "Secretary")

	inactive := false
	role := "Auditor"
	updated, err := svc.Update(ctx, officer.ID, &UpdateOfficerInput{Role: &role, IsActive: &inactive})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != "Auditor" {
		t.Errorf("expected role Auditor, got %s", updated.Role)
	}
	if updated.IsActive {
		t.Error("expected account deactivated")
	}
}

func TestUpdateOfficerEmailCollision(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)
	ctx := context.Background()

	createOfficer(t, svc, "pres@example.com", "President")
	officer := createOfficer(t, svc, "sec@example.com", "Secretary")

	email := "pres@example.com"
	_, err := svc.Update(ctx, officer.ID, &UpdateOfficerInput{Email: &email})
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Errorf("expected ErrEmailInUse, got %v", err)
	}

	// Re-submitting the officer's own email is not a collision
	own := "sec@example.com"
	if _, err := svc.Update(ctx, officer.ID, &UpdateOfficerInput{Email: &own}); err != nil {
		t.Errorf("own email resubmission should succeed, got %v", err)
	}
}

func TestUpdateOfficerNotFound(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)

	name := "Ghost"
	_, err := svc.Update(context.Background(), 999, &UpdateOfficerInput{Name: &name})
	if !errors.Is(err, domain.ErrOfficerNotFound) {
		t.Errorf("expected ErrOfficerNotFound, got %v", err)
	}
}

func TestResetPasswordTooShort(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)

	officer := createOfficer(t, svc, "aud@example.com", "Auditor")
	err := svc.ResetPassword(context.Background(), officer.ID, "12345")
	if _, ok := domain.AsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestDeleteOfficer(t *testing.T) {
	svc, repo, _ := newTestOfficerService(t)
	ctx := context.Background()

	officer := createOfficer(t, svc, "aud@example.com", "Auditor")
	if err := svc.Delete(ctx, officer.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := repo.users[officer.ID]; ok {
		t.Error("expected officer removed from store")
	}
}

func TestListExcludesPasswordsAndOrdersNewestFirst(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)
	ctx := context.Background()

	createOfficer(t, svc, "pres@example.com", "President")
	createOfficer(t, svc, "sec@example.com", "Secretary")

	officers, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(officers) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(officers))
	}
	if officers[0].Email != "sec@example.com" {
		t.Errorf("expected newest first, got %s", officers[0].Email)
	}
}

func TestOfficerStats(t *testing.T) {
	svc, _, _ := newTestOfficerService(t)
	ctx := context.Background()

	createOfficer(t, svc, "pres@example.com", "President")
	officer := createOfficer(t, svc, "sec@example.com", "Secretary")

	inactive := false
	if _, err := svc.Update(ctx, officer.ID, &UpdateOfficerInput{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalOfficers != 3 {
		t.Errorf("expected 3 total, got %d", stats.TotalOfficers)
	}
	if stats.ActiveOfficers != 2 || stats.InactiveOfficers != 1 {
		t.Errorf("expected 2 active / 1 inactive, got %d/%d", stats.ActiveOfficers, stats.InactiveOfficers)
	}
	if stats.ByRole["Admin"] != 1 || stats.ByRole["President"] != 1 || stats.ByRole["Secretary"] != 1 {
		t.Errorf("unexpected role counts: %+v", stats.ByRole)
	}
}
