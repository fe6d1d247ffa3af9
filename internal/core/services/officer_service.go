package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"memtrack/internal/adapters/persistence/models"
	"memtrack/internal/adapters/persistence/repositories"
	"memtrack/internal/core/domain"
	"memtrack/internal/pkg/password"

	"gorm.io/gorm"
)

// OfficerService handles officer account administration. Every operation
// here is Admin-gated at the route level; the Admin-protection rule (seeded
// Admin accounts are untouchable) is enforced again here.
type OfficerService struct {
	userRepo repositories.UserRepository
}

// NewOfficerService creates a new officer service
func NewOfficerService(userRepo repositories.UserRepository) *OfficerService {
	return &OfficerService{userRepo: userRepo}
}

// CreateOfficerInput represents officer creation input
type CreateOfficerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateOfficerInput represents a partial officer update
type UpdateOfficerInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// List returns all officer accounts, newest first, passwords excluded
func (s *OfficerService) List(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

// Stats returns officer counts by role plus active/inactive/total
func (s *OfficerService) Stats(ctx context.Context) (*repositories.OfficerStats, error) {
	return s.userRepo.Stats(ctx)
}

// Create creates a new officer account. Admin is not a creatable role.
func (s *OfficerService) Create(ctx context.Context, input *CreateOfficerInput) (*models.UserResponse, error) {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(input.Name) == "" {
		ve.Add("name", "Name is required")
	}
	if !domain.IsValidEmail(input.Email) {
		ve.Add("email", "Please enter a valid email")
	}
	if !password.ValidatePassword(input.Password) {
		ve.Add("password", "Password must be at least 6 characters")
	}
	if !domain.IsSelfRegistrable(domain.Role(input.Role)) {
		ve.Add("role", "Invalid role")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailInUse
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hashedPassword,
		Role:     input.Role,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailInUse
		}
		return nil, err
	}

	log.Printf("✅ Officer account created: %s (%s)", user.Email, user.Role)

	return user.ToResponse(), nil
}

// Update updates an officer account. Admin accounts cannot be edited
// through this path, regardless of who the caller is.
func (s *OfficerService) Update(ctx context.Context, id uint, input *UpdateOfficerInput) (*models.UserResponse, error) {
	user, err := s.getOfficer(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.IsAdmin() {
		return nil, domain.ErrAdminProtected
	}

	ve := &domain.ValidationError{}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		ve.Add("name", "Name cannot be empty")
	}
	if input.Email != nil && !domain.IsValidEmail(*input.Email) {
		ve.Add("email", "Please enter a valid email")
	}
	if input.Role != nil && !domain.IsSelfRegistrable(domain.Role(*input.Role)) {
		ve.Add("role", "Invalid role")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrEmailInUse
			}
			user.Email = email
		}
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailInUse
		}
		return nil, err
	}

	return user.ToResponse(), nil
}

// ResetPassword resets an officer's password. Admin accounts are protected.
func (s *OfficerService) ResetPassword(ctx context.Context, id uint, newPassword string) error {
	user, err := s.getOfficer(ctx, id)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		return domain.ErrAdminProtected
	}

	if !password.ValidatePassword(newPassword) {
		ve := &domain.ValidationError{}
		ve.Add("password", "Password must be at least 6 characters")
		return ve
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// Delete permanently deletes an officer account. Admin accounts are protected.
func (s *OfficerService) Delete(ctx context.Context, id uint) error {
	user, err := s.getOfficer(ctx, id)
	if err != nil {
		return err
	}

	if user.IsAdmin() {
		return domain.ErrAdminProtected
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Officer account deleted: %s", user.Email)
	return nil
}

func (s *OfficerService) getOfficer(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOfficerNotFound
		}
		return nil, err
	}
	return user, nil
}
