package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"memtrack/internal/adapters/persistence/models"
	"memtrack/internal/adapters/persistence/repositories"
	"memtrack/internal/core/domain"

	"gorm.io/gorm"
)

// MemberService handles member registry business logic
type MemberService struct {
	memberRepo repositories.MemberRepository
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberInput represents member creation input
type CreateMemberInput struct {
	StudentID    string `json:"studentId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Course       string `json:"course"`
	YearLevel    string `json:"yearLevel"`
	AcademicYear string `json:"academicYear"`
}

// UpdateMemberInput represents a partial member update. StudentID is
// immutable after creation and deliberately absent here.
type UpdateMemberInput struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	PhoneNumber  *string `json:"phoneNumber"`
	Course       *string `json:"course"`
	YearLevel    *string `json:"yearLevel"`
	AcademicYear *string `json:"academicYear"`
	Remarks      *string `json:"remarks"`
}

// UpdatePaymentInput represents the payment transition input
type UpdatePaymentInput struct {
	HasPaid     bool       `json:"hasPaid"`
	AmountPaid  *float64   `json:"amountPaid"`
	PaymentDate *time.Time `json:"paymentDate"`
}

// List returns members matching the filter, newest registration first
func (s *MemberService) List(ctx context.Context, filter *repositories.MemberFilter) ([]*models.Member, error) {
	return s.memberRepo.List(ctx, filter)
}

// GetByID returns a single member
func (s *MemberService) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Stats returns the membership summary, optionally scoped to an academic year
func (s *MemberService) Stats(ctx context.Context, academicYear string) (*repositories.MemberStats, error) {
	return s.memberRepo.Stats(ctx, academicYear)
}

// Create validates and registers a new member. Every violated field is
// reported, not just the first. New members start Pending and unpaid.
func (s *MemberService) Create(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(input.StudentID) == "" {
		ve.Add("studentId", "Student ID is required")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		ve.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		ve.Add("lastName", "Last name is required")
	}
	if !domain.IsValidEmail(input.Email) {
		ve.Add("email", "Please enter a valid email")
	}
	if strings.TrimSpace(input.Course) == "" {
		ve.Add("course", "Course is required")
	}
	if !domain.IsValidYearLevel(input.YearLevel) {
		ve.Add("yearLevel", "Invalid year level")
	}
	if strings.TrimSpace(input.AcademicYear) == "" {
		ve.Add("academicYear", "Academic year is required")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	studentID := strings.TrimSpace(input.StudentID)

	exists, err := s.memberRepo.ExistsByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateStudentID
	}

	member := &models.Member{
		StudentID:        studentID,
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		Email:            strings.ToLower(strings.TrimSpace(input.Email)),
		PhoneNumber:      strings.TrimSpace(input.PhoneNumber),
		Course:           strings.TrimSpace(input.Course),
		YearLevel:        input.YearLevel,
		AcademicYear:     strings.TrimSpace(input.AcademicYear),
		HasPaid:          false,
		AmountPaid:       0,
		Status:           domain.StatusPending,
		RegistrationDate: time.Now(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		// Loser of a concurrent create race with the same student ID
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateStudentID
		}
		return nil, err
	}

	return member, nil
}

// Update applies a partial update; unsupplied fields retain prior values
func (s *MemberService) Update(ctx context.Context, id uint, input *UpdateMemberInput) (*models.Member, error) {
	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &domain.ValidationError{}
	if input.FirstName != nil && strings.TrimSpace(*input.FirstName) == "" {
		ve.Add("firstName", "First name cannot be empty")
	}
	if input.LastName != nil && strings.TrimSpace(*input.LastName) == "" {
		ve.Add("lastName", "Last name cannot be empty")
	}
	if input.Email != nil && !domain.IsValidEmail(*input.Email) {
		ve.Add("email", "Please enter a valid email")
	}
	if input.Course != nil && strings.TrimSpace(*input.Course) == "" {
		ve.Add("course", "Course cannot be empty")
	}
	if input.YearLevel != nil && !domain.IsValidYearLevel(*input.YearLevel) {
		ve.Add("yearLevel", "Invalid year level")
	}
	if input.AcademicYear != nil && strings.TrimSpace(*input.AcademicYear) == "" {
		ve.Add("academicYear", "Academic year cannot be empty")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	if input.FirstName != nil {
		member.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		member.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		member.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.PhoneNumber != nil {
		member.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
	}
	if input.Course != nil {
		member.Course = strings.TrimSpace(*input.Course)
	}
	if input.YearLevel != nil {
		member.YearLevel = *input.YearLevel
	}
	if input.AcademicYear != nil {
		member.AcademicYear = strings.TrimSpace(*input.AcademicYear)
	}
	if input.Remarks != nil {
		member.Remarks = *input.Remarks
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// UpdatePayment applies the Unpaid <-> Paid transition. This is the only
// operation that derives status from payment:
//   - to Paid: amountPaid defaults to 0, paymentDate to now, status is
//     forced to "Official Member"
//   - to Unpaid: amountPaid and paymentDate are reset, status is forced
//     to "Pending"
func (s *MemberService) UpdatePayment(ctx context.Context, id uint, input *UpdatePaymentInput) (*models.Member, error) {
	if input.AmountPaid != nil && *input.AmountPaid < 0 {
		ve := &domain.ValidationError{}
		ve.Add("amountPaid", "Amount paid cannot be negative")
		return nil, ve
	}

	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.HasPaid = input.HasPaid
	if input.HasPaid {
		if input.AmountPaid != nil {
			member.AmountPaid = *input.AmountPaid
		} else {
			member.AmountPaid = 0
		}
		if input.PaymentDate != nil {
			member.PaymentDate = input.PaymentDate
		} else {
			now := time.Now()
			member.PaymentDate = &now
		}
		member.Status = domain.StatusOfficial
	} else {
		member.AmountPaid = 0
		member.PaymentDate = nil
		member.Status = domain.StatusPending
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// UpdateStatus sets the member status independently of payment. It never
// touches hasPaid, amountPaid or paymentDate; the reverse coupling only
// exists in UpdatePayment.
func (s *MemberService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Member, error) {
	if !domain.IsValidStatus(status) {
		ve := &domain.ValidationError{}
		ve.Add("status", "Invalid status")
		return nil, ve
	}

	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Status = status

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// Delete permanently removes a member
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}
