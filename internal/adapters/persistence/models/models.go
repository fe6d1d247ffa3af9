package models

import (
	"time"

	"memtrack/internal/core/domain"

	"gorm.io/gorm"
)

// User represents the users table (officer/admin accounts)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account holds the protected Admin role
func (u *User) IsAdmin() bool {
	return domain.Role(u.Role) == domain.RoleAdmin
}

// UserResponse DTO (password never leaves the persistence layer)
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Member represents the members table
type Member struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	StudentID        string     `gorm:"column:student_id;uniqueIndex;size:30;not null" json:"studentId"`
	FirstName        string     `gorm:"size:100;not null" json:"firstName"`
	LastName         string     `gorm:"size:100;not null" json:"lastName"`
	Email            string     `gorm:"size:100;not null" json:"email"`
	PhoneNumber      string     `gorm:"size:30" json:"phoneNumber"`
	Course           string     `gorm:"size:100;not null" json:"course"`
	YearLevel        string     `gorm:"size:20;not null" json:"yearLevel"`
	AcademicYear     string     `gorm:"size:20;not null;index:idx_members_year_paid" json:"academicYear"`
	HasPaid          bool       `gorm:"default:false;index:idx_members_year_paid" json:"hasPaid"`
	AmountPaid       float64    `gorm:"type:decimal(10,2);default:0" json:"amountPaid"`
	PaymentDate      *time.Time `json:"paymentDate"`
	Status           string     `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Remarks          string     `gorm:"type:text" json:"remarks"`
	RegistrationDate time.Time  `gorm:"not null" json:"registrationDate"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Member{},
	)
}
