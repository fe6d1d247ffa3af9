package repositories

import (
	"context"

	"memtrack/internal/adapters/persistence/models"
)

// MemberFilter holds the independently optional list filters.
// Absent filters impose no constraint; present filters combine with AND.
type MemberFilter struct {
	AcademicYear string
	HasPaid      *bool
	Status       string
	Search       string // case-insensitive substring on first/last name or student ID
}

// MemberStats is the membership summary for a (possibly unscoped) academic year
type MemberStats struct {
	TotalMembers    int64   `json:"totalMembers"`
	PaidMembers     int64   `json:"paidMembers"`
	UnpaidMembers   int64   `json:"unpaidMembers"`
	OfficialMembers int64   `json:"officialMembers"`
	PendingMembers  int64   `json:"pendingMembers"`
	TotalRevenue    float64 `json:"totalRevenue"`
}

// OfficerStats is the officer account summary
type OfficerStats struct {
	ByRole           map[string]int64 `json:"byRole"`
	ActiveOfficers   int64            `json:"activeOfficers"`
	InactiveOfficers int64            `json:"inactiveOfficers"`
	TotalOfficers    int64            `json:"totalOfficers"`
}

// UserRepository defines officer account persistence
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.User, error)
	Stats(ctx context.Context) (*OfficerStats, error)
}

// MemberRepository defines member record persistence
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *MemberFilter) ([]*models.Member, error)
	Stats(ctx context.Context, academicYear string) (*MemberStats, error)
}
