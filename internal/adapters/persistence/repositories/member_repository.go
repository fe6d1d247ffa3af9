package repositories

import (
	"context"

	"memtrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member. The unique index on student_id surfaces
// concurrent-create races as gorm.ErrDuplicatedKey.
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ExistsByStudentID checks if a student ID is already registered
func (r *memberRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("student_id = ?", studentID).Count(&count).Error
	return count > 0, err
}

// Update updates a member
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete permanently deletes a member
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{}, id).Error
}

// List returns members matching the filter, ordered by registration date
// descending. Absent filters impose no constraint.
func (r *memberRepository) List(ctx context.Context, filter *MemberFilter) ([]*models.Member, error) {
	query := r.db.WithContext(ctx).Model(&models.Member{})

	if filter != nil {
		if filter.AcademicYear != "" {
			query = query.Where("academic_year = ?", filter.AcademicYear)
		}
		if filter.HasPaid != nil {
			query = query.Where("has_paid = ?", *filter.HasPaid)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where(
				"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(student_id) LIKE LOWER(?)",
				pattern, pattern, pattern,
			)
		}
	}

	var members []*models.Member
	err := query.Order("registration_date DESC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Stats returns the membership summary, optionally scoped to an academic year
func (r *memberRepository) Stats(ctx context.Context, academicYear string) (*MemberStats, error) {
	stats := &MemberStats{}

	scoped := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&models.Member{})
		if academicYear != "" {
			q = q.Where("academic_year = ?", academicYear)
		}
		return q
	}

	if err := scoped().Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("has_paid = ?", true).Count(&stats.PaidMembers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("has_paid = ?", false).Count(&stats.UnpaidMembers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", "Official Member").Count(&stats.OfficialMembers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Where("status = ?", "Pending").Count(&stats.PendingMembers).Error; err != nil {
		return nil, err
	}
	if err := scoped().Select("COALESCE(SUM(amount_paid), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
