package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"memtrack/internal/adapters/persistence/models"
	"memtrack/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes mirroring the store contracts: unique-key
// violations surface as gorm.ErrDuplicatedKey, missing rows as
// gorm.ErrRecordNotFound.

type fakeUserRepo struct {
	nextID uint
	clock  time.Time
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		nextID: 1,
		clock:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		users:  make(map[uint]*models.User),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	user.CreatedAt = r.clock
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, u := range r.users {
		if u.ID != user.ID && u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeUserRepo) Stats(_ context.Context) (*repositories.OfficerStats, error) {
	stats := &repositories.OfficerStats{ByRole: make(map[string]int64)}
	for _, u := range r.users {
		stats.ByRole[u.Role]++
		stats.TotalOfficers++
		if u.IsActive {
			stats.ActiveOfficers++
		} else {
			stats.InactiveOfficers++
		}
	}
	return stats, nil
}

type fakeMemberRepo struct {
	nextID  uint
	members map[uint]*models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{
		nextID:  1,
		members: make(map[uint]*models.Member),
	}
}

func (r *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	for _, m := range r.members {
		if m.StudentID == member.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	member.ID = r.nextID
	r.nextID++
	cp := *member
	r.members[member.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) GetByID(_ context.Context, id uint) (*models.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMemberRepo) ExistsByStudentID(_ context.Context, studentID string) (bool, error) {
	for _, m := range r.members {
		if m.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMemberRepo) Update(_ context.Context, member *models.Member) error {
	if _, ok := r.members[member.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *member
	r.members[member.ID] = &cp
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id uint) error {
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) List(_ context.Context, filter *repositories.MemberFilter) ([]*models.Member, error) {
	out := make([]*models.Member, 0, len(r.members))
	for _, m := range r.members {
		if filter != nil {
			if filter.AcademicYear != "" && m.AcademicYear != filter.AcademicYear {
				continue
			}
			if filter.HasPaid != nil && m.HasPaid != *filter.HasPaid {
				continue
			}
			if filter.Status != "" && m.Status != filter.Status {
				continue
			}
			if filter.Search != "" {
				needle := strings.ToLower(filter.Search)
				if !strings.Contains(strings.ToLower(m.FirstName), needle) &&
					!strings.Contains(strings.ToLower(m.LastName), needle) &&
					!strings.Contains(strings.ToLower(m.StudentID), needle) {
					continue
				}
			}
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RegistrationDate.After(out[j].RegistrationDate)
	})
	return out, nil
}

func (r *fakeMemberRepo) Stats(_ context.Context, academicYear string) (*repositories.MemberStats, error) {
	stats := &repositories.MemberStats{}
	for _, m := range r.members {
		if academicYear != "" && m.AcademicYear != academicYear {
			continue
		}
		stats.TotalMembers++
		if m.HasPaid {
			stats.PaidMembers++
		} else {
			stats.UnpaidMembers++
		}
		switch m.Status {
		case "Official Member":
			stats.OfficialMembers++
		case "Pending":
			stats.PendingMembers++
		}
		stats.TotalRevenue += m.AmountPaid
	}
	return stats, nil
}
