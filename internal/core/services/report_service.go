package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"memtrack/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReportService logs a daily membership summary (08:30) so officers get a
// snapshot in the server logs without opening the dashboard.
type ReportService struct {
	memberRepo repositories.MemberRepository
	cron       *cron.Cron
}

// NewReportService creates a new report service
func NewReportService(memberRepo repositories.MemberRepository) *ReportService {
	return &ReportService{
		memberRepo: memberRepo,
		cron:       cron.New(),
	}
}

// Start schedules the daily summary job
func (s *ReportService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.logDailySummary); err != nil {
		log.Printf("❌ Failed to schedule daily report: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 ReportService started (daily summary at 08:30)")
}

// Stop stops the scheduler
func (s *ReportService) Stop() {
	s.cron.Stop()
	log.Println("🛑 ReportService stopped")
}

func (s *ReportService) logDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	year := CurrentAcademicYear(time.Now())
	stats, err := s.memberRepo.Stats(ctx, year)
	if err != nil {
		log.Printf("❌ Daily report query error: %v", err)
		return
	}

	log.Printf("📊 Membership summary %s: total=%d paid=%d unpaid=%d official=%d pending=%d revenue=%.2f",
		year,
		stats.TotalMembers,
		stats.PaidMembers,
		stats.UnpaidMembers,
		stats.OfficialMembers,
		stats.PendingMembers,
		stats.TotalRevenue,
	)
}

// CurrentAcademicYear derives the "YYYY-YYYY" academic year label for a
// point in time. The academic year rolls over in August.
func CurrentAcademicYear(now time.Time) string {
	year := now.Year()
	if now.Month() < time.August {
		year--
	}
	return fmt.Sprintf("%d-%d", year, year+1)
}
