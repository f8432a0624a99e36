package service

import (
	"context"
	"time"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type AttendanceRepository interface {
	Record(ctx context.Context, scan domain.Scan) (domain.Scan, error)
	FindByEvent(ctx context.Context, eventID uint) ([]domain.AttendanceRecord, error)
}

type MemberFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
}

type AttendanceService struct {
	repo    AttendanceRepository
	events  EventFinder
	members MemberFinder
	now     func() time.Time
}

func NewAttendanceService(repo AttendanceRepository, events EventFinder, members MemberFinder) *AttendanceService {
	return &AttendanceService{
		repo:    repo,
		events:  events,
		members: members,
		now:     time.Now,
	}
}

// Record stores a scan of memberID at the event taken now. Scans are only
// accepted on the days of an active event, at most once a day.
func (s *AttendanceService) Record(ctx context.Context, eventID, memberID uint) (domain.Scan, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.Scan{}, classify("s.events.FindByID", err)
	}
	if !event.AcceptsAttendance() {
		return domain.Scan{}, domain.NewBusinessRuleError(domain.ErrAttendanceNotAllowed, "event %d is %s", eventID, event.Status)
	}

	if _, err := s.members.FindByID(ctx, memberID); err != nil {
		return domain.Scan{}, classify("s.members.FindByID", err)
	}

	now := s.now()
	day := scoring.DayNumber(now, event.StartDateTime)
	if days := scoring.DayCount(event.StartDateTime, event.EndDateTime); day < 1 || day > days {
		return domain.Scan{}, domain.NewBusinessRuleError(domain.ErrAttendanceNotAllowed, "%s is not one of the event days", now.Format("2006-01-02"))
	}

	scan, err := s.repo.Record(ctx, domain.Scan{MemberID: memberID, EventID: eventID, ScannedAt: now})
	if err != nil {
		return domain.Scan{}, classify("s.repo.Record", err)
	}

	return scan, nil
}

// Attendance lists who attended the event on the days selected by f.
func (s *AttendanceService) Attendance(ctx context.Context, eventID uint, f scoring.DayFilter) ([]domain.AttendanceRecord, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, classify("s.events.FindByID", err)
	}

	records, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, classify("s.repo.FindByEvent", err)
	}

	return scoring.FilterAttendance(event.StartDateTime, event.EndDateTime, records, f)
}
