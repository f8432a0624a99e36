package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type CertificatePublisher interface {
	Publish(ctx context.Context, req domain.CertificateRequest) (string, error)
}

type CertificateJobRepository interface {
	Create(ctx context.Context, job domain.CertificateJob, payload domain.CertificateRequest) (domain.CertificateJob, error)
	FindByEvent(ctx context.Context, eventID uint) ([]domain.CertificateJob, error)
}

type AttendanceFinder interface {
	FindByEvent(ctx context.Context, eventID uint) ([]domain.AttendanceRecord, error)
}

type CertificateService struct {
	publisher  CertificatePublisher
	jobs       CertificateJobRepository
	attendance AttendanceFinder
	events     EventFinder
}

func NewCertificateService(publisher CertificatePublisher, jobs CertificateJobRepository, attendance AttendanceFinder, events EventFinder) *CertificateService {
	return &CertificateService{
		publisher:  publisher,
		jobs:       jobs,
		attendance: attendance,
		events:     events,
	}
}

// SendForEvent dispatches certificates of a closed event.
func (s *CertificateService) SendForEvent(ctx context.Context, eventID uint) (domain.CertificateJob, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return domain.CertificateJob{}, classify("s.events.FindByID", err)
	}
	if event.Status != domain.EventClosed {
		return domain.CertificateJob{}, domain.NewBusinessRuleError(domain.ErrEventNotClosed, "event %d is %s", eventID, event.Status)
	}

	return s.Send(ctx, event)
}

// Jobs lists every dispatch attempt recorded for an event, newest first.
func (s *CertificateService) Jobs(ctx context.Context, eventID uint) ([]domain.CertificateJob, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, classify("s.events.FindByID", err)
	}

	jobs, err := s.jobs.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, classify("s.jobs.FindByEvent", err)
	}

	return jobs, nil
}

// Send publishes one certificate request for every member who attended all
// days of event. Each attempt is recorded, including failed ones; the
// returned job carries the id even when publishing failed.
func (s *CertificateService) Send(ctx context.Context, event domain.Event) (domain.CertificateJob, error) {
	req, err := s.request(ctx, event)
	if err != nil {
		return domain.CertificateJob{}, err
	}

	job := domain.CertificateJob{
		EventID:     event.ID,
		Status:      domain.CertificateJobPublished,
		MemberCount: len(req.Members),
		CreatedAt:   time.Now(),
	}

	id, pubErr := s.publisher.Publish(ctx, req)
	job.ID = id
	if pubErr != nil {
		pubErr = classify("s.publisher.Publish", pubErr)
		job.Status = domain.CertificateJobFailed
		job.Error = pubErr.Error()
	}

	if job.ID != "" {
		if _, err := s.jobs.Create(ctx, job, req); err != nil {
			zap.L().Error("could not record certificate job",
				zap.String("job_id", job.ID),
				zap.Uint("event_id", event.ID),
				zap.Error(err))
		}
	}

	if pubErr != nil {
		return job, pubErr
	}

	zap.L().Info("certificates dispatched",
		zap.String("job_id", job.ID),
		zap.Uint("event_id", event.ID),
		zap.Int("members", job.MemberCount))

	return job, nil
}

func (s *CertificateService) request(ctx context.Context, event domain.Event) (domain.CertificateRequest, error) {
	records, err := s.attendance.FindByEvent(ctx, event.ID)
	if err != nil {
		return domain.CertificateRequest{}, classify("s.attendance.FindByEvent", err)
	}

	eligible, err := scoring.FilterAttendance(event.StartDateTime, event.EndDateTime, records, scoring.AllDaysExclusive)
	if err != nil {
		return domain.CertificateRequest{}, err
	}
	if len(eligible) == 0 {
		return domain.CertificateRequest{}, domain.NewBusinessRuleError(domain.ErrNoEligibleRecipients, "event %d", event.ID)
	}

	members := make([]domain.CertificateRecipient, 0, len(eligible))
	for _, r := range eligible {
		members = append(members, domain.CertificateRecipient{
			Name:   r.Member.Name,
			Email:  r.Member.Email,
			Gender: r.Member.Gender,
		})
	}

	return domain.CertificateRequest{
		EventName:     event.Name,
		AnnouncedName: event.Name,
		Date:          scoring.DateLabel(event),
		Official:      event.IsOfficial,
		Members:       members,
	}, nil
}
