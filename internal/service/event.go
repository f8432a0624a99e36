package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindVisible(ctx context.Context) ([]domain.Event, error)
	UpdateStatus(ctx context.Context, event domain.Event, from domain.EventStatus) (domain.Event, error)
	FindOpenStartedBefore(ctx context.Context, t time.Time) ([]domain.Event, error)
	CreateWithAwards(ctx context.Context, in repository.NewEventAwards) (domain.Event, error)
}

type DepartmentFinder interface {
	FindDepartmentByID(ctx context.Context, id uint) (domain.Department, error)
}

type CertificateSender interface {
	Send(ctx context.Context, event domain.Event) (domain.CertificateJob, error)
}

// CompositeInput is an event to create together with the scoring selection
// made for it.
type CompositeInput struct {
	Event     domain.Event
	Selection scoring.Selection
}

// CloseResult is the outcome of closing an event. Warning is set when the
// event was closed but certificates could not be dispatched.
type CloseResult struct {
	Event        domain.Event           `json:"event"`
	Certificates *domain.CertificateJob `json:"certificates,omitempty"`
	Warning      string                 `json:"warning,omitempty"`
}

type EventService struct {
	repo         EventRepository
	departments  DepartmentFinder
	catalog      CatalogProvider
	certificates CertificateSender
	now          func() time.Time
}

func NewEventService(repo EventRepository, departments DepartmentFinder, catalog CatalogProvider, certificates CertificateSender) *EventService {
	return &EventService{
		repo:         repo,
		departments:  departments,
		catalog:      catalog,
		certificates: certificates,
		now:          time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return domain.Event{}, err
	}
	if event.Status == "" {
		event.Status = domain.EventDraft
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, classify("s.repo.Create", err)
	}

	return created, nil
}

func (s *EventService) Get(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, classify("s.repo.FindByID", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindVisible(ctx)
	if err != nil {
		return nil, classify("s.repo.FindVisible", err)
	}

	return events, nil
}

// Open publishes a draft event. Opening an open event again is allowed.
func (s *EventService) Open(ctx context.Context, id uint) (domain.Event, error) {
	return s.transition(ctx, id, func(e domain.Event) domain.EventTrigger {
		return domain.TriggerPublish
	})
}

// Activate starts attendance for an open event or reopens a closed one.
func (s *EventService) Activate(ctx context.Context, id uint) (domain.Event, error) {
	return s.transition(ctx, id, func(e domain.Event) domain.EventTrigger {
		if e.Status == domain.EventClosed {
			return domain.TriggerReopen
		}
		return domain.TriggerStartAttendance
	})
}

// Close closes an active event and, when withCertificates is set, then
// dispatches certificates. A dispatch failure does not undo the close; it is
// reported as the Warning of the result.
func (s *EventService) Close(ctx context.Context, id uint, withCertificates bool) (CloseResult, error) {
	event, err := s.transition(ctx, id, func(domain.Event) domain.EventTrigger {
		return domain.TriggerClose
	})
	if err != nil {
		return CloseResult{}, err
	}

	result := CloseResult{Event: event}
	if !withCertificates {
		return result, nil
	}

	job, err := s.certificates.Send(ctx, event)
	if job.ID != "" {
		result.Certificates = &job
	}
	if err != nil {
		zap.L().Warn("event closed but certificates were not dispatched",
			zap.Uint("event_id", event.ID),
			zap.Error(err))
		result.Warning = err.Error()
	}

	return result, nil
}

// ActivateDue starts attendance for every open event whose start time is not
// after now. It returns how many events were activated.
func (s *EventService) ActivateDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.repo.FindOpenStartedBefore(ctx, now)
	if err != nil {
		return 0, classify("s.repo.FindOpenStartedBefore", err)
	}

	var errs []error
	activated := 0
	for _, e := range due {
		from := e.Status
		if err := e.StartAttendance(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := s.repo.UpdateStatus(ctx, e, from); err != nil {
			if errors.Is(err, ErrEventNotFound) {
				continue
			}
			errs = append(errs, fmt.Errorf("event %d -> %w", e.ID, err))
			continue
		}
		activated++
	}

	return activated, errors.Join(errs...)
}

// CreateComposite creates an event together with the awards its selection
// resolves to and reports what was awarded.
func (s *EventService) CreateComposite(ctx context.Context, in CompositeInput) (domain.EventReport, error) {
	event := in.Event
	if err := validateEvent(event); err != nil {
		return domain.EventReport{}, err
	}
	if event.Status == "" {
		event.Status = domain.EventDraft
	}

	roster, err := normalizeRoster(in.Selection.Roster, event)
	if err != nil {
		return domain.EventReport{}, err
	}
	sel := in.Selection
	sel.Roster = roster

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return domain.EventReport{}, fmt.Errorf("s.catalog.Catalog -> %w", err)
	}
	awards, err := scoring.NewResolver(catalog).Resolve(sel)
	if err != nil {
		return domain.EventReport{}, err
	}

	var departmentName string
	if sel.DepartmentID != 0 {
		department, err := s.departments.FindDepartmentByID(ctx, sel.DepartmentID)
		if err != nil {
			return domain.EventReport{}, classify("s.departments.FindDepartmentByID", err)
		}
		departmentName = department.Name
	}

	created, err := s.repo.CreateWithAwards(ctx, repository.NewEventAwards{
		Event:    event,
		Awards:   awards,
		Bonus:    sel.Bonus,
		Discount: sel.Discount,
	})
	if err != nil {
		return domain.EventReport{}, classify("s.repo.CreateWithAwards", err)
	}

	zap.L().Info("composite event created",
		zap.Uint("event_id", created.ID),
		zap.Uint("action_id", sel.ActionID),
		zap.Int("members", len(awards.Members)))

	return scoring.Report(created, awards, departmentName, scoring.DayCount(created.StartDateTime, created.EndDateTime)), nil
}

func (s *EventService) transition(ctx context.Context, id uint, trigger func(domain.Event) domain.EventTrigger) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, classify("s.repo.FindByID", err)
	}

	from := event.Status
	t := trigger(event)
	if err := event.Apply(t, s.now()); err != nil {
		return domain.Event{}, err
	}

	updated, err := s.repo.UpdateStatus(ctx, event, from)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return domain.Event{}, domain.NewBusinessRuleError(domain.ErrIllegalTransition, "event %d changed status while trying to %s it", id, t)
		}
		return domain.Event{}, classify("s.repo.UpdateStatus", err)
	}

	zap.L().Info("event status changed",
		zap.Uint("event_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(updated.Status)))

	return updated, nil
}

func validateEvent(e domain.Event) error {
	var errs domain.ValidationErrors

	if e.Name == "" {
		errs = append(errs, domain.NewValidationError("name", "is required"))
	}
	if e.LocationType != "" && !e.LocationType.IsValid() {
		errs = append(errs, domain.NewValidationError("location_type", "%q is not a location type", e.LocationType))
	}
	if e.StartDateTime.IsZero() {
		errs = append(errs, domain.NewValidationError("start_datetime", "is required"))
	}
	if e.EndDateTime.IsZero() {
		errs = append(errs, domain.NewValidationError("end_datetime", "is required"))
	} else if e.EndDateTime.Before(e.StartDateTime) {
		errs = append(errs, domain.NewValidationError("end_datetime", "must not be before start_datetime"))
	}

	return errs.ErrOrNil()
}

// normalizeRoster fills in full attendance for entries that sent none and
// checks the others have one mark per event day.
func normalizeRoster(roster []domain.Organizer, e domain.Event) ([]domain.Organizer, error) {
	out := make([]domain.Organizer, 0, len(roster))
	var errs domain.ValidationErrors

	for i, o := range roster {
		if o.UniID == "" {
			errs = append(errs, domain.NewValidationError(fmt.Sprintf("organizers[%d].uni_id", i), "is required"))
		}
		if len(o.Attendance) == 0 {
			o.Attendance = scoring.FullAttendance(e.StartDateTime, e.EndDateTime)
		} else if err := scoring.ValidateAttendance(o.Attendance, e.StartDateTime, e.EndDateTime); err != nil {
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				return nil, err
			}
			errs = append(errs, &domain.ValidationError{Field: fmt.Sprintf("organizers[%d].%s", i, ve.Field), Reason: ve.Reason})
		}
		out = append(out, o)
	}

	return out, errs.ErrOrNil()
}
