package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	UpdateStatus(ctx context.Context, event dao.Event, fromStatus string) (dao.Event, error)
	FindVisible(ctx context.Context) ([]dao.Event, error)
	FindOpenStartedBefore(ctx context.Context, t time.Time) ([]dao.Event, error)
	InsertWithLogs(ctx context.Context, event dao.Event, logs []dao.Log) (dao.Event, []dao.Log, error)
}

// NewEventAwards is an event to create together with the awards resolved for
// it. Bonus and Discount were already applied to the Adjusted side of Awards.
type NewEventAwards struct {
	Event    domain.Event
	Awards   scoring.Awards
	Bonus    int
	Discount int
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, eventDomainToDao(event))
	if err != nil {
		if errors.Is(err, dao.ErrEventNameExists) {
			return domain.Event{}, nameTaken(event.Name)
		}
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return eventDaoToDomain(found), nil
}

// UpdateStatus stores event's status and closing time. It fails with
// ErrEventNotFound if the stored status is no longer from.
func (r *EventRepository) UpdateStatus(ctx context.Context, event domain.Event, from domain.EventStatus) (domain.Event, error) {
	updated, err := r.dao.UpdateStatus(ctx, eventDomainToDao(event), string(from))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return eventDaoToDomain(updated), nil
}

func (r *EventRepository) FindVisible(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVisible -> %w", err)
	}

	return eventsDaoToDomain(found), nil
}

func (r *EventRepository) FindOpenStartedBefore(ctx context.Context, t time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindOpenStartedBefore(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOpenStartedBefore -> %w", err)
	}

	return eventsDaoToDomain(found), nil
}

// CreateWithAwards persists the event, one department log and one member log
// per awarded action in a single transaction. Logs keep the catalog points
// and the adjustment is stored as modifications of the adjusted log. Absent
// days of multi-day events are recorded per member.
func (r *EventRepository) CreateWithAwards(ctx context.Context, in NewEventAwards) (domain.Event, error) {
	var logs []dao.Log
	adjustment := in.Bonus - in.Discount

	if d := in.Awards.Department; d != nil {
		log := dao.Log{
			ActionID:    &d.ActionID,
			Points:      d.Points,
			Departments: []dao.DepartmentLog{{DepartmentID: d.DepartmentID}},
		}
		if in.Awards.Adjusted == domain.RowDepartment {
			log.Points -= adjustment
			log.Modifications = modifications(in.Bonus, in.Discount)
		}
		logs = append(logs, log)
	}

	index := make(map[uint]int)
	for _, m := range in.Awards.Members {
		i, ok := index[m.ActionID]
		if !ok {
			actionID := m.ActionID
			log := dao.Log{ActionID: &actionID, Points: m.Points}
			if in.Awards.Adjusted == domain.RowMember {
				log.Points -= adjustment
				log.Modifications = modifications(in.Bonus, in.Discount)
			}
			logs = append(logs, log)
			i = len(logs) - 1
			index[m.ActionID] = i
		}

		link := dao.MemberLog{Member: memberDomainToDao(m.Organizer.Member())}
		for _, date := range scoring.AbsentDates(m.Organizer.Attendance, in.Event.StartDateTime) {
			link.Absences = append(link.Absences, dao.Absence{Date: date})
		}
		logs[i].Members = append(logs[i].Members, link)
	}

	created, _, err := r.dao.InsertWithLogs(ctx, eventDomainToDao(in.Event), logs)
	if err != nil {
		if errors.Is(err, dao.ErrEventNameExists) {
			return domain.Event{}, nameTaken(in.Event.Name)
		}
		return domain.Event{}, fmt.Errorf("r.dao.InsertWithLogs -> %w", err)
	}

	return eventDaoToDomain(created), nil
}

func nameTaken(name string) error {
	return domain.NewBusinessRuleError(domain.ErrEventNameTaken, "an event named %q already exists", name)
}

func modifications(bonus, discount int) []dao.Modification {
	var mods []dao.Modification
	if bonus > 0 {
		mods = append(mods, dao.Modification{Type: "bonus", Value: bonus})
	}
	if discount > 0 {
		mods = append(mods, dao.Modification{Type: "discount", Value: discount})
	}
	return mods
}

func eventDomainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		LocationType:  string(e.LocationType),
		Location:      e.Location,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Status:        string(e.Status),
		IsOfficial:    e.IsOfficial,
		ClosedAt:      e.ClosedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func eventsDaoToDomain(found []dao.Event) []domain.Event {
	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDaoToDomain(e))
	}
	return events
}

func eventDaoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		LocationType:  domain.LocationType(e.LocationType),
		Location:      e.Location,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Status:        domain.EventStatus(e.Status),
		IsOfficial:    e.IsOfficial,
		ClosedAt:      e.ClosedAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
