package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventNameExists = errors.New("event name already exists")
)

type Event struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:100;not null;uniqueIndex:uni_events_name"`
	Description   string    `gorm:"type:text"`
	LocationType  string    `gorm:"type:varchar(20);not null"`
	Location      string    `gorm:"size:100"`
	StartDateTime time.Time `gorm:"column:start_datetime;not null"`
	EndDateTime   time.Time `gorm:"column:end_datetime;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:draft;index"`
	IsOfficial    bool      `gorm:"not null;default:false"`
	ClosedAt      *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	if err := insertEvent(d.db.WithContext(ctx), &event); err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// UpdateStatus persists a status change only if the stored status is still
// fromStatus, so two concurrent transitions cannot both succeed.
func (d *EventDAO) UpdateStatus(ctx context.Context, event Event, fromStatus string) (Event, error) {
	result := d.db.WithContext(ctx).
		Model(&event).
		Where("status = ?", fromStatus).
		Select("status", "closed_at", "updated_at").
		Updates(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, event.ID)
}

// FindVisible lists events newest first, leaving out hidden scoring-only
// events.
func (d *EventDAO) FindVisible(ctx context.Context) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("location_type <> ?", "hidden").
		Order("start_datetime DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// FindOpenStartedBefore lists open events whose start time has passed.
func (d *EventDAO) FindOpenStartedBefore(ctx context.Context, t time.Time) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("status = ? AND start_datetime <= ?", "open", t).
		Order("id").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func insertEvent(tx *gorm.DB, event *Event) error {
	result := tx.Create(event)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && strings.Contains(pgErr.ConstraintName, "uni_events_name") {
			return ErrEventNameExists
		}

		return result.Error
	}

	return nil
}

// InsertWithLogs creates an event together with its award logs. Member links
// without a MemberID are matched to existing members by UniID, creating the
// member when none exists. Nothing is written if any step fails.
func (d *EventDAO) InsertWithLogs(ctx context.Context, event Event, logs []Log) (Event, []Log, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertEvent(tx, &event); err != nil {
			return err
		}

		for i := range logs {
			logs[i].EventID = event.ID
			if err := insertLog(tx, &logs[i]); err != nil {
				return err
			}
			if err := insertDepartmentLinks(tx, logs[i].ID, logs[i].Departments); err != nil {
				return err
			}
			if err := insertMemberLinks(tx, logs[i].ID, logs[i].Members); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Event{}, nil, err
	}

	return event, logs, nil
}
