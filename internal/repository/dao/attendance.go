package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrAttendanceExists = errors.New("attendance already recorded")

// Attendance is one scan of a member at an event. A member is scanned at most
// once per calendar day.
type Attendance struct {
	ID         uint      `gorm:"primaryKey"`
	EventID    uint      `gorm:"not null;uniqueIndex:uni_attendances_event_member_day"`
	MemberID   uint      `gorm:"not null;uniqueIndex:uni_attendances_event_member_day"`
	AttendedOn time.Time `gorm:"type:date;not null;uniqueIndex:uni_attendances_event_member_day"`
	ScannedAt  time.Time `gorm:"not null"`

	Member Member `gorm:"foreignKey:MemberID"`
	Event  Event  `gorm:"foreignKey:EventID"`
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

func (d *AttendanceDAO) Insert(ctx context.Context, attendance Attendance) (Attendance, error) {
	result := d.db.WithContext(ctx).Omit("Member", "Event").Create(&attendance)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return Attendance{}, ErrAttendanceExists
			case pgerrcode.ForeignKeyViolation:
				return Attendance{}, ErrMemberNotFound
			}
		}

		return Attendance{}, result.Error
	}

	return attendance, nil
}

// FindByEvent returns every scan of the event with its member, ordered by
// member and scan time.
func (d *AttendanceDAO) FindByEvent(ctx context.Context, eventID uint) ([]Attendance, error) {
	var attendances []Attendance

	result := d.db.WithContext(ctx).
		Preload("Member").
		Where("event_id = ?", eventID).
		Order("member_id, scanned_at").
		Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendances, nil
}
