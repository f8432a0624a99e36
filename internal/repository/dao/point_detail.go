package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrLogNotFound     = errors.New("point log not found")
	ErrUnknownTarget   = errors.New("department or member does not exist")
	ErrDuplicateTarget = errors.New("target listed twice for the same log")
)

// Log is one award instruction of an event. A nil ActionID with a non-nil
// Name is a custom award.
type Log struct {
	ID       uint    `gorm:"primaryKey"`
	EventID  uint    `gorm:"not null;index"`
	ActionID *uint   `gorm:"index"`
	Name     *string `gorm:"size:100"`
	Points   int     `gorm:"not null"`

	Action        *Action         `gorm:"foreignKey:ActionID"`
	Event         Event           `gorm:"foreignKey:EventID"`
	Departments   []DepartmentLog `gorm:"foreignKey:LogID"`
	Members       []MemberLog     `gorm:"foreignKey:LogID"`
	Modifications []Modification  `gorm:"foreignKey:LogID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DepartmentLog struct {
	ID           uint `gorm:"primaryKey"`
	LogID        uint `gorm:"not null;uniqueIndex:uni_department_logs_log_department"`
	DepartmentID uint `gorm:"not null;uniqueIndex:uni_department_logs_log_department"`

	Department Department `gorm:"foreignKey:DepartmentID"`
}

type MemberLog struct {
	ID       uint `gorm:"primaryKey"`
	LogID    uint `gorm:"not null;uniqueIndex:uni_member_logs_log_member"`
	MemberID uint `gorm:"not null;uniqueIndex:uni_member_logs_log_member"`

	Member   Member    `gorm:"foreignKey:MemberID"`
	Absences []Absence `gorm:"foreignKey:MemberLogID"`
}

// Modification adjusts the points of a log. Type is "bonus" or "discount".
type Modification struct {
	ID    uint   `gorm:"primaryKey"`
	LogID uint   `gorm:"not null;index"`
	Type  string `gorm:"type:varchar(10);not null"`
	Value int    `gorm:"not null"`
}

// Absence is a day of a multi-day event a member missed.
type Absence struct {
	ID          uint      `gorm:"primaryKey"`
	MemberLogID uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
}

// LogChange is an update of an existing log. Targets listed in Added are
// linked and those in Removed are unlinked.
type LogChange struct {
	Log     Log
	Added   []uint
	Removed []uint
}

type PointDetailDAO struct {
	db *gorm.DB
}

func NewPointDetailDAO(db *gorm.DB) *PointDetailDAO {
	return &PointDetailDAO{
		db: db,
	}
}

func (d *PointDetailDAO) FindByEvent(ctx context.Context, eventID uint) ([]Log, error) {
	var logs []Log

	result := d.db.WithContext(ctx).
		Preload("Action").
		Preload("Departments", func(db *gorm.DB) *gorm.DB { return db.Order("department_id") }).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("member_id") }).
		Preload("Modifications").
		Where("event_id = ?", eventID).
		Order("id").
		Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}

func (d *PointDetailDAO) FindByID(ctx context.Context, id uint) (Log, error) {
	var log Log

	result := d.db.WithContext(ctx).
		Preload("Action").
		Preload("Departments").
		Preload("Members").
		First(&log, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Log{}, ErrLogNotFound
		}

		return Log{}, result.Error
	}

	return log, nil
}

// InsertDepartmentLogs creates logs and their department links in one
// transaction.
func (d *PointDetailDAO) InsertDepartmentLogs(ctx context.Context, logs []Log) ([]Log, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range logs {
			if err := insertLog(tx, &logs[i]); err != nil {
				return err
			}
			if err := insertDepartmentLinks(tx, logs[i].ID, logs[i].Departments); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}

// InsertMemberLogs creates logs and their member links in one transaction.
func (d *PointDetailDAO) InsertMemberLogs(ctx context.Context, logs []Log) ([]Log, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range logs {
			if err := insertLog(tx, &logs[i]); err != nil {
				return err
			}
			if err := insertMemberLinks(tx, logs[i].ID, logs[i].Members); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (d *PointDetailDAO) UpdateDepartmentLog(ctx context.Context, change LogChange) (Log, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateLog(tx, change.Log); err != nil {
			return err
		}
		if len(change.Removed) > 0 {
			if err := tx.Where("log_id = ? AND department_id IN ?", change.Log.ID, change.Removed).
				Delete(&DepartmentLog{}).Error; err != nil {
				return err
			}
		}
		links := make([]DepartmentLog, 0, len(change.Added))
		for _, id := range change.Added {
			links = append(links, DepartmentLog{DepartmentID: id})
		}
		return insertDepartmentLinks(tx, change.Log.ID, links)
	})
	if err != nil {
		return Log{}, err
	}

	return d.FindByID(ctx, change.Log.ID)
}

func (d *PointDetailDAO) UpdateMemberLog(ctx context.Context, change LogChange) (Log, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateLog(tx, change.Log); err != nil {
			return err
		}
		if len(change.Removed) > 0 {
			if err := tx.Where("log_id = ? AND member_id IN ?", change.Log.ID, change.Removed).
				Delete(&MemberLog{}).Error; err != nil {
				return err
			}
		}
		links := make([]MemberLog, 0, len(change.Added))
		for _, id := range change.Added {
			links = append(links, MemberLog{MemberID: id})
		}
		return insertMemberLinks(tx, change.Log.ID, links)
	})
	if err != nil {
		return Log{}, err
	}

	return d.FindByID(ctx, change.Log.ID)
}

func insertLog(tx *gorm.DB, log *Log) error {
	if err := tx.Omit(clause.Associations).Create(log).Error; err != nil {
		return mapTargetErr(err)
	}

	for i := range log.Modifications {
		log.Modifications[i].LogID = log.ID
	}
	if len(log.Modifications) > 0 {
		if err := tx.Create(&log.Modifications).Error; err != nil {
			return err
		}
	}

	return nil
}

func insertDepartmentLinks(tx *gorm.DB, logID uint, links []DepartmentLog) error {
	if len(links) == 0 {
		return nil
	}
	for i := range links {
		links[i].LogID = logID
	}
	if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
		return mapTargetErr(err)
	}

	return nil
}

func insertMemberLinks(tx *gorm.DB, logID uint, links []MemberLog) error {
	for i := range links {
		links[i].LogID = logID
		if links[i].MemberID == 0 {
			member, err := upsertMember(tx, links[i].Member)
			if err != nil {
				return err
			}
			links[i].Member = member
			links[i].MemberID = member.ID
		}
		if err := tx.Omit(clause.Associations).Create(&links[i]).Error; err != nil {
			return mapTargetErr(err)
		}
		for j := range links[i].Absences {
			links[i].Absences[j].MemberLogID = links[i].ID
		}
		if len(links[i].Absences) > 0 {
			if err := tx.Create(&links[i].Absences).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func updateLog(tx *gorm.DB, log Log) error {
	result := tx.Model(&Log{ID: log.ID}).
		Select("action_id", "name", "points", "updated_at").
		Updates(&Log{ActionID: log.ActionID, Name: log.Name, Points: log.Points, UpdatedAt: time.Now()})
	if result.Error != nil {
		return mapTargetErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}

	return nil
}

func mapTargetErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return ErrUnknownTarget
		case pgerrcode.UniqueViolation:
			return ErrDuplicateTarget
		}
	}

	return err
}
