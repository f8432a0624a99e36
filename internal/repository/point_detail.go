package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

var (
	ErrLogNotFound     = dao.ErrLogNotFound
	ErrUnknownTarget   = dao.ErrUnknownTarget
	ErrDuplicateTarget = dao.ErrDuplicateTarget
)

type PointDetailDAO interface {
	FindByEvent(ctx context.Context, eventID uint) ([]dao.Log, error)
	FindByID(ctx context.Context, id uint) (dao.Log, error)
	InsertDepartmentLogs(ctx context.Context, logs []dao.Log) ([]dao.Log, error)
	InsertMemberLogs(ctx context.Context, logs []dao.Log) ([]dao.Log, error)
	UpdateDepartmentLog(ctx context.Context, change dao.LogChange) (dao.Log, error)
	UpdateMemberLog(ctx context.Context, change dao.LogChange) (dao.Log, error)
}

type PointDetailRepository struct {
	dao PointDetailDAO
}

func NewPointDetailRepository(dao PointDetailDAO) *PointDetailRepository {
	return &PointDetailRepository{
		dao: dao,
	}
}

// FindByEvent returns the persisted rows of an event. A log linked to
// departments is a department row; every other log is a member row.
func (r *PointDetailRepository) FindByEvent(ctx context.Context, eventID uint) ([]domain.PointDetailRow, error) {
	found, err := r.dao.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvent -> %w", err)
	}

	rows := make([]domain.PointDetailRow, 0, len(found))
	for _, l := range found {
		rows = append(rows, logDaoToRow(l))
	}

	return rows, nil
}

// FindRow returns the row stored under logID. A log of the other row type is
// reported as not found.
func (r *PointDetailRepository) FindRow(ctx context.Context, logID uint, rowType domain.RowType) (domain.PointDetailRow, error) {
	found, err := r.dao.FindByID(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	row := logDaoToRow(found)
	if row.Type() != rowType {
		return nil, fmt.Errorf("log %d is a %s row -> %w", logID, row.Type(), ErrLogNotFound)
	}

	return row, nil
}

func (r *PointDetailRepository) CreateDepartmentRows(ctx context.Context, eventID uint, rows []domain.DepartmentRow) ([]domain.DepartmentRow, error) {
	logs := make([]dao.Log, 0, len(rows))
	for _, row := range rows {
		log := awardToLog(eventID, row.Award)
		for _, id := range row.DepartmentIDs {
			log.Departments = append(log.Departments, dao.DepartmentLog{DepartmentID: id})
		}
		logs = append(logs, log)
	}

	created, err := r.dao.InsertDepartmentLogs(ctx, logs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertDepartmentLogs -> %w", err)
	}

	out := make([]domain.DepartmentRow, 0, len(created))
	for i, l := range created {
		id := l.ID
		row := rows[i]
		row.LogID = &id
		out = append(out, row)
	}

	return out, nil
}

func (r *PointDetailRepository) CreateMemberRows(ctx context.Context, eventID uint, rows []domain.MemberRow) ([]domain.MemberRow, error) {
	logs := make([]dao.Log, 0, len(rows))
	for _, row := range rows {
		log := awardToLog(eventID, row.Award)
		for _, id := range row.MemberIDs {
			log.Members = append(log.Members, dao.MemberLog{MemberID: id})
		}
		logs = append(logs, log)
	}

	created, err := r.dao.InsertMemberLogs(ctx, logs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertMemberLogs -> %w", err)
	}

	out := make([]domain.MemberRow, 0, len(created))
	for i, l := range created {
		id := l.ID
		row := rows[i]
		row.LogID = &id
		out = append(out, row)
	}

	return out, nil
}

// Update applies a patch to the stored version of row. Fields the patch
// leaves nil are written back unchanged.
func (r *PointDetailRepository) Update(ctx context.Context, row domain.PointDetailRow, patch scoring.Patch) (domain.PointDetailRow, error) {
	change := dao.LogChange{Log: awardToLog(0, row.Detail())}
	change.Log.ID = *row.Log()
	if patch.Targets != nil {
		change.Added = patch.Targets.Added
		change.Removed = patch.Targets.Removed
	}

	var (
		updated dao.Log
		err     error
	)
	switch row.Type() {
	case domain.RowDepartment:
		updated, err = r.dao.UpdateDepartmentLog(ctx, change)
		if err != nil {
			return nil, fmt.Errorf("r.dao.UpdateDepartmentLog -> %w", err)
		}
	default:
		updated, err = r.dao.UpdateMemberLog(ctx, change)
		if err != nil {
			return nil, fmt.Errorf("r.dao.UpdateMemberLog -> %w", err)
		}
	}

	return logDaoToRow(updated), nil
}

func awardToLog(eventID uint, a domain.Award) dao.Log {
	log := dao.Log{
		EventID:  eventID,
		ActionID: a.ActionID,
		Points:   a.Points,
	}
	if a.IsCustom() {
		log.Name = a.ActionName
	}
	return log
}

func logDaoToRow(l dao.Log) domain.PointDetailRow {
	id := l.ID
	award := domain.Award{
		Points:     l.Points,
		ActionID:   l.ActionID,
		ActionName: l.Name,
	}
	if l.Action != nil {
		name := l.Action.ActionName
		award.ActionName = &name
	}

	if len(l.Departments) > 0 {
		ids := make([]uint, 0, len(l.Departments))
		for _, d := range l.Departments {
			ids = append(ids, d.DepartmentID)
		}
		return domain.DepartmentRow{LogID: &id, DepartmentIDs: ids, Award: award}
	}

	ids := make([]uint, 0, len(l.Members))
	for _, m := range l.Members {
		ids = append(ids, m.MemberID)
	}
	return domain.MemberRow{LogID: &id, MemberIDs: ids, Award: award}
}
