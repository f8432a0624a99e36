package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type AttendanceDAO interface {
	Insert(ctx context.Context, attendance dao.Attendance) (dao.Attendance, error)
	FindByEvent(ctx context.Context, eventID uint) ([]dao.Attendance, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

func (r *AttendanceRepository) Record(ctx context.Context, scan domain.Scan) (domain.Scan, error) {
	created, err := r.dao.Insert(ctx, dao.Attendance{
		EventID:    scan.EventID,
		MemberID:   scan.MemberID,
		AttendedOn: scoring.DateOnly(scan.ScannedAt),
		ScannedAt:  scan.ScannedAt,
	})
	if err != nil {
		if errors.Is(err, dao.ErrAttendanceExists) {
			return domain.Scan{}, domain.NewBusinessRuleError(domain.ErrAlreadyAttended, "member %d was already scanned on %s", scan.MemberID, scoring.DateOnly(scan.ScannedAt).Format("2006-01-02"))
		}
		return domain.Scan{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.Scan{
		MemberID:  created.MemberID,
		EventID:   created.EventID,
		ScannedAt: created.ScannedAt,
	}, nil
}

// FindByEvent groups the scans of an event per member. Dates are raw scan
// times; day filtering is left to the caller.
func (r *AttendanceRepository) FindByEvent(ctx context.Context, eventID uint) ([]domain.AttendanceRecord, error) {
	found, err := r.dao.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvent -> %w", err)
	}

	var records []domain.AttendanceRecord
	index := make(map[uint]int)
	for _, a := range found {
		i, ok := index[a.MemberID]
		if !ok {
			records = append(records, domain.AttendanceRecord{Member: memberDaoToDomain(a.Member)})
			i = len(records) - 1
			index[a.MemberID] = i
		}
		records[i].Dates = append(records[i].Dates, a.ScannedAt)
	}

	return records, nil
}
