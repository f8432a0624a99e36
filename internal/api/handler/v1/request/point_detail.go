package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

var errNoRows = errors.New("at least one department or member row is required")

type AwardRequest struct {
	Points     int     `json:"points"`
	ActionID   *uint   `json:"action_id"`
	ActionName *string `json:"action_name"`
}

func (a AwardRequest) toDomain() domain.Award {
	return domain.Award{Points: a.Points, ActionID: a.ActionID, ActionName: a.ActionName}
}

type DepartmentRowRequest struct {
	LogID         *uint  `json:"log_id"`
	DepartmentIDs []uint `json:"department_ids"`
	AwardRequest
}

func (r DepartmentRowRequest) ToDomain() domain.DepartmentRow {
	return domain.DepartmentRow{LogID: r.LogID, DepartmentIDs: r.DepartmentIDs, Award: r.toDomain()}
}

type MemberRowRequest struct {
	LogID     *uint  `json:"log_id"`
	MemberIDs []uint `json:"member_ids"`
	AwardRequest
}

func (r MemberRowRequest) ToDomain() domain.MemberRow {
	return domain.MemberRow{LogID: r.LogID, MemberIDs: r.MemberIDs, Award: r.toDomain()}
}

type CreateDepartmentRowsRequest struct {
	Rows []DepartmentRowRequest `json:"rows"`
}

func (req *CreateDepartmentRowsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Rows, validation.Required),
	)
}

func (req *CreateDepartmentRowsRequest) ToDomain() []domain.DepartmentRow {
	rows := make([]domain.DepartmentRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		r.LogID = nil
		rows = append(rows, r.ToDomain())
	}
	return rows
}

type CreateMemberRowsRequest struct {
	Rows []MemberRowRequest `json:"rows"`
}

func (req *CreateMemberRowsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Rows, validation.Required),
	)
}

func (req *CreateMemberRowsRequest) ToDomain() []domain.MemberRow {
	rows := make([]domain.MemberRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		r.LogID = nil
		rows = append(rows, r.ToDomain())
	}
	return rows
}

// SubmitPointDetailsRequest is the whole edited snapshot of an event. Rows
// with a log_id are edits, rows without one are new.
type SubmitPointDetailsRequest struct {
	Department []DepartmentRowRequest `json:"department"`
	Member     []MemberRowRequest     `json:"member"`
}

func (req *SubmitPointDetailsRequest) Validate() error {
	if len(req.Department) == 0 && len(req.Member) == 0 {
		return validation.Errors{"department": errNoRows, "member": errNoRows}
	}
	return nil
}

func (req *SubmitPointDetailsRequest) ToDomain() []domain.PointDetailRow {
	rows := make([]domain.PointDetailRow, 0, len(req.Department)+len(req.Member))
	for _, r := range req.Department {
		rows = append(rows, r.ToDomain())
	}
	for _, r := range req.Member {
		rows = append(rows, r.ToDomain())
	}
	return rows
}
