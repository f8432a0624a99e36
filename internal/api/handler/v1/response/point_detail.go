package response

import (
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

// PointDetails lists the rows of an event split by row type.
type PointDetails struct {
	Department []domain.DepartmentRow `json:"department"`
	Member     []domain.MemberRow     `json:"member"`
}

func NewPointDetails(rows []domain.PointDetailRow) PointDetails {
	out := PointDetails{
		Department: []domain.DepartmentRow{},
		Member:     []domain.MemberRow{},
	}
	for _, r := range rows {
		switch row := r.(type) {
		case domain.DepartmentRow:
			out.Department = append(out.Department, row)
		case domain.MemberRow:
			out.Member = append(out.Member, row)
		}
	}

	return out
}

type FailedOperation struct {
	Op    string `json:"op"`
	LogID *uint  `json:"log_id,omitempty"`
	Error string `json:"error"`
}

// Submission is returned for a reconciled snapshot. Failed is only set when
// some operations did not go through; the others are kept.
type Submission struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Updated   PointDetails      `json:"updated"`
	Created   PointDetails      `json:"created"`
	Failed    []FailedOperation `json:"failed,omitempty"`
}
