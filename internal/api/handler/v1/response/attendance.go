package response

import (
	"time"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

type MemberAttendance struct {
	Member domain.Member `json:"Member"`
	Dates  []string      `json:"dates"`
}

type Attendance struct {
	Attendance      []MemberAttendance `json:"attendance"`
	AttendanceCount int                `json:"attendance_count"`
}

func NewAttendance(records []domain.AttendanceRecord) Attendance {
	out := Attendance{
		Attendance:      make([]MemberAttendance, 0, len(records)),
		AttendanceCount: len(records),
	}
	for _, r := range records {
		dates := make([]string, 0, len(r.Dates))
		for _, d := range r.Dates {
			dates = append(dates, d.Format(time.DateOnly))
		}
		out.Attendance = append(out.Attendance, MemberAttendance{Member: r.Member, Dates: dates})
	}

	return out
}
