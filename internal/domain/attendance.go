package domain

import "time"

type AttendanceMark string

const (
	Present AttendanceMark = "present"
	Absent  AttendanceMark = "absent"
)

func (m AttendanceMark) IsValid() bool {
	return m == Present || m == Absent
}

// AttendanceRecord lists the calendar days one member was present at one
// event. Dates are in day order and Days holds the matching 1-based day
// numbers.
type AttendanceRecord struct {
	Member Member      `json:"Member"`
	Dates  []time.Time `json:"dates"`
	Days   []int       `json:"days"`
}

// Scan is a raw date-stamped check-in of a member at an event.
type Scan struct {
	MemberID  uint      `json:"member_id"`
	EventID   uint      `json:"event_id"`
	ScannedAt time.Time `json:"scanned_at"`
}

// Organizer is a roster entry submitted while creating an event.
// Attendance holds exactly one mark per event day.
type Organizer struct {
	Name                  string           `json:"name"`
	Email                 string           `json:"email"`
	PhoneNumber           string           `json:"phone_number"`
	UniID                 string           `json:"uni_id"`
	Gender                Gender           `json:"gender"`
	ParticipationActionID *uint            `json:"participation_action_id"`
	Attendance            []AttendanceMark `json:"attendance"`
}

// Participates reports whether the entry names a participation action.
// A zero id counts as none.
func (o Organizer) Participates() bool {
	return o.ParticipationActionID != nil && *o.ParticipationActionID != 0
}

func (o Organizer) Member() Member {
	return Member{
		Name:        o.Name,
		Email:       o.Email,
		PhoneNumber: o.PhoneNumber,
		UniID:       o.UniID,
		Gender:      o.Gender,
	}
}
