package request

import (
	"errors"
	"time"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

const (
	rosterLinkPattern = `^https://docs\.google\.com/spreadsheets/(?=.*[?&]output=csv(&|$)).+$`
)

var (
	rosterLinkExp = regexp2.MustCompile(rosterLinkPattern, regexp2.None)

	errInvalidRosterLink = errors.New("the roster link must be a published Google Sheets link with the 'output=csv' parameter")
	errEndBeforeStart    = errors.New("must not be before start_datetime")
)

type EventRequest struct {
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description"`
	LocationType  string    `json:"location_type" binding:"required"`
	Location      string    `json:"location"`
	StartDateTime time.Time `json:"start_datetime" binding:"required"`
	EndDateTime   time.Time `json:"end_datetime" binding:"required"`
	IsOfficial    bool      `json:"is_official"`
}

func (req EventRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 1000)),
		validation.Field(&req.LocationType, validation.Required, validation.In(
			string(domain.LocationOnline), string(domain.LocationOnSite), string(domain.LocationNone), string(domain.LocationHidden))),
		validation.Field(&req.Location, validation.Length(0, 100)),
		validation.Field(&req.StartDateTime, validation.Required),
		validation.Field(&req.EndDateTime, validation.Required, validation.By(func(any) error {
			if req.EndDateTime.Before(req.StartDateTime) {
				return errEndBeforeStart
			}
			return nil
		})),
	)
}

func (req EventRequest) ToDomain() domain.Event {
	return domain.Event{
		Name:          req.Name,
		Description:   req.Description,
		LocationType:  domain.LocationType(req.LocationType),
		Location:      req.Location,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		IsOfficial:    req.IsOfficial,
	}
}

type OrganizerRequest struct {
	Name                  string   `json:"name"`
	Email                 string   `json:"email"`
	PhoneNumber           string   `json:"phone_number"`
	UniID                 string   `json:"uni_id"`
	Gender                string   `json:"gender"`
	ParticipationActionID *uint    `json:"participation_action_id"`
	Attendance            []string `json:"attendance"`
}

func (req OrganizerRequest) Validate() error {
	return validation.ValidateStruct(
		&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.UniID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Gender, validation.Required, validation.In(string(domain.GenderMale), string(domain.GenderFemale))),
		validation.Field(&req.ParticipationActionID, validation.NilOrNotEmpty),
	)
}

// CompositeEventRequest creates an event and awards its points in one call.
// Organizers without attendance are treated as present every day.
type CompositeEventRequest struct {
	Event        EventRequest       `json:"event_info"`
	Category     string             `json:"category"`
	ActionID     uint               `json:"action_id"`
	DepartmentID uint               `json:"department_id"`
	Bonus        int                `json:"bonus"`
	Discount     int                `json:"discount"`
	RosterLink   string             `json:"members_attendance"`
	Organizers   []OrganizerRequest `json:"organizers"`
}

func (req *CompositeEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Event),
		validation.Field(&req.Category, validation.Required, validation.In(
			string(domain.CategoryComposite), string(domain.CategoryDepartment), string(domain.CategoryMember))),
		validation.Field(&req.ActionID, validation.Required),
		validation.Field(&req.Bonus, validation.Min(0)),
		validation.Field(&req.Discount, validation.Min(0)),
		validation.Field(&req.Organizers),
	)
	if err != nil {
		return err
	}

	if req.RosterLink != "" {
		ok, err := rosterLinkExp.MatchString(req.RosterLink)
		if err != nil {
			return err
		}
		if !ok {
			return errInvalidRosterLink
		}
	}

	return nil
}

func (req *CompositeEventRequest) ToDomain() (domain.Event, scoring.Selection) {
	roster := make([]domain.Organizer, 0, len(req.Organizers))
	for _, o := range req.Organizers {
		marks := make([]domain.AttendanceMark, 0, len(o.Attendance))
		for _, m := range o.Attendance {
			marks = append(marks, domain.AttendanceMark(m))
		}
		roster = append(roster, domain.Organizer{
			Name:                  o.Name,
			Email:                 o.Email,
			PhoneNumber:           o.PhoneNumber,
			UniID:                 o.UniID,
			Gender:                domain.Gender(o.Gender),
			ParticipationActionID: o.ParticipationActionID,
			Attendance:            marks,
		})
	}

	return req.Event.ToDomain(), scoring.Selection{
		Category:     domain.ActionCategory(req.Category),
		ActionID:     req.ActionID,
		DepartmentID: req.DepartmentID,
		Bonus:        req.Bonus,
		Discount:     req.Discount,
		Roster:       roster,
	}
}
