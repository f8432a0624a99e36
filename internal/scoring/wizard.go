package scoring

import (
	"time"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

type EventSelection string

const (
	NewEvent      EventSelection = "new"
	ExistingEvent EventSelection = "existing"
)

type DateType string

const (
	SingleDate DateType = "single"
	DateRange  DateType = "range"
)

type MemberMode string

const (
	SingleMember MemberMode = "single"
	BulkMembers  MemberMode = "bulk"
)

// WizardState is everything an organizer has filled in so far while creating
// an event. Steps are 1-based.
type WizardState struct {
	Category domain.ActionCategory `json:"category"`
	Step     int                   `json:"step"`

	ActionID   *uint  `json:"action_id"`
	ActionName string `json:"action_name"`

	EventSelection  EventSelection `json:"event_selection"`
	ExistingEventID *uint          `json:"existing_event_id"`
	Title           string         `json:"title"`
	DateType        DateType       `json:"date_type"`
	StartDate       *time.Time     `json:"start_date"`
	EndDate         *time.Time     `json:"end_date"`

	MemberMode          MemberMode         `json:"member_mode"`
	MemberID            *uint              `json:"member_id"`
	RosterLink          string             `json:"roster_link"`
	RosterLinkValidated bool               `json:"roster_link_validated"`
	DepartmentID        *uint              `json:"department_id"`
	Points              *int               `json:"points"`
	Organizers          []domain.Organizer `json:"organizers"`
}

type stepKey struct {
	step     int
	category domain.ActionCategory
}

// stepRule is one row of the wizard table: what must hold before leaving a
// step and which step comes next. next is 0 on the final step.
type stepRule struct {
	next  int
	check func(WizardState) error
}

var wizardTable = map[stepKey]stepRule{
	{1, domain.CategoryComposite}:        {2, needAction},
	{2, domain.CategoryComposite}:        {3, needEventDetails},
	{3, domain.CategoryComposite}:        {4, needDepartment},
	{4, domain.CategoryComposite}:        {0, needRoster},
	{1, domain.CategoryDepartment}:       {2, needAction},
	{2, domain.CategoryDepartment}:       {3, needEventDetails},
	{3, domain.CategoryDepartment}:       {0, needDepartment},
	{1, domain.CategoryMember}:           {2, needAction},
	{2, domain.CategoryMember}:           {3, needEventDetails},
	{3, domain.CategoryMember}:           {0, needMembers},
	{1, domain.CategoryCustomMember}:     {2, needCustomName},
	{2, domain.CategoryCustomMember}:     {3, needEventOrExisting},
	{3, domain.CategoryCustomMember}:     {0, all(needPoints, needMembers)},
	{1, domain.CategoryCustomDepartment}: {2, needCustomName},
	{2, domain.CategoryCustomDepartment}: {3, needEventOrExisting},
	{3, domain.CategoryCustomDepartment}: {0, all(needPoints, needDepartment)},
}

// MaxSteps is the number of steps the wizard shows for a category.
func MaxSteps(c domain.ActionCategory) int {
	n := 0
	for k := range wizardTable {
		if k.category == c && k.step > n {
			n = k.step
		}
	}
	return n
}

func lookupStep(s WizardState) (stepRule, error) {
	rule, ok := wizardTable[stepKey{s.Step, s.Category}]
	if !ok {
		return stepRule{}, domain.NewValidationError("step", "step %d does not exist for %q", s.Step, s.Category)
	}
	return rule, nil
}

// CanAdvance reports why the current step cannot be left, or nil.
func CanAdvance(s WizardState) error {
	rule, err := lookupStep(s)
	if err != nil {
		return err
	}
	if rule.next == 0 {
		return domain.NewValidationError("step", "step %d is the last step", s.Step)
	}
	return rule.check(s)
}

// Advance moves to the next step when the current one is complete.
func Advance(s WizardState) (WizardState, error) {
	if err := CanAdvance(s); err != nil {
		return s, err
	}
	rule, _ := lookupStep(s)
	s.Step = rule.next
	return s, nil
}

// Back moves one step back. It never validates.
func Back(s WizardState) WizardState {
	if s.Step > 1 {
		s.Step--
	}
	return s
}

// CanSubmit checks every step of the category, so a state that skipped a
// step through a stale client cannot be submitted.
func CanSubmit(s WizardState) error {
	n := MaxSteps(s.Category)
	if n == 0 {
		return domain.NewValidationError("category", "unknown category %q", s.Category)
	}
	if s.Step != n {
		return domain.NewValidationError("step", "submit is only allowed on step %d", n)
	}

	var errs domain.ValidationErrors
	for step := 1; step <= n; step++ {
		rule := wizardTable[stepKey{step, s.Category}]
		if err := rule.check(s); err != nil {
			errs = appendValidation(errs, err)
		}
	}
	return errs.ErrOrNil()
}

func appendValidation(errs domain.ValidationErrors, err error) domain.ValidationErrors {
	switch e := err.(type) {
	case *domain.ValidationError:
		return append(errs, e)
	case domain.ValidationErrors:
		return append(errs, e...)
	}
	return append(errs, domain.NewValidationError("", "%v", err))
}

func all(checks ...func(WizardState) error) func(WizardState) error {
	return func(s WizardState) error {
		var errs domain.ValidationErrors
		for _, check := range checks {
			if err := check(s); err != nil {
				errs = appendValidation(errs, err)
			}
		}
		return errs.ErrOrNil()
	}
}

func needAction(s WizardState) error {
	if s.ActionID == nil {
		return domain.NewValidationError("action_id", "select an action")
	}
	return nil
}

func needCustomName(s WizardState) error {
	if s.ActionName == "" {
		return domain.NewValidationError("action_name", "name the custom award")
	}
	return nil
}

func needEventDetails(s WizardState) error {
	var errs domain.ValidationErrors
	if s.Title == "" {
		errs = append(errs, domain.NewValidationError("title", "is required"))
	}
	if s.StartDate == nil {
		errs = append(errs, domain.NewValidationError("start_date", "is required"))
	}
	if s.DateType == DateRange {
		switch {
		case s.EndDate == nil:
			errs = append(errs, domain.NewValidationError("end_date", "is required for a date range"))
		case s.StartDate != nil && s.EndDate.Before(*s.StartDate):
			errs = append(errs, domain.NewValidationError("end_date", "must not be before the start date"))
		}
	}
	return errs.ErrOrNil()
}

func needEventOrExisting(s WizardState) error {
	if s.EventSelection == ExistingEvent {
		if s.ExistingEventID == nil {
			return domain.NewValidationError("existing_event_id", "select an event")
		}
		return nil
	}
	return needEventDetails(s)
}

func needDepartment(s WizardState) error {
	if s.DepartmentID == nil {
		return domain.NewValidationError("department_id", "select a department")
	}
	return nil
}

func needMembers(s WizardState) error {
	if s.MemberMode == BulkMembers {
		if s.RosterLink == "" || !s.RosterLinkValidated {
			return domain.NewValidationError("roster_link", "validate the roster link first")
		}
		return nil
	}
	if s.MemberID == nil {
		return domain.NewValidationError("member_id", "select a member")
	}
	return nil
}

func needPoints(s WizardState) error {
	if s.Points == nil {
		return domain.NewValidationError("points", "is required")
	}
	return nil
}

func needRoster(s WizardState) error {
	if s.RosterLink == "" {
		return domain.NewValidationError("roster_link", "an attendants link is required")
	}
	if s.StartDate == nil {
		return nil
	}

	end := *s.StartDate
	if s.DateType == DateRange && s.EndDate != nil {
		end = *s.EndDate
	}
	for _, o := range s.Organizers {
		if len(o.Attendance) == 0 {
			continue
		}
		if err := ValidateAttendance(o.Attendance, *s.StartDate, end); err != nil {
			return err
		}
	}
	return nil
}
