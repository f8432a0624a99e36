package scoring

import (
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

// Selection is one scoring decision taken while creating an event: the
// chosen action, who it applies to and the manual adjustments.
type Selection struct {
	Category     domain.ActionCategory
	ActionID     uint
	DepartmentID uint
	Bonus        int
	Discount     int
	Roster       []domain.Organizer
}

type DepartmentAward struct {
	DepartmentID uint `json:"department_id"`
	ActionID     uint `json:"action_id"`
	Points       int  `json:"points"`
}

type MemberAward struct {
	Organizer domain.Organizer `json:"organizer"`
	ActionID  uint             `json:"action_id"`
	Points    int              `json:"points"`
}

// Awards is what a Selection resolves to. Adjusted names the side that
// received the bonus and discount.
type Awards struct {
	Department *DepartmentAward `json:"department,omitempty"`
	Members    []MemberAward    `json:"members"`
	Adjusted   domain.RowType   `json:"adjusted"`
}

// adjustedSide is the bonus/discount rule per category. Composite actions
// adjust the department total only, member actions adjust every member
// award, department actions adjust the department award.
var adjustedSide = map[domain.ActionCategory]domain.RowType{
	domain.CategoryComposite:  domain.RowDepartment,
	domain.CategoryDepartment: domain.RowDepartment,
	domain.CategoryMember:     domain.RowMember,
}

var categoryKind = map[domain.ActionCategory]domain.ActionKind{
	domain.CategoryComposite:  domain.ActionComposite,
	domain.CategoryDepartment: domain.ActionDepartment,
	domain.CategoryMember:     domain.ActionMember,
}

type Resolver struct {
	catalog *Catalog
}

func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
	}
}

func (r *Resolver) Resolve(sel Selection) (Awards, error) {
	if err := validateSelection(sel); err != nil {
		return Awards{}, err
	}

	kind, err := r.catalog.KindOf(sel.ActionID)
	if err != nil {
		return Awards{}, err
	}
	if want := categoryKind[sel.Category]; kind != want {
		return Awards{}, domain.NewValidationError("action_id", "action %d is a %s action, expected %s", sel.ActionID, kind, want)
	}

	adjustment := sel.Bonus - sel.Discount
	awards := Awards{Members: []MemberAward{}, Adjusted: adjustedSide[sel.Category]}

	switch sel.Category {
	case domain.CategoryComposite:
		departmentPoints, err := r.catalog.PointsOf(sel.ActionID)
		if err != nil {
			return Awards{}, err
		}
		memberActionID, err := r.catalog.PairedMemberAction(sel.ActionID)
		if err != nil {
			return Awards{}, err
		}
		memberPoints, err := r.catalog.PointsOf(memberActionID)
		if err != nil {
			return Awards{}, err
		}

		awards.Department = &DepartmentAward{
			DepartmentID: sel.DepartmentID,
			ActionID:     sel.ActionID,
			Points:       departmentPoints + adjustment,
		}
		for _, o := range sel.Roster {
			if !o.Participates() {
				continue
			}
			awards.Members = append(awards.Members, MemberAward{Organizer: o, ActionID: memberActionID, Points: memberPoints})
		}

	case domain.CategoryDepartment:
		points, err := r.catalog.PointsOf(sel.ActionID)
		if err != nil {
			return Awards{}, err
		}
		awards.Department = &DepartmentAward{
			DepartmentID: sel.DepartmentID,
			ActionID:     sel.ActionID,
			Points:       points + adjustment,
		}

	case domain.CategoryMember:
		points, err := r.catalog.PointsOf(sel.ActionID)
		if err != nil {
			return Awards{}, err
		}
		for _, o := range sel.Roster {
			awards.Members = append(awards.Members, MemberAward{Organizer: o, ActionID: sel.ActionID, Points: points + adjustment})
		}
	}

	return awards, nil
}

func validateSelection(sel Selection) error {
	var errs domain.ValidationErrors

	if _, ok := categoryKind[sel.Category]; !ok {
		errs = append(errs, domain.NewValidationError("category", "%q cannot be resolved against the catalog", sel.Category))
	}
	if sel.ActionID == 0 {
		errs = append(errs, domain.NewValidationError("action_id", "is required"))
	}
	if sel.Category != domain.CategoryMember && sel.DepartmentID == 0 {
		errs = append(errs, domain.NewValidationError("department_id", "is required"))
	}
	if sel.Bonus < 0 {
		errs = append(errs, domain.NewValidationError("bonus", "must not be negative"))
	}
	if sel.Discount < 0 {
		errs = append(errs, domain.NewValidationError("discount", "must not be negative"))
	}

	return errs.ErrOrNil()
}

// Report summarizes resolved awards for an event spanning days days.
func Report(event domain.Event, awards Awards, departmentName string, days int) domain.EventReport {
	report := domain.EventReport{
		Event:        event,
		Days:         days,
		MembersCount: len(awards.Members),
		Department:   departmentName,
	}
	if awards.Department != nil {
		report.DepartmentPoints = awards.Department.Points * days
	}
	if len(awards.Members) > 0 {
		report.MembersPoints = awards.Members[0].Points * days
	}
	return report
}
