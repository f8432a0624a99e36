package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

type PointsChange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type ActionNameChange struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type TargetsChange struct {
	Added   []uint `json:"added"`
	Removed []uint `json:"removed"`
}

// Patch is the field level edit list between two versions of a row. A nil
// field means unchanged.
type Patch struct {
	Points     *PointsChange     `json:"points,omitempty"`
	ActionName *ActionNameChange `json:"action_name,omitempty"`
	Targets    *TargetsChange    `json:"targets,omitempty"`
}

func (p Patch) Empty() bool {
	return p.Points == nil && p.ActionName == nil && p.Targets == nil
}

// Diff compares a persisted row with its edited version. Target ids are
// compared as sets.
func Diff(before, after domain.PointDetailRow) Patch {
	var p Patch

	a, b := before.Detail(), after.Detail()
	if a.Points != b.Points {
		p.Points = &PointsChange{From: a.Points, To: b.Points}
	}
	if !sameName(a.ActionName, b.ActionName) {
		p.ActionName = &ActionNameChange{From: a.ActionName, To: b.ActionName}
	}
	if added, removed := setDiff(before.Targets(), after.Targets()); len(added) > 0 || len(removed) > 0 {
		p.Targets = &TargetsChange{Added: added, Removed: removed}
	}

	return p
}

func sameName(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func setDiff(before, after []uint) (added, removed []uint) {
	a, b := sortedSet(before), sortedSet(after)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			removed = append(removed, a[i])
			i++
		default:
			added = append(added, b[j])
			j++
		}
	}
	removed = append(removed, a[i:]...)
	added = append(added, b[j:]...)
	return added, removed
}

func sortedSet(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func firstDuplicate(ids []uint) (uint, bool) {
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return id, true
		}
		seen[id] = true
	}
	return 0, false
}

type Update struct {
	Row   domain.PointDetailRow
	Patch Patch
}

// Plan is the set of operations that moves the persisted rows of an event to
// the edited ones. Rows removed from the edited set produce no operation.
type Plan struct {
	Updates           []Update
	DepartmentCreates []domain.DepartmentRow
	MemberCreates     []domain.MemberRow
}

func (p Plan) Empty() bool {
	return p.Size() == 0
}

func (p Plan) Size() int {
	return len(p.Updates) + len(p.DepartmentCreates) + len(p.MemberCreates)
}

type rowKey struct {
	rowType domain.RowType
	logID   uint
}

// Reconcile computes the plan between initial, the rows as persisted, and
// current, the rows as edited. It is a pure function of its inputs.
func Reconcile(initial, current []domain.PointDetailRow) (Plan, error) {
	persisted := make(map[rowKey]domain.PointDetailRow, len(initial))
	for _, r := range initial {
		if r.Log() == nil {
			return Plan{}, domain.NewValidationError("initial", "persisted %s row has no log id", r.Type())
		}
		persisted[rowKey{r.Type(), *r.Log()}] = r
	}

	plan := Plan{
		Updates:           []Update{},
		DepartmentCreates: []domain.DepartmentRow{},
		MemberCreates:     []domain.MemberRow{},
	}
	var errs domain.ValidationErrors
	claimed := make(map[rowKey]bool, len(current))

	for i, r := range current {
		if r.Log() == nil {
			switch row := r.(type) {
			case domain.DepartmentRow:
				plan.DepartmentCreates = append(plan.DepartmentCreates, row)
			case domain.MemberRow:
				plan.MemberCreates = append(plan.MemberCreates, row)
			}
			continue
		}

		key := rowKey{r.Type(), *r.Log()}
		field := fmt.Sprintf("rows[%d].log_id", i)
		if claimed[key] {
			errs = append(errs, domain.NewValidationError(field, "log %d appears more than once", key.logID))
			continue
		}
		claimed[key] = true

		before, ok := persisted[key]
		if !ok {
			errs = append(errs, domain.NewValidationError(field, "no persisted %s row with log %d", key.rowType, key.logID))
			continue
		}

		if patch := Diff(before, r); !patch.Empty() {
			plan.Updates = append(plan.Updates, Update{Row: r, Patch: patch})
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// ValidateRows checks that every row has distinct targets and passes
// CheckLocked. Unknown actions are returned as is.
func ValidateRows(rows []domain.PointDetailRow, catalog *Catalog) error {
	var errs domain.ValidationErrors

	for i, r := range rows {
		prefix := fmt.Sprintf("rows[%d]", i)

		if len(r.Targets()) == 0 {
			errs = append(errs, domain.NewValidationError(prefix+".targets", "at least one %s is required", r.Type()))
		}
		if id, ok := firstDuplicate(r.Targets()); ok {
			errs = append(errs, domain.NewValidationError(prefix+".targets", "%s %d is listed more than once", r.Type(), id))
		}

		if err := CheckLocked(r, catalog); err != nil {
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				return err
			}
			errs = append(errs, domain.NewValidationError(prefix+"."+ve.Field, "%s", ve.Reason))
		}
	}

	return errs.ErrOrNil()
}

// CheckLocked verifies that a row referencing a catalog action carries that
// action's points, and that a custom row has a name.
func CheckLocked(r domain.PointDetailRow, catalog *Catalog) error {
	award := r.Detail()
	if award.IsCustom() {
		if award.ActionName == nil || *award.ActionName == "" {
			return domain.NewValidationError("action_name", "custom awards need a name")
		}
		return nil
	}

	points, err := catalog.PointsOf(*award.ActionID)
	if err != nil {
		return err
	}
	if award.Points != points {
		return domain.NewValidationError("points", "action %d is worth %d points, row has %d", *award.ActionID, points, award.Points)
	}
	return nil
}
