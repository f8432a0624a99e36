package domain

type RowType string

const (
	RowDepartment RowType = "department"
	RowMember     RowType = "member"
)

// PointDetailRow is one persisted or pending award instruction. It is either
// a DepartmentRow or a MemberRow; the unexported method closes the set.
type PointDetailRow interface {
	Type() RowType
	Log() *uint
	Targets() []uint
	Detail() Award
	isPointDetailRow()
}

// Award is the part of a row shared by both variants. A nil ActionID with a
// non-nil ActionName is a custom award.
type Award struct {
	Points     int     `json:"points"`
	ActionID   *uint   `json:"action_id"`
	ActionName *string `json:"action_name"`
}

func (a Award) IsCustom() bool {
	return a.ActionID == nil
}

type DepartmentRow struct {
	LogID         *uint  `json:"log_id,omitempty"`
	DepartmentIDs []uint `json:"department_ids"`
	Award
}

func (r DepartmentRow) Type() RowType   { return RowDepartment }
func (r DepartmentRow) Log() *uint      { return r.LogID }
func (r DepartmentRow) Targets() []uint { return r.DepartmentIDs }
func (r DepartmentRow) Detail() Award   { return r.Award }
func (DepartmentRow) isPointDetailRow() {}

type MemberRow struct {
	LogID     *uint  `json:"log_id,omitempty"`
	MemberIDs []uint `json:"member_ids"`
	Award
}

func (r MemberRow) Type() RowType   { return RowMember }
func (r MemberRow) Log() *uint      { return r.LogID }
func (r MemberRow) Targets() []uint { return r.MemberIDs }
func (r MemberRow) Detail() Award   { return r.Award }
func (MemberRow) isPointDetailRow() {}

