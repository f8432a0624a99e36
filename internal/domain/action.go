package domain

type ActionKind string

const (
	ActionComposite  ActionKind = "composite"
	ActionDepartment ActionKind = "department"
	ActionMember     ActionKind = "member"
	ActionBonus      ActionKind = "bonus"
)

func (k ActionKind) IsValid() bool {
	switch k {
	case ActionComposite, ActionDepartment, ActionMember, ActionBonus:
		return true
	}
	return false
}

type Action struct {
	ID            uint       `json:"id"`
	Kind          ActionKind `json:"action_type"`
	Name          string     `json:"action_name"`
	LocalizedName string     `json:"ar_action_name"`
	Points        int        `json:"points"`
}

// ActionPair links the department side of a composite action to the member
// action granted alongside it.
type ActionPair struct {
	Department Action `json:"department"`
	Member     Action `json:"member"`
}

// ActionListing is the categorized view served by GET /events/actions.
type ActionListing struct {
	Composite  []ActionPair `json:"composite"`
	Department []Action     `json:"department"`
	Member     []Action     `json:"member"`
	Custom     []Action     `json:"custom"`
}

// ActionCategory is what an organizer picks in the first step of the
// event creation wizard.
type ActionCategory string

const (
	CategoryComposite        ActionCategory = "composite"
	CategoryDepartment       ActionCategory = "department"
	CategoryMember           ActionCategory = "member"
	CategoryCustomMember     ActionCategory = "custom_member"
	CategoryCustomDepartment ActionCategory = "custom_department"
)

func (c ActionCategory) IsCustom() bool {
	return c == CategoryCustomMember || c == CategoryCustomDepartment
}
