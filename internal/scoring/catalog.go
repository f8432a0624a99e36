package scoring

import (
	"sort"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

// Pairing ties the department side of a composite action to the member
// action granted alongside it.
type Pairing struct {
	DepartmentActionID uint `mapstructure:"department_action_id" json:"department_action_id" validate:"required"`
	MemberActionID     uint `mapstructure:"member_action_id" json:"member_action_id" validate:"required,nefield=DepartmentActionID"`
}

// Catalog is an immutable snapshot of the action reference data. Callers
// that need fresh data build a new Catalog; nothing is invalidated for them.
type Catalog struct {
	actions map[uint]domain.Action
	kinds   map[uint]domain.ActionKind
	pairs   map[uint]uint
	order   []Pairing
}

// NewCatalog classifies raw actions. A pairing whose department action is
// missing is ignored. A pairing whose member action is missing still marks
// the department action as composite, so resolving its pair fails loudly
// instead of silently scoring nothing.
func NewCatalog(actions []domain.Action, pairings []Pairing) *Catalog {
	c := &Catalog{
		actions: make(map[uint]domain.Action, len(actions)),
		kinds:   make(map[uint]domain.ActionKind, len(actions)),
		pairs:   make(map[uint]uint, len(pairings)),
	}

	for _, a := range actions {
		c.actions[a.ID] = a
		c.kinds[a.ID] = a.Kind
	}

	for _, p := range pairings {
		if _, ok := c.actions[p.DepartmentActionID]; !ok {
			continue
		}
		c.kinds[p.DepartmentActionID] = domain.ActionComposite
		if _, ok := c.actions[p.MemberActionID]; !ok {
			continue
		}
		c.kinds[p.MemberActionID] = domain.ActionMember
		c.pairs[p.DepartmentActionID] = p.MemberActionID
		c.order = append(c.order, p)
	}

	return c
}

// CatalogFromListing rebuilds a Catalog from the categorized listing served
// to clients.
func CatalogFromListing(l domain.ActionListing) *Catalog {
	var actions []domain.Action
	var pairings []Pairing

	for _, p := range l.Composite {
		actions = append(actions, p.Department)
		if p.Member.ID != 0 {
			actions = append(actions, p.Member)
		}
		pairings = append(pairings, Pairing{DepartmentActionID: p.Department.ID, MemberActionID: p.Member.ID})
	}
	actions = append(actions, l.Department...)
	actions = append(actions, l.Member...)
	for _, a := range l.Custom {
		a.Kind = domain.ActionBonus
		actions = append(actions, a)
	}

	return NewCatalog(actions, pairings)
}

func (c *Catalog) Action(id uint) (domain.Action, error) {
	a, ok := c.actions[id]
	if !ok {
		return domain.Action{}, domain.NewBusinessRuleError(domain.ErrActionNotFound, "action %d does not exist", id)
	}
	return a, nil
}

func (c *Catalog) PointsOf(id uint) (int, error) {
	a, err := c.Action(id)
	if err != nil {
		return 0, err
	}
	return a.Points, nil
}

func (c *Catalog) KindOf(id uint) (domain.ActionKind, error) {
	if _, err := c.Action(id); err != nil {
		return "", err
	}
	return c.kinds[id], nil
}

func (c *Catalog) PairedMemberAction(compositeID uint) (uint, error) {
	kind, err := c.KindOf(compositeID)
	if err != nil {
		return 0, err
	}
	if kind != domain.ActionComposite {
		return 0, domain.NewBusinessRuleError(domain.ErrCompositeActionMisconfigured, "action %d is a %s action, not composite", compositeID, kind)
	}

	memberID, ok := c.pairs[compositeID]
	if !ok {
		return 0, domain.NewBusinessRuleError(domain.ErrCompositeActionMisconfigured, "composite action %d has no paired member action", compositeID)
	}
	return memberID, nil
}

func (c *Catalog) Len() int {
	return len(c.actions)
}

// Listing groups the snapshot the way GET /events/actions serves it. Actions
// used in a composite pair are listed only as that pair.
func (c *Catalog) Listing() domain.ActionListing {
	l := domain.ActionListing{
		Composite:  []domain.ActionPair{},
		Department: []domain.Action{},
		Member:     []domain.Action{},
		Custom:     []domain.Action{},
	}

	paired := make(map[uint]bool, 2*len(c.order))
	for _, p := range c.order {
		l.Composite = append(l.Composite, domain.ActionPair{
			Department: c.withKind(p.DepartmentActionID),
			Member:     c.withKind(p.MemberActionID),
		})
		paired[p.DepartmentActionID] = true
		paired[p.MemberActionID] = true
	}

	ids := make([]uint, 0, len(c.actions))
	for id := range c.actions {
		if !paired[id] {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		a := c.withKind(id)
		switch a.Kind {
		case domain.ActionDepartment:
			l.Department = append(l.Department, a)
		case domain.ActionMember:
			l.Member = append(l.Member, a)
		case domain.ActionBonus:
			l.Custom = append(l.Custom, a)
		}
	}

	return l
}

func (c *Catalog) withKind(id uint) domain.Action {
	a := c.actions[id]
	a.Kind = c.kinds[id]
	return a
}
