package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func testActions() []domain.Action {
	return []domain.Action{
		{ID: 51, Kind: domain.ActionDepartment, Name: "Organizing an event", Points: 10},
		{ID: 76, Kind: domain.ActionMember, Name: "Organizer of an event", Points: 5},
		{ID: 52, Kind: domain.ActionDepartment, Name: "Organizing a workshop", Points: 8},
		{ID: 3, Kind: domain.ActionDepartment, Name: "Weekly report", Points: 4},
		{ID: 4, Kind: domain.ActionMember, Name: "Attending a session", Points: 2},
		{ID: 9, Kind: domain.ActionBonus, Name: "Extra effort", Points: 1},
		{ID: 10, Kind: domain.ActionBonus, Name: "Late submission", Points: -2},
	}
}

func testCatalog() *Catalog {
	return NewCatalog(testActions(), []Pairing{
		{DepartmentActionID: 51, MemberActionID: 76},
		{DepartmentActionID: 52, MemberActionID: 77},
		{DepartmentActionID: 60, MemberActionID: 61},
	})
}

func TestCatalog_Lookups(t *testing.T) {
	c := testCatalog()

	points, err := c.PointsOf(51)
	require.NoError(t, err)
	assert.Equal(t, 10, points)

	points, err = c.PointsOf(10)
	require.NoError(t, err)
	assert.Equal(t, -2, points)

	kind, err := c.KindOf(51)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionComposite, kind)

	kind, err = c.KindOf(76)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionMember, kind)

	kind, err = c.KindOf(3)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionDepartment, kind)

	memberID, err := c.PairedMemberAction(51)
	require.NoError(t, err)
	assert.Equal(t, uint(76), memberID)
}

func TestCatalog_Failures(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "points of unknown action",
			call:    func() error { _, err := c.PointsOf(999); return err },
			wantErr: domain.ErrActionNotFound,
		},
		{
			name:    "kind of unknown action",
			call:    func() error { _, err := c.KindOf(999); return err },
			wantErr: domain.ErrActionNotFound,
		},
		{
			name:    "pair of unknown action",
			call:    func() error { _, err := c.PairedMemberAction(999); return err },
			wantErr: domain.ErrActionNotFound,
		},
		{
			name:    "pair whose member action is missing",
			call:    func() error { _, err := c.PairedMemberAction(52); return err },
			wantErr: domain.ErrCompositeActionMisconfigured,
		},
		{
			name:    "pair of a plain department action",
			call:    func() error { _, err := c.PairedMemberAction(3); return err },
			wantErr: domain.ErrCompositeActionMisconfigured,
		},
		{
			name:    "pairing with a missing department action is ignored",
			call:    func() error { _, err := c.PairedMemberAction(60); return err },
			wantErr: domain.ErrActionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsBusinessRuleError(err))
		})
	}
}

func TestCatalog_Listing(t *testing.T) {
	l := testCatalog().Listing()

	require.Len(t, l.Composite, 1)
	assert.Equal(t, uint(51), l.Composite[0].Department.ID)
	assert.Equal(t, domain.ActionComposite, l.Composite[0].Department.Kind)
	assert.Equal(t, uint(76), l.Composite[0].Member.ID)

	require.Len(t, l.Department, 1)
	assert.Equal(t, uint(3), l.Department[0].ID)

	require.Len(t, l.Member, 1)
	assert.Equal(t, uint(4), l.Member[0].ID)

	require.Len(t, l.Custom, 2)
	assert.Equal(t, uint(9), l.Custom[0].ID)
	assert.Equal(t, uint(10), l.Custom[1].ID)
}

func TestCatalogFromListing(t *testing.T) {
	c := CatalogFromListing(testCatalog().Listing())

	memberID, err := c.PairedMemberAction(51)
	require.NoError(t, err)
	assert.Equal(t, uint(76), memberID)

	points, err := c.PointsOf(memberID)
	require.NoError(t, err)
	assert.Equal(t, 5, points)

	kind, err := c.KindOf(9)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionBonus, kind)

	_, err = c.PointsOf(52)
	assert.ErrorIs(t, err, domain.ErrActionNotFound)
}
