package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

func roster(participating ...bool) []domain.Organizer {
	out := make([]domain.Organizer, 0, len(participating))
	for i, p := range participating {
		o := domain.Organizer{Name: "member", UniID: string(rune('a' + i))}
		if p {
			o.ParticipationActionID = ptr(uint(76))
		}
		out = append(out, o)
	}
	return out
}

// Bonus and discount land on the department award of a composite action and
// never on the member awards.
func TestResolve_CompositeAdjustsDepartmentOnly(t *testing.T) {
	r := NewResolver(testCatalog())

	awards, err := r.Resolve(Selection{
		Category:     domain.CategoryComposite,
		ActionID:     51,
		DepartmentID: 7,
		Bonus:        3,
		Discount:     1,
		Roster:       roster(true, true),
	})
	require.NoError(t, err)

	require.NotNil(t, awards.Department)
	assert.Equal(t, DepartmentAward{DepartmentID: 7, ActionID: 51, Points: 12}, *awards.Department)
	assert.Equal(t, domain.RowDepartment, awards.Adjusted)

	require.Len(t, awards.Members, 2)
	for _, m := range awards.Members {
		assert.Equal(t, uint(76), m.ActionID)
		assert.Equal(t, 5, m.Points)
	}
}

// The same adjustment on a plain member action lands on every member award.
func TestResolve_MemberActionAdjustsMembers(t *testing.T) {
	r := NewResolver(testCatalog())

	awards, err := r.Resolve(Selection{
		Category: domain.CategoryMember,
		ActionID: 4,
		Bonus:    3,
		Discount: 1,
		Roster:   roster(false, true, false),
	})
	require.NoError(t, err)

	assert.Nil(t, awards.Department)
	assert.Equal(t, domain.RowMember, awards.Adjusted)
	require.Len(t, awards.Members, 3)
	for _, m := range awards.Members {
		assert.Equal(t, uint(4), m.ActionID)
		assert.Equal(t, 2+3-1, m.Points)
	}
}

func TestResolve_DepartmentActionAdjustsDepartment(t *testing.T) {
	r := NewResolver(testCatalog())

	awards, err := r.Resolve(Selection{
		Category:     domain.CategoryDepartment,
		ActionID:     3,
		DepartmentID: 2,
		Discount:     5,
		Roster:       roster(true),
	})
	require.NoError(t, err)

	require.NotNil(t, awards.Department)
	assert.Equal(t, -1, awards.Department.Points)
	assert.Empty(t, awards.Members)
}

func TestResolve_CompositeRoster(t *testing.T) {
	r := NewResolver(testCatalog())

	t.Run("entries without a participation action get nothing", func(t *testing.T) {
		awards, err := r.Resolve(Selection{Category: domain.CategoryComposite, ActionID: 51, DepartmentID: 1, Roster: roster(true, false, true)})
		require.NoError(t, err)
		require.Len(t, awards.Members, 2)
		assert.Equal(t, "a", awards.Members[0].Organizer.UniID)
		assert.Equal(t, "c", awards.Members[1].Organizer.UniID)
	})

	t.Run("a zero participation action counts as none", func(t *testing.T) {
		entries := roster(true, true)
		entries[1].ParticipationActionID = ptr(uint(0))

		awards, err := r.Resolve(Selection{Category: domain.CategoryComposite, ActionID: 51, DepartmentID: 1, Roster: entries})
		require.NoError(t, err)
		require.Len(t, awards.Members, 1)
		assert.Equal(t, "a", awards.Members[0].Organizer.UniID)
	})

	t.Run("empty roster still awards the department", func(t *testing.T) {
		awards, err := r.Resolve(Selection{Category: domain.CategoryComposite, ActionID: 51, DepartmentID: 1})
		require.NoError(t, err)
		require.NotNil(t, awards.Department)
		assert.Equal(t, 10, awards.Department.Points)
		assert.Empty(t, awards.Members)
	})
}

func TestResolve_Failures(t *testing.T) {
	r := NewResolver(testCatalog())

	tests := []struct {
		name           string
		sel            Selection
		wantRule       error
		wantValidation bool
	}{
		{
			name:     "missing paired member action",
			sel:      Selection{Category: domain.CategoryComposite, ActionID: 52, DepartmentID: 1},
			wantRule: domain.ErrCompositeActionMisconfigured,
		},
		{
			name:     "unknown action",
			sel:      Selection{Category: domain.CategoryDepartment, ActionID: 404, DepartmentID: 1},
			wantRule: domain.ErrActionNotFound,
		},
		{
			name:           "action kind does not match the category",
			sel:            Selection{Category: domain.CategoryComposite, ActionID: 3, DepartmentID: 1},
			wantValidation: true,
		},
		{
			name:           "department missing",
			sel:            Selection{Category: domain.CategoryDepartment, ActionID: 3},
			wantValidation: true,
		},
		{
			name:           "negative bonus",
			sel:            Selection{Category: domain.CategoryDepartment, ActionID: 3, DepartmentID: 1, Bonus: -1},
			wantValidation: true,
		},
		{
			name:           "custom category",
			sel:            Selection{Category: domain.CategoryCustomMember, ActionID: 9},
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.sel)
			require.Error(t, err)
			if tt.wantRule != nil {
				assert.ErrorIs(t, err, tt.wantRule)
			}
			assert.Equal(t, tt.wantValidation, domain.IsValidationError(err))
		})
	}
}

func TestReport(t *testing.T) {
	r := NewResolver(testCatalog())
	awards, err := r.Resolve(Selection{Category: domain.CategoryComposite, ActionID: 51, DepartmentID: 7, Bonus: 2, Roster: roster(true, true, true)})
	require.NoError(t, err)

	event := domain.Event{ID: 1, Name: "Hackathon", StartDateTime: at(1, 9, 0), EndDateTime: at(3, 17, 0)}
	report := Report(event, awards, "Programming", DayCount(event.StartDateTime, event.EndDateTime))

	assert.Equal(t, 3, report.Days)
	assert.Equal(t, 3, report.MembersCount)
	assert.Equal(t, 15, report.MembersPoints)
	assert.Equal(t, 36, report.DepartmentPoints)
	assert.Equal(t, "Programming", report.Department)
}
