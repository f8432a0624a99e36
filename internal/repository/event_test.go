package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type fakeEventDAO struct {
	inserted []dao.Log
	err      error
}

func (f *fakeEventDAO) Insert(_ context.Context, event dao.Event) (dao.Event, error) {
	if f.err != nil {
		return dao.Event{}, f.err
	}
	event.ID = 1
	return event, nil
}

func (f *fakeEventDAO) FindByID(context.Context, uint) (dao.Event, error) {
	return dao.Event{}, dao.ErrEventNotFound
}

func (f *fakeEventDAO) UpdateStatus(_ context.Context, event dao.Event, _ string) (dao.Event, error) {
	return event, nil
}

func (f *fakeEventDAO) FindVisible(context.Context) ([]dao.Event, error) {
	return nil, nil
}

func (f *fakeEventDAO) FindOpenStartedBefore(context.Context, time.Time) ([]dao.Event, error) {
	return nil, nil
}

func (f *fakeEventDAO) InsertWithLogs(_ context.Context, event dao.Event, logs []dao.Log) (dao.Event, []dao.Log, error) {
	if f.err != nil {
		return dao.Event{}, nil, f.err
	}
	f.inserted = logs
	event.ID = 1
	return event, logs, nil
}

func ptr[T any](v T) *T {
	return &v
}

func TestEventRepository_CreateWithAwards_CompositeAdjustsDepartmentLog(t *testing.T) {
	d := &fakeEventDAO{}
	repo := NewEventRepository(d)
	start := time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

	event, err := repo.CreateWithAwards(context.Background(), NewEventAwards{
		Event: domain.Event{Name: "Hackathon", StartDateTime: start, EndDateTime: start.Add(48 * time.Hour)},
		Awards: scoring.Awards{
			Department: &scoring.DepartmentAward{DepartmentID: 7, ActionID: 51, Points: 12},
			Members: []scoring.MemberAward{
				{Organizer: domain.Organizer{UniID: "u1", Attendance: []domain.AttendanceMark{domain.Present, domain.Absent, domain.Absent}}, ActionID: 76, Points: 5},
				{Organizer: domain.Organizer{UniID: "u2", Attendance: []domain.AttendanceMark{domain.Present, domain.Present, domain.Present}}, ActionID: 76, Points: 5},
			},
			Adjusted: domain.RowDepartment,
		},
		Bonus:    3,
		Discount: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), event.ID)

	require.Len(t, d.inserted, 2)

	department := d.inserted[0]
	assert.Equal(t, 10, department.Points)
	assert.Equal(t, []dao.DepartmentLog{{DepartmentID: 7}}, department.Departments)
	assert.Equal(t, []dao.Modification{{Type: "bonus", Value: 3}, {Type: "discount", Value: 1}}, department.Modifications)

	members := d.inserted[1]
	assert.Equal(t, 5, members.Points)
	assert.Equal(t, uint(76), *members.ActionID)
	assert.Empty(t, members.Modifications)
	require.Len(t, members.Members, 2)
	assert.Equal(t, "u1", members.Members[0].Member.UniID)
	assert.Equal(t, []dao.Absence{{Date: start.Add(24 * time.Hour)}, {Date: start.Add(48 * time.Hour)}}, members.Members[0].Absences)
	assert.Empty(t, members.Members[1].Absences)
}

func TestEventRepository_CreateWithAwards_MemberActionAdjustsMemberLog(t *testing.T) {
	d := &fakeEventDAO{}
	repo := NewEventRepository(d)

	_, err := repo.CreateWithAwards(context.Background(), NewEventAwards{
		Event: domain.Event{Name: "Meeting"},
		Awards: scoring.Awards{
			Members:  []scoring.MemberAward{{Organizer: domain.Organizer{UniID: "u1"}, ActionID: 4, Points: 3}},
			Adjusted: domain.RowMember,
		},
		Bonus: 1,
	})
	require.NoError(t, err)

	require.Len(t, d.inserted, 1)
	assert.Equal(t, 2, d.inserted[0].Points)
	assert.Equal(t, []dao.Modification{{Type: "bonus", Value: 1}}, d.inserted[0].Modifications)
}

func TestEventRepository_NameTaken(t *testing.T) {
	repo := NewEventRepository(&fakeEventDAO{err: dao.ErrEventNameExists})

	_, err := repo.Create(context.Background(), domain.Event{Name: "Hackathon"})
	assert.ErrorIs(t, err, domain.ErrEventNameTaken)

	_, err = repo.CreateWithAwards(context.Background(), NewEventAwards{Event: domain.Event{Name: "Hackathon"}})
	assert.ErrorIs(t, err, domain.ErrEventNameTaken)
	assert.True(t, domain.IsBusinessRuleError(err))
}
