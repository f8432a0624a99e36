package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

func compositeRequest(link string) CompositeEventRequest {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	return CompositeEventRequest{
		Event: EventRequest{
			Name:          "Hackathon",
			LocationType:  "on-site",
			StartDateTime: start,
			EndDateTime:   start.Add(32 * time.Hour),
		},
		Category:     "composite",
		ActionID:     51,
		DepartmentID: 2,
		RosterLink:   link,
		Organizers: []OrganizerRequest{
			{Name: "Sara", UniID: "441001", Gender: "Female", Attendance: []string{"present", "absent"}},
		},
	}
}

func TestCompositeEventRequest_RosterLink(t *testing.T) {
	tests := []struct {
		link    string
		wantErr bool
	}{
		{link: ""},
		{link: "https://docs.google.com/spreadsheets/d/e/2PACX/pub?gid=1&single=true&output=csv"},
		{link: "https://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csv&gid=1"},
		{link: "https://docs.google.com/spreadsheets/d/e/2PACX/pubhtml", wantErr: true},
		{link: "https://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csvx", wantErr: true},
		{link: "https://example.com/sheet.csv?output=csv", wantErr: true},
		{link: "http://docs.google.com/spreadsheets/d/e/2PACX/pub?output=csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			req := compositeRequest(tt.link)
			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidRosterLink)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCompositeEventRequest_Validate(t *testing.T) {
	req := compositeRequest("")
	req.Bonus = -1
	assert.Error(t, req.Validate())

	req = compositeRequest("")
	req.Category = "custom_member"
	assert.Error(t, req.Validate())

	req = compositeRequest("")
	req.Organizers[0].UniID = ""
	assert.Error(t, req.Validate())

	req = compositeRequest("")
	req.Event.EndDateTime = req.Event.StartDateTime.Add(-time.Hour)
	assert.Error(t, req.Validate())
}

func TestCompositeEventRequest_ToDomain(t *testing.T) {
	req := compositeRequest("")
	req.Bonus, req.Discount = 3, 1

	event, sel := req.ToDomain()
	assert.Equal(t, "Hackathon", event.Name)
	assert.Equal(t, domain.LocationOnSite, event.LocationType)
	assert.Equal(t, domain.CategoryComposite, sel.Category)
	assert.Equal(t, uint(51), sel.ActionID)
	assert.Equal(t, 3, sel.Bonus)
	require.Len(t, sel.Roster, 1)
	assert.Equal(t, domain.GenderFemale, sel.Roster[0].Gender)
	assert.Equal(t, []domain.AttendanceMark{domain.Present, domain.Absent}, sel.Roster[0].Attendance)
}

func TestSubmitPointDetailsRequest_ToDomain(t *testing.T) {
	logID := uint(4)
	req := SubmitPointDetailsRequest{
		Department: []DepartmentRowRequest{{LogID: &logID, DepartmentIDs: []uint{1}, AwardRequest: AwardRequest{Points: 4}}},
		Member:     []MemberRowRequest{{MemberIDs: []uint{9}, AwardRequest: AwardRequest{Points: 2}}},
	}
	require.NoError(t, req.Validate())

	rows := req.ToDomain()
	require.Len(t, rows, 2)
	assert.Equal(t, domain.DepartmentRow{LogID: &logID, DepartmentIDs: []uint{1}, Award: domain.Award{Points: 4}}, rows[0])
	assert.Equal(t, domain.RowMember, rows[1].Type())

	assert.Error(t, (&SubmitPointDetailsRequest{}).Validate())
}

func TestOrganizerRequest_ParticipationAction(t *testing.T) {
	zero, paired := uint(0), uint(76)
	organizer := OrganizerRequest{Name: "Sara", UniID: "441001", Gender: "Female"}

	assert.NoError(t, organizer.Validate())

	organizer.ParticipationActionID = &paired
	assert.NoError(t, organizer.Validate())

	organizer.ParticipationActionID = &zero
	err := organizer.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "participation_action_id")
}
