package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/service"
)

func ptr[T any](v T) *T {
	return &v
}

type fakeActions struct {
	listing domain.ActionListing
	err     error
}

func (f *fakeActions) Listing(context.Context) (domain.ActionListing, error) {
	return f.listing, f.err
}

type fakeEvents struct {
	err         error
	closeResult service.CloseResult
	closedWith  *bool
	composite   *service.CompositeInput
	report      domain.EventReport
}

func (f *fakeEvents) Create(_ context.Context, e domain.Event) (domain.Event, error) {
	e.ID = 1
	e.Status = domain.EventDraft
	return e, f.err
}

func (f *fakeEvents) Get(_ context.Context, id uint) (domain.Event, error) {
	return domain.Event{ID: id}, f.err
}

func (f *fakeEvents) List(context.Context) ([]domain.Event, error) {
	return []domain.Event{{ID: 1}}, f.err
}

func (f *fakeEvents) Open(_ context.Context, id uint) (domain.Event, error) {
	return domain.Event{ID: id, Status: domain.EventOpen}, f.err
}

func (f *fakeEvents) Activate(_ context.Context, id uint) (domain.Event, error) {
	return domain.Event{ID: id, Status: domain.EventActive}, f.err
}

func (f *fakeEvents) Close(_ context.Context, _ uint, withCertificates bool) (service.CloseResult, error) {
	f.closedWith = &withCertificates
	return f.closeResult, f.err
}

func (f *fakeEvents) CreateComposite(_ context.Context, in service.CompositeInput) (domain.EventReport, error) {
	f.composite = &in
	return f.report, f.err
}

type fakeCertificates struct {
	job domain.CertificateJob
	err error
}

func (f *fakeCertificates) SendForEvent(context.Context, uint) (domain.CertificateJob, error) {
	return f.job, f.err
}

func (f *fakeCertificates) Jobs(context.Context, uint) ([]domain.CertificateJob, error) {
	return []domain.CertificateJob{f.job}, f.err
}

type fakePointDetails struct {
	rows    []domain.PointDetailRow
	updated domain.PointDetailRow
	result  service.ApplyResult
	err     error
}

func (f *fakePointDetails) List(context.Context, uint) ([]domain.PointDetailRow, error) {
	return f.rows, f.err
}

func (f *fakePointDetails) CreateDepartmentRows(_ context.Context, _ uint, rows []domain.DepartmentRow) ([]domain.DepartmentRow, error) {
	for i := range rows {
		rows[i].LogID = ptr(uint(i + 1))
	}
	return rows, f.err
}

func (f *fakePointDetails) CreateMemberRows(_ context.Context, _ uint, rows []domain.MemberRow) ([]domain.MemberRow, error) {
	return rows, f.err
}

func (f *fakePointDetails) UpdateRow(_ context.Context, row domain.PointDetailRow) (domain.PointDetailRow, error) {
	f.updated = row
	return row, f.err
}

func (f *fakePointDetails) Submit(_ context.Context, _ uint, current []domain.PointDetailRow) (service.ApplyResult, error) {
	f.rows = current
	return f.result, f.err
}

type fakeAttendance struct {
	filter  scoring.DayFilter
	records []domain.AttendanceRecord
	err     error
}

func (f *fakeAttendance) Record(_ context.Context, eventID, memberID uint) (domain.Scan, error) {
	return domain.Scan{EventID: eventID, MemberID: memberID}, f.err
}

func (f *fakeAttendance) Attendance(_ context.Context, _ uint, filter scoring.DayFilter) ([]domain.AttendanceRecord, error) {
	f.filter = filter
	return f.records, f.err
}

type fixture struct {
	actions      *fakeActions
	events       *fakeEvents
	certificates *fakeCertificates
	pointDetails *fakePointDetails
	attendance   *fakeAttendance
	router       *gin.Engine
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	f := &fixture{
		actions:      &fakeActions{},
		events:       &fakeEvents{},
		certificates: &fakeCertificates{},
		pointDetails: &fakePointDetails{},
		attendance:   &fakeAttendance{},
		router:       gin.New(),
	}

	actions := NewActionHandler(f.actions)
	events := NewEventHandler(f.events, f.certificates)
	pointDetails := NewPointDetailHandler(f.pointDetails)
	attendance := NewAttendanceHandler(f.attendance)

	r := f.router
	r.GET("/", HandleHealthcheck)
	r.GET("/events", events.HandleGetEvents)
	r.POST("/events", events.HandleCreateEvent)
	r.GET("/events/actions", actions.HandleGetActions)
	r.POST("/events/composite", events.HandleCreateCompositeEvent)
	r.GET("/events/:eventID", events.HandleGetEvent)
	r.POST("/events/:eventID/open", events.HandleOpenEvent)
	r.POST("/events/:eventID/close", events.HandleCloseEvent)
	r.POST("/events/:eventID/certificates", events.HandleSendCertificates)
	r.GET("/events/:eventID/attendance", attendance.HandleGetAttendance)
	r.POST("/events/:eventID/attendance", attendance.HandleRecordAttendance)
	r.PUT("/events/:eventID/point-details", pointDetails.HandleSubmitPointDetails)
	r.POST("/events/:eventID/point-details/department", pointDetails.HandleCreateDepartmentRows)
	r.PATCH("/point-details/member/:logID", pointDetails.HandleUpdateMemberRow)
	r.POST("/wizard/advance", HandleWizardAdvance)
	r.POST("/wizard/check", HandleWizardCheck)

	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func validEvent() map[string]any {
	return map[string]any{
		"name":           "Hackathon",
		"location_type":  "on-site",
		"start_datetime": time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		"end_datetime":   time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC),
	}
}

func TestHandleHealthcheck(t *testing.T) {
	w := newFixture().do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: domain.NewValidationError("name", "is required"), want: http.StatusUnprocessableEntity},
		{name: "business rule", err: domain.NewBusinessRuleError(domain.ErrIllegalTransition, "nope"), want: http.StatusBadRequest},
		{name: "not found", err: service.ErrEventNotFound, want: http.StatusNotFound},
		{name: "network", err: &service.NetworkError{Op: "s.repo.FindByID", Err: &net.OpError{Op: "dial", Err: errors.New("refused")}}, want: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.events.err = tt.err

			w := f.do(t, http.MethodPost, "/events/3/open", nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestInternalErrorsAreHidden(t *testing.T) {
	f := newFixture()
	f.events.err = errors.New("pq: password authentication failed")

	w := f.do(t, http.MethodGet, "/events/3", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestInvalidID(t *testing.T) {
	f := newFixture()

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/events/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/events/0", nil).Code)
}

func TestHandleGetActions(t *testing.T) {
	f := newFixture()
	f.actions.listing = domain.ActionListing{
		Composite: []domain.ActionPair{{
			Department: domain.Action{ID: 51, Kind: domain.ActionComposite, Points: 10},
			Member:     domain.Action{ID: 76, Kind: domain.ActionMember, Points: 5},
		}},
	}

	w := f.do(t, http.MethodGet, "/events/actions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[domain.ActionListing](t, w)
	assert.Equal(t, f.actions.listing.Composite, got.Composite)
}

func TestHandleCreateEvent(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/events", validEvent())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Hackathon", decode[domain.Event](t, w).Name)

	bad := validEvent()
	bad["location_type"] = "moon"
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events", bad).Code)

	inverted := validEvent()
	inverted["end_datetime"] = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events", inverted).Code)

	f.events.err = domain.NewBusinessRuleError(domain.ErrEventNameTaken, "Hackathon")
	w = f.do(t, http.MethodPost, "/events", validEvent())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestHandleCreateCompositeEvent(t *testing.T) {
	body := map[string]any{
		"event_info":         validEvent(),
		"category":           "composite",
		"action_id":          51,
		"department_id":      2,
		"bonus":              3,
		"discount":           1,
		"members_attendance": "https://docs.google.com/spreadsheets/d/e/2PACX/pub?gid=1&single=true&output=csv",
		"organizers": []map[string]any{
			{"name": "Sara", "uni_id": "441001", "gender": "Female", "participation_action_id": 76, "attendance": []string{"present", "absent"}},
		},
	}

	t.Run("created", func(t *testing.T) {
		f := newFixture()
		f.events.report = domain.EventReport{Days: 2, MembersCount: 1, MembersPoints: 10, DepartmentPoints: 24}

		w := f.do(t, http.MethodPost, "/events/composite", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 24, decode[domain.EventReport](t, w).DepartmentPoints)

		require.NotNil(t, f.events.composite)
		sel := f.events.composite.Selection
		assert.Equal(t, domain.CategoryComposite, sel.Category)
		assert.Equal(t, 3, sel.Bonus)
		assert.Equal(t, 1, sel.Discount)
		require.Len(t, sel.Roster, 1)
		assert.Equal(t, []domain.AttendanceMark{domain.Present, domain.Absent}, sel.Roster[0].Attendance)
		assert.Equal(t, uint(76), *sel.Roster[0].ParticipationActionID)
	})

	t.Run("roster link must export csv", func(t *testing.T) {
		f := newFixture()
		bad := map[string]any{}
		for k, v := range body {
			bad[k] = v
		}
		bad["members_attendance"] = "https://docs.google.com/spreadsheets/d/e/2PACX/pubhtml"

		w := f.do(t, http.MethodPost, "/events/composite", bad)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, f.events.composite)
	})

	t.Run("attendance of the wrong length", func(t *testing.T) {
		f := newFixture()
		f.events.err = domain.NewValidationError("organizers[0].attendance", "expected 2 marks, got 1")

		w := f.do(t, http.MethodPost, "/events/composite", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "organizers[0].attendance")
	})
}

func TestHandleCloseEvent(t *testing.T) {
	f := newFixture()
	f.events.closeResult = service.CloseResult{
		Event:   domain.Event{ID: 3, Status: domain.EventClosed},
		Warning: "s.publisher.Publish: network error: dial tcp: connection refused",
	}

	w := f.do(t, http.MethodPost, "/events/3/close?certificates=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.events.closedWith)
	assert.True(t, *f.events.closedWith)

	got := decode[service.CloseResult](t, w)
	assert.Equal(t, domain.EventClosed, got.Event.Status)
	assert.NotEmpty(t, got.Warning)

	w = f.do(t, http.MethodPost, "/events/3/close", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, *f.events.closedWith)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events/3/close?certificates=maybe", nil).Code)
}

func TestHandleSendCertificates(t *testing.T) {
	f := newFixture()
	f.certificates.job = domain.CertificateJob{ID: "job-1", Status: domain.CertificateJobPublished}

	w := f.do(t, http.MethodPost, "/events/3/certificates", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "job-1", decode[domain.CertificateJob](t, w).ID)

	f.certificates.err = domain.NewBusinessRuleError(domain.ErrEventNotClosed, "event 3 is active")
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events/3/certificates", nil).Code)
}

func TestHandleGetAttendance(t *testing.T) {
	f := newFixture()
	f.attendance.records = []domain.AttendanceRecord{
		{
			Member: domain.Member{ID: 1, Name: "Sara"},
			Dates:  []time.Time{time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)},
			Days:   []int{2},
		},
	}

	w := f.do(t, http.MethodGet, "/events/3/attendance?day=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, scoring.SpecificDay(2), f.attendance.filter)
	assert.JSONEq(t, `{
		"attendance_count": 1,
		"attendance": [{"Member": {"id": 1, "name": "Sara", "email": "", "phone_number": "", "uni_id": "", "gender": "",
			"created_at": "0001-01-01T00:00:00Z", "updated_at": "0001-01-01T00:00:00Z"}, "dates": ["2024-03-05"]}]
	}`, w.Body.String())

	w = f.do(t, http.MethodGet, "/events/3/attendance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, scoring.AllDays, f.attendance.filter)

	assert.Equal(t, http.StatusUnprocessableEntity, f.do(t, http.MethodGet, "/events/3/attendance?day=tuesday", nil).Code)

	f.attendance.err = domain.NewValidationError("day", "Day 4 is out of range. Event has 3 day(s).")
	w = f.do(t, http.MethodGet, "/events/3/attendance?day=4", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "out of range")
}

func TestHandleRecordAttendance(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/events/3/attendance", map[string]any{"member_id": 9})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, domain.Scan{EventID: 3, MemberID: 9}, decode[domain.Scan](t, w))

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events/3/attendance", map[string]any{}).Code)

	f.attendance.err = domain.NewBusinessRuleError(domain.ErrAttendanceNotAllowed, "event 3 is closed")
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events/3/attendance", map[string]any{"member_id": 9}).Code)
}

func TestHandleCreateDepartmentRows(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/events/3/point-details/department", map[string]any{
		"rows": []map[string]any{{"log_id": 99, "department_ids": []uint{1, 2}, "points": 4, "action_id": 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	rows := decode[[]domain.DepartmentRow](t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(1), *rows[0].LogID)
	assert.Equal(t, []uint{1, 2}, rows[0].DepartmentIDs)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/events/3/point-details/department", map[string]any{"rows": []any{}}).Code)
}

func TestHandleUpdateMemberRow(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPatch, "/point-details/member/7", map[string]any{
		"log_id": 1, "member_ids": []uint{10, 11}, "points": 5, "action_id": 76,
	})
	require.Equal(t, http.StatusOK, w.Code)

	row, ok := f.pointDetails.updated.(domain.MemberRow)
	require.True(t, ok)
	assert.Equal(t, uint(7), *row.LogID)
	assert.Equal(t, []uint{10, 11}, row.MemberIDs)

	f.pointDetails.err = service.ErrLogNotFound
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPatch, "/point-details/member/7", map[string]any{"points": 1}).Code)
}

func TestHandleSubmitPointDetails(t *testing.T) {
	body := map[string]any{
		"department": []map[string]any{{"log_id": 1, "department_ids": []uint{2}, "points": 10, "action_id": 51}},
		"member":     []map[string]any{{"member_ids": []uint{30}, "points": 1, "action_name": "Cleanup"}},
	}

	t.Run("all applied", func(t *testing.T) {
		f := newFixture()
		f.pointDetails.result = service.ApplyResult{Total: 2, Succeeded: 2}

		w := f.do(t, http.MethodPut, "/events/3/point-details", body)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, f.pointDetails.rows, 2)
		assert.Equal(t, domain.RowDepartment, f.pointDetails.rows[0].Type())
		assert.Equal(t, domain.RowMember, f.pointDetails.rows[1].Type())
		assert.Nil(t, f.pointDetails.rows[1].Log())
	})

	t.Run("partial failure", func(t *testing.T) {
		f := newFixture()
		f.pointDetails.result = service.ApplyResult{
			Total:     2,
			Succeeded: 1,
			Created:   []domain.PointDetailRow{domain.MemberRow{LogID: ptr(uint(8)), MemberIDs: []uint{30}}},
		}
		f.pointDetails.err = fmt.Errorf("s.Apply -> %w", &service.PartialFailure{
			Total:  2,
			Failed: []service.OperationError{{Op: "update", LogID: ptr(uint(1)), Err: errors.New("deadlock detected")}},
		})

		w := f.do(t, http.MethodPut, "/events/3/point-details", body)
		require.Equal(t, http.StatusMultiStatus, w.Code)

		got := decode[map[string]any](t, w)
		assert.EqualValues(t, 1, got["succeeded"])
		failed := got["failed"].([]any)
		require.Len(t, failed, 1)
		assert.EqualValues(t, 1, failed[0].(map[string]any)["log_id"])
	})

	t.Run("empty snapshot", func(t *testing.T) {
		f := newFixture()
		assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPut, "/events/3/point-details", map[string]any{}).Code)
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture()
		f.pointDetails.err = domain.ValidationErrors{domain.NewValidationError("rows[0].points", "must be 10")}
		assert.Equal(t, http.StatusUnprocessableEntity, f.do(t, http.MethodPut, "/events/3/point-details", body).Code)
	})
}

func TestWizard(t *testing.T) {
	f := newFixture()

	w := f.do(t, http.MethodPost, "/wizard/advance", scoring.WizardState{Category: domain.CategoryComposite, Step: 1, ActionID: ptr(uint(51))})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decode[scoring.WizardState](t, w).Step)

	w = f.do(t, http.MethodPost, "/wizard/advance", scoring.WizardState{Category: domain.CategoryComposite, Step: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "action_id")

	w = f.do(t, http.MethodPost, "/wizard/check", scoring.WizardState{Category: domain.CategoryDepartment, Step: 3})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
