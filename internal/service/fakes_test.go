package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

func ptr[T any](v T) *T {
	return &v
}

// 2024-03-04 is a Monday.
func day(n, hour int) time.Time {
	return time.Date(2024, time.March, 3+n, hour, 0, 0, 0, time.UTC)
}

func testCatalog() *scoring.Catalog {
	return scoring.NewCatalog([]domain.Action{
		{ID: 3, Kind: domain.ActionDepartment, Name: "Weekly report", Points: 4},
		{ID: 4, Kind: domain.ActionMember, Name: "Attending a meeting", Points: 2},
		{ID: 51, Kind: domain.ActionDepartment, Name: "Organizing an event", Points: 10},
		{ID: 76, Kind: domain.ActionMember, Name: "Organizer of an event", Points: 5},
	}, []scoring.Pairing{{DepartmentActionID: 51, MemberActionID: 76}})
}

type fakeCatalog struct {
	catalog *scoring.Catalog
	err     error
}

func (f fakeCatalog) Catalog(context.Context) (*scoring.Catalog, error) {
	return f.catalog, f.err
}

type fakeActionRepo struct {
	actions []domain.Action
	calls   int
}

func (f *fakeActionRepo) FindAll(context.Context) ([]domain.Action, error) {
	f.calls++
	return f.actions, nil
}

type fakeEventRepo struct {
	mu       sync.Mutex
	events   map[uint]domain.Event
	nextID   uint
	composed []repository.NewEventAwards
	// conflictOn makes UpdateStatus fail as if another request changed the
	// event first.
	conflictOn map[uint]bool
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{events: make(map[uint]domain.Event), nextID: 100, conflictOn: make(map[uint]bool)}
	for _, e := range events {
		f.events[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.events {
		if e.Name == event.Name {
			return domain.Event{}, domain.NewBusinessRuleError(domain.ErrEventNameTaken, "%q", event.Name)
		}
	}
	f.nextID++
	event.ID = f.nextID
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) FindVisible(context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Event
	for _, e := range f.events {
		if !e.IsHidden() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateStatus(_ context.Context, event domain.Event, from domain.EventStatus) (domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.events[event.ID]
	if !ok || stored.Status != from || f.conflictOn[event.ID] {
		return domain.Event{}, repository.ErrEventNotFound
	}
	stored.Status = event.Status
	stored.ClosedAt = event.ClosedAt
	f.events[event.ID] = stored
	return stored, nil
}

func (f *fakeEventRepo) FindOpenStartedBefore(_ context.Context, t time.Time) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Event
	for _, e := range f.events {
		if e.Status == domain.EventOpen && !e.StartDateTime.After(t) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) CreateWithAwards(ctx context.Context, in repository.NewEventAwards) (domain.Event, error) {
	created, err := f.Create(ctx, in.Event)
	if err != nil {
		return domain.Event{}, err
	}
	f.mu.Lock()
	f.composed = append(f.composed, in)
	f.mu.Unlock()
	return created, nil
}

type fakeDepartments map[uint]domain.Department

func (f fakeDepartments) FindDepartmentByID(_ context.Context, id uint) (domain.Department, error) {
	d, ok := f[id]
	if !ok {
		return domain.Department{}, repository.ErrDepartmentNotFound
	}
	return d, nil
}

type fakeMembers map[uint]domain.Member

func (f fakeMembers) FindByID(_ context.Context, id uint) (domain.Member, error) {
	m, ok := f[id]
	if !ok {
		return domain.Member{}, repository.ErrMemberNotFound
	}
	return m, nil
}

type fakeCertificates struct {
	job   domain.CertificateJob
	err   error
	calls int
}

func (f *fakeCertificates) Send(context.Context, domain.Event) (domain.CertificateJob, error) {
	f.calls++
	return f.job, f.err
}

// fakePointDetails stores rows in memory and fails updates of the log ids
// listed in failUpdates.
type fakePointDetails struct {
	mu            sync.Mutex
	rows          map[uint]domain.PointDetailRow
	nextID        uint
	failUpdates   map[uint]error
	failCreates   error
	updateCalls   int32
	createCalls   int32
	inFlight      int32
	maxInFlight   int32
	updateLatency time.Duration
}

func newFakePointDetails(rows ...domain.PointDetailRow) *fakePointDetails {
	f := &fakePointDetails{rows: make(map[uint]domain.PointDetailRow), nextID: 1000, failUpdates: make(map[uint]error)}
	for _, r := range rows {
		f.rows[*r.Log()] = r
	}
	return f
}

func (f *fakePointDetails) FindByEvent(context.Context, uint) ([]domain.PointDetailRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.PointDetailRow, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.rows[id])
	}
	return out, nil
}

func (f *fakePointDetails) FindRow(_ context.Context, logID uint, rowType domain.RowType) (domain.PointDetailRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[logID]
	if !ok || r.Type() != rowType {
		return nil, repository.ErrLogNotFound
	}
	return r, nil
}

func (f *fakePointDetails) CreateDepartmentRows(_ context.Context, _ uint, rows []domain.DepartmentRow) ([]domain.DepartmentRow, error) {
	atomic.AddInt32(&f.createCalls, 1)
	if f.failCreates != nil {
		return nil, f.failCreates
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.DepartmentRow, 0, len(rows))
	for _, r := range rows {
		f.nextID++
		r.LogID = ptr(f.nextID)
		f.rows[f.nextID] = r
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePointDetails) CreateMemberRows(_ context.Context, _ uint, rows []domain.MemberRow) ([]domain.MemberRow, error) {
	atomic.AddInt32(&f.createCalls, 1)
	if f.failCreates != nil {
		return nil, f.failCreates
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.MemberRow, 0, len(rows))
	for _, r := range rows {
		f.nextID++
		r.LogID = ptr(f.nextID)
		f.rows[f.nextID] = r
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePointDetails) Update(_ context.Context, row domain.PointDetailRow, _ scoring.Patch) (domain.PointDetailRow, error) {
	atomic.AddInt32(&f.updateCalls, 1)
	n := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&f.maxInFlight)
		if n <= peak || atomic.CompareAndSwapInt32(&f.maxInFlight, peak, n) {
			break
		}
	}
	time.Sleep(f.updateLatency)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failUpdates[*row.Log()]; err != nil {
		return nil, err
	}
	f.rows[*row.Log()] = row
	return row, nil
}

type fakeAttendanceRepo struct {
	records []domain.AttendanceRecord
	scans   []domain.Scan
	err     error
}

func (f *fakeAttendanceRepo) Record(_ context.Context, scan domain.Scan) (domain.Scan, error) {
	for _, s := range f.scans {
		if s.MemberID == scan.MemberID && scoring.DateOnly(s.ScannedAt).Equal(scoring.DateOnly(scan.ScannedAt)) {
			return domain.Scan{}, domain.NewBusinessRuleError(domain.ErrAlreadyAttended, "member %d", scan.MemberID)
		}
	}
	f.scans = append(f.scans, scan)
	return scan, nil
}

func (f *fakeAttendanceRepo) FindByEvent(context.Context, uint) ([]domain.AttendanceRecord, error) {
	return f.records, f.err
}

type fakePublisher struct {
	published []domain.CertificateRequest
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, req domain.CertificateRequest) (string, error) {
	f.published = append(f.published, req)
	return fmt.Sprintf("7f1d2c9e-0000-4000-8000-%012d", len(f.published)), f.err
}

type fakeJobs struct {
	jobs []domain.CertificateJob
}

func (f *fakeJobs) Create(_ context.Context, job domain.CertificateJob, _ domain.CertificateRequest) (domain.CertificateJob, error) {
	f.jobs = append(f.jobs, job)
	return job, nil
}

func (f *fakeJobs) FindByEvent(_ context.Context, eventID uint) ([]domain.CertificateJob, error) {
	var out []domain.CertificateJob
	for i := len(f.jobs) - 1; i >= 0; i-- {
		if f.jobs[i].EventID == eventID {
			out = append(out, f.jobs[i])
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")
