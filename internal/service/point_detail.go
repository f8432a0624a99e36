package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type PointDetailRepository interface {
	FindByEvent(ctx context.Context, eventID uint) ([]domain.PointDetailRow, error)
	FindRow(ctx context.Context, logID uint, rowType domain.RowType) (domain.PointDetailRow, error)
	CreateDepartmentRows(ctx context.Context, eventID uint, rows []domain.DepartmentRow) ([]domain.DepartmentRow, error)
	CreateMemberRows(ctx context.Context, eventID uint, rows []domain.MemberRow) ([]domain.MemberRow, error)
	Update(ctx context.Context, row domain.PointDetailRow, patch scoring.Patch) (domain.PointDetailRow, error)
}

type EventFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type CatalogProvider interface {
	Catalog(ctx context.Context) (*scoring.Catalog, error)
}

// ApplyResult counts the operations issued for a plan.
type ApplyResult struct {
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Updated   []domain.PointDetailRow `json:"updated"`
	Created   []domain.PointDetailRow `json:"created"`
}

type PointDetailService struct {
	repo        PointDetailRepository
	events      EventFinder
	catalog     CatalogProvider
	concurrency int
}

func NewPointDetailService(repo PointDetailRepository, events EventFinder, catalog CatalogProvider, concurrency int) *PointDetailService {
	if concurrency < 1 {
		concurrency = 1
	}

	return &PointDetailService{
		repo:        repo,
		events:      events,
		catalog:     catalog,
		concurrency: concurrency,
	}
}

func (s *PointDetailService) List(ctx context.Context, eventID uint) ([]domain.PointDetailRow, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, classify("s.events.FindByID", err)
	}

	rows, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, classify("s.repo.FindByEvent", err)
	}

	return rows, nil
}

func (s *PointDetailService) CreateDepartmentRows(ctx context.Context, eventID uint, rows []domain.DepartmentRow) ([]domain.DepartmentRow, error) {
	generic := make([]domain.PointDetailRow, 0, len(rows))
	for _, r := range rows {
		generic = append(generic, r)
	}
	if err := s.prepare(ctx, eventID, generic); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateDepartmentRows(ctx, eventID, rows)
	if err != nil {
		return nil, classify("s.repo.CreateDepartmentRows", err)
	}

	return created, nil
}

func (s *PointDetailService) CreateMemberRows(ctx context.Context, eventID uint, rows []domain.MemberRow) ([]domain.MemberRow, error) {
	generic := make([]domain.PointDetailRow, 0, len(rows))
	for _, r := range rows {
		generic = append(generic, r)
	}
	if err := s.prepare(ctx, eventID, generic); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateMemberRows(ctx, eventID, rows)
	if err != nil {
		return nil, classify("s.repo.CreateMemberRows", err)
	}

	return created, nil
}

// UpdateRow writes the edited version of one persisted row. An edit that
// changes nothing issues no write.
func (s *PointDetailService) UpdateRow(ctx context.Context, row domain.PointDetailRow) (domain.PointDetailRow, error) {
	if row.Log() == nil {
		return nil, domain.NewValidationError("log_id", "is required")
	}

	persisted, err := s.repo.FindRow(ctx, *row.Log(), row.Type())
	if err != nil {
		return nil, classify("s.repo.FindRow", err)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.catalog.Catalog -> %w", err)
	}
	if err := scoring.ValidateRows([]domain.PointDetailRow{row}, catalog); err != nil {
		return nil, err
	}

	patch := scoring.Diff(persisted, row)
	if patch.Empty() {
		return persisted, nil
	}

	updated, err := s.repo.Update(ctx, row, patch)
	if err != nil {
		return nil, classify("s.repo.Update", err)
	}

	return updated, nil
}

// Submit reconciles an edited snapshot of an event's rows against the stored
// one and applies the resulting plan. Rows missing from current are kept.
func (s *PointDetailService) Submit(ctx context.Context, eventID uint, current []domain.PointDetailRow) (ApplyResult, error) {
	if err := s.prepare(ctx, eventID, current); err != nil {
		return ApplyResult{}, err
	}

	initial, err := s.repo.FindByEvent(ctx, eventID)
	if err != nil {
		return ApplyResult{}, classify("s.repo.FindByEvent", err)
	}

	plan, err := scoring.Reconcile(initial, current)
	if err != nil {
		return ApplyResult{}, err
	}

	return s.Apply(ctx, eventID, plan)
}

// Apply issues every operation of plan and waits for all of them. Updates
// run concurrently up to the configured limit; department and member
// creates are one call each. Failures are collected into a PartialFailure
// and nothing that succeeded is undone.
func (s *PointDetailService) Apply(ctx context.Context, eventID uint, plan scoring.Plan) (ApplyResult, error) {
	var (
		mu     sync.Mutex
		result ApplyResult
		failed []OperationError
	)
	record := func(op string, logID *uint, err error, rows ...domain.PointDetailRow) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			failed = append(failed, OperationError{Op: op, LogID: logID, Err: err})
			return
		}
		result.Succeeded++
		if op == "update" {
			result.Updated = append(result.Updated, rows...)
		} else {
			result.Created = append(result.Created, rows...)
		}
	}

	creates := new(errgroup.Group)

	if len(plan.DepartmentCreates) > 0 {
		result.Total++
		creates.Go(func() error {
			created, err := s.repo.CreateDepartmentRows(ctx, eventID, plan.DepartmentCreates)
			rows := make([]domain.PointDetailRow, 0, len(created))
			for _, r := range created {
				rows = append(rows, r)
			}
			record("create department rows", nil, classify("s.repo.CreateDepartmentRows", err), rows...)
			return nil
		})
	}
	if len(plan.MemberCreates) > 0 {
		result.Total++
		creates.Go(func() error {
			created, err := s.repo.CreateMemberRows(ctx, eventID, plan.MemberCreates)
			rows := make([]domain.PointDetailRow, 0, len(created))
			for _, r := range created {
				rows = append(rows, r)
			}
			record("create member rows", nil, classify("s.repo.CreateMemberRows", err), rows...)
			return nil
		})
	}

	updates := new(errgroup.Group)
	updates.SetLimit(s.concurrency)
	for _, u := range plan.Updates {
		u := u
		result.Total++
		updates.Go(func() error {
			updated, err := s.repo.Update(ctx, u.Row, u.Patch)
			if err != nil {
				record("update", u.Row.Log(), classify("s.repo.Update", err))
				return nil
			}
			record("update", u.Row.Log(), nil, updated)
			return nil
		})
	}

	_ = creates.Wait()
	_ = updates.Wait()

	if len(failed) > 0 {
		zap.L().Warn("point details partially applied",
			zap.Uint("event_id", eventID),
			zap.Int("succeeded", result.Succeeded),
			zap.Int("total", result.Total))
		return result, &PartialFailure{Total: result.Total, Failed: failed}
	}

	return result, nil
}

func (s *PointDetailService) prepare(ctx context.Context, eventID uint, rows []domain.PointDetailRow) error {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return classify("s.events.FindByID", err)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("s.catalog.Catalog -> %w", err)
	}

	return scoring.ValidateRows(rows, catalog)
}
