package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

type ActionRepository interface {
	FindAll(ctx context.Context) ([]domain.Action, error)
}

// ActionService keeps the current action catalog. Readers always get a
// complete snapshot; Refresh swaps in a new one.
type ActionService struct {
	repo    ActionRepository
	pairs   []scoring.Pairing
	catalog atomic.Pointer[scoring.Catalog]
}

func NewActionService(repo ActionRepository, pairs []scoring.Pairing) *ActionService {
	return &ActionService{
		repo:  repo,
		pairs: pairs,
	}
}

func (s *ActionService) Refresh(ctx context.Context) (*scoring.Catalog, error) {
	actions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, classify("s.repo.FindAll", err)
	}

	c := scoring.NewCatalog(actions, s.pairs)
	s.catalog.Store(c)
	zap.L().Debug("action catalog loaded", zap.Int("actions", c.Len()))

	return c, nil
}

// Catalog returns the last loaded snapshot, loading it on first use.
func (s *ActionService) Catalog(ctx context.Context) (*scoring.Catalog, error) {
	if c := s.catalog.Load(); c != nil {
		return c, nil
	}

	return s.Refresh(ctx)
}

func (s *ActionService) Listing(ctx context.Context) (domain.ActionListing, error) {
	c, err := s.Refresh(ctx)
	if err != nil {
		return domain.ActionListing{}, fmt.Errorf("s.Refresh -> %w", err)
	}

	return c.Listing(), nil
}
