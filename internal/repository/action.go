package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
)

type ActionDAO interface {
	FindAll(ctx context.Context) ([]dao.Action, error)
}

type ActionRepository struct {
	dao ActionDAO
}

func NewActionRepository(dao ActionDAO) *ActionRepository {
	return &ActionRepository{
		dao: dao,
	}
}

func (r *ActionRepository) FindAll(ctx context.Context) ([]domain.Action, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	actions := make([]domain.Action, 0, len(found))
	for _, a := range found {
		actions = append(actions, actionDaoToDomain(a))
	}

	return actions, nil
}

func actionDaoToDomain(a dao.Action) domain.Action {
	return domain.Action{
		ID:            a.ID,
		Kind:          domain.ActionKind(a.ActionType),
		Name:          a.ActionName,
		LocalizedName: a.ArActionName,
		Points:        a.Points,
	}
}
