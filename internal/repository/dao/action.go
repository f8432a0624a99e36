package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrActionNotFound = errors.New("action not found")

type Action struct {
	ID           uint   `gorm:"primaryKey"`
	ActionName   string `gorm:"size:60;not null"`
	ArActionName string `gorm:"size:100;not null"`
	Points       int    `gorm:"not null"`
	ActionType   string `gorm:"type:varchar(20);not null"` // "composite", "department", "member" or "bonus"
}

type ActionDAO struct {
	db *gorm.DB
}

func NewActionDAO(db *gorm.DB) *ActionDAO {
	return &ActionDAO{
		db: db,
	}
}

func (d *ActionDAO) FindAll(ctx context.Context) ([]Action, error) {
	var actions []Action

	result := d.db.WithContext(ctx).Order("id").Find(&actions)
	if result.Error != nil {
		return nil, result.Error
	}

	return actions, nil
}

func (d *ActionDAO) FindByID(ctx context.Context, id uint) (Action, error) {
	var action Action

	result := d.db.WithContext(ctx).First(&action, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Action{}, ErrActionNotFound
		}

		return Action{}, result.Error
	}

	return action, nil
}

func (d *ActionDAO) Insert(ctx context.Context, action Action) (Action, error) {
	result := d.db.WithContext(ctx).Create(&action)
	if result.Error != nil {
		return Action{}, result.Error
	}

	return action, nil
}
