package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrDepartmentNotFound = errors.New("department not found")
)

type Member struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:50;not null"`
	Email       string `gorm:"size:100"`
	PhoneNumber string `gorm:"size:20"`
	UniID       string `gorm:"size:50;not null;uniqueIndex:uni_members_uni_id"`
	Gender      string `gorm:"type:varchar(10);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Department struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:50;not null"`
	ArName string `gorm:"size:100;not null"`
	Type   string `gorm:"type:varchar(20);not null"` // "administrative" or "practical"
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) FindByID(ctx context.Context, id uint) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByUniID(ctx context.Context, uniID string) (Member, error) {
	var member Member

	result := d.db.WithContext(ctx).First(&member, "uni_id = ?", uniID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindDepartmentByID(ctx context.Context, id uint) (Department, error) {
	var department Department

	result := d.db.WithContext(ctx).First(&department, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Department{}, ErrDepartmentNotFound
		}

		return Department{}, result.Error
	}

	return department, nil
}

// upsertMember returns the member with member.UniID, creating it first when
// it does not exist yet. Existing members are not modified.
func upsertMember(tx *gorm.DB, member Member) (Member, error) {
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uni_id"}},
		DoNothing: true,
	}).Create(&member)
	if result.Error != nil {
		return Member{}, result.Error
	}
	if result.RowsAffected == 1 {
		return member, nil
	}

	var existing Member
	if err := tx.First(&existing, "uni_id = ?", member.UniID).Error; err != nil {
		return Member{}, err
	}

	return existing, nil
}
