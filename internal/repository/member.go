package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
)

var (
	ErrMemberNotFound     = dao.ErrMemberNotFound
	ErrDepartmentNotFound = dao.ErrDepartmentNotFound
)

type MemberDAO interface {
	FindByID(ctx context.Context, id uint) (dao.Member, error)
	FindByUniID(ctx context.Context, uniID string) (dao.Member, error)
	FindDepartmentByID(ctx context.Context, id uint) (dao.Department, error)
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return memberDaoToDomain(found), nil
}

func (r *MemberRepository) FindByUniID(ctx context.Context, uniID string) (domain.Member, error) {
	found, err := r.dao.FindByUniID(ctx, uniID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByUniID -> %w", err)
	}

	return memberDaoToDomain(found), nil
}

func (r *MemberRepository) FindDepartmentByID(ctx context.Context, id uint) (domain.Department, error) {
	found, err := r.dao.FindDepartmentByID(ctx, id)
	if err != nil {
		return domain.Department{}, fmt.Errorf("r.dao.FindDepartmentByID -> %w", err)
	}

	return domain.Department{
		ID:            found.ID,
		Name:          found.Name,
		LocalizedName: found.ArName,
		Type:          domain.DepartmentType(found.Type),
	}, nil
}

func memberDaoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		UniID:       m.UniID,
		Gender:      domain.Gender(m.Gender),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func memberDomainToDao(m domain.Member) dao.Member {
	return dao.Member{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		UniID:       m.UniID,
		Gender:      string(m.Gender),
	}
}
