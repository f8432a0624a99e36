package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/repository/dao"
)

type CertificateJobDAO interface {
	Insert(ctx context.Context, job dao.CertificateJob) (dao.CertificateJob, error)
	FindByEvent(ctx context.Context, eventID uint) ([]dao.CertificateJob, error)
}

type CertificateJobRepository struct {
	dao CertificateJobDAO
}

func NewCertificateJobRepository(dao CertificateJobDAO) *CertificateJobRepository {
	return &CertificateJobRepository{
		dao: dao,
	}
}

// Create records a dispatch attempt together with the payload that was sent.
func (r *CertificateJobRepository) Create(ctx context.Context, job domain.CertificateJob, payload domain.CertificateRequest) (domain.CertificateJob, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.CertificateJob{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	created, err := r.dao.Insert(ctx, dao.CertificateJob{
		ID:          job.ID,
		EventID:     job.EventID,
		Status:      string(job.Status),
		MemberCount: job.MemberCount,
		Payload:     raw,
		Error:       job.Error,
	})
	if err != nil {
		return domain.CertificateJob{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return certificateJobDaoToDomain(created), nil
}

func (r *CertificateJobRepository) FindByEvent(ctx context.Context, eventID uint) ([]domain.CertificateJob, error) {
	found, err := r.dao.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEvent -> %w", err)
	}

	jobs := make([]domain.CertificateJob, 0, len(found))
	for _, j := range found {
		jobs = append(jobs, certificateJobDaoToDomain(j))
	}

	return jobs, nil
}

func certificateJobDaoToDomain(j dao.CertificateJob) domain.CertificateJob {
	return domain.CertificateJob{
		ID:          j.ID,
		EventID:     j.EventID,
		Status:      domain.CertificateJobStatus(j.Status),
		MemberCount: j.MemberCount,
		Error:       j.Error,
		CreatedAt:   j.CreatedAt,
	}
}
