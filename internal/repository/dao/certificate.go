package dao

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CertificateJob is the audit record of one certificate dispatch.
type CertificateJob struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	EventID     uint           `gorm:"not null;index"`
	Status      string         `gorm:"type:varchar(20);not null"`
	MemberCount int            `gorm:"not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb"`
	Error       string         `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
}

type CertificateJobDAO struct {
	db *gorm.DB
}

func NewCertificateJobDAO(db *gorm.DB) *CertificateJobDAO {
	return &CertificateJobDAO{
		db: db,
	}
}

func (d *CertificateJobDAO) Insert(ctx context.Context, job CertificateJob) (CertificateJob, error) {
	result := d.db.WithContext(ctx).Create(&job)
	if result.Error != nil {
		return CertificateJob{}, result.Error
	}

	return job, nil
}

func (d *CertificateJobDAO) FindByEvent(ctx context.Context, eventID uint) ([]CertificateJob, error) {
	var jobs []CertificateJob

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&jobs)
	if result.Error != nil {
		return nil, result.Error
	}

	return jobs, nil
}
