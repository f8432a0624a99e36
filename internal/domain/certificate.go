package domain

import "time"

type CertificateRecipient struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender Gender `json:"gender"`
}

// CertificateRequest is the payload handed to the certificate generator for
// one closed event.
type CertificateRequest struct {
	EventName     string                 `json:"event_name"`
	AnnouncedName string                 `json:"announced_name"`
	Date          string                 `json:"date"`
	Official      bool                   `json:"official"`
	Members       []CertificateRecipient `json:"members"`
}

type CertificateJobStatus string

const (
	CertificateJobPublished CertificateJobStatus = "published"
	CertificateJobFailed    CertificateJobStatus = "failed"
)

// CertificateJob records one dispatch attempt.
type CertificateJob struct {
	ID          string               `json:"id"`
	EventID     uint                 `json:"event_id"`
	Status      CertificateJobStatus `json:"status"`
	MemberCount int                  `json:"member_count"`
	Error       string               `json:"error,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
