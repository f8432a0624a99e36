package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Member struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	UniID       string    `json:"uni_id"`
	Gender      Gender    `json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DepartmentType string

const (
	DepartmentAdministrative DepartmentType = "administrative"
	DepartmentPractical      DepartmentType = "practical"
)

type Department struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	LocalizedName string         `json:"ar_name"`
	Type          DepartmentType `json:"type"`
}
