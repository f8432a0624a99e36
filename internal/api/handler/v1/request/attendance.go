package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RecordAttendanceRequest struct {
	MemberID uint `json:"member_id" binding:"required"`
}

func (req *RecordAttendanceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MemberID, validation.Required, validation.Min(uint(1))),
	)
}
