package absence

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

type CreateAbsenceDTO struct {
	PersonID      int64      `json:"person_id"`
	AbsenceTypeID int64      `json:"absence_type_id"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Reason        string     `json:"reason"`
	ProcessNumber string     `json:"process_number"`
	Notes         string     `json:"notes"`
}

func (dto CreateAbsenceDTO) Validate() error {
	if dto.PersonID <= 0 {
		return internal.NewValidationFieldError("person_id", "person is required", internal.ErrCodeInvalidID)
	}
	if dto.AbsenceTypeID <= 0 {
		return internal.NewValidationFieldError("absence_type_id", "absence type is required", internal.ErrCodeInvalidID)
	}
	if dto.StartDate.IsZero() {
		return internal.NewValidationFieldError("start_date", "start date is required", internal.ErrCodeInvalidDate)
	}
	if dto.EndDate != nil && dto.EndDate.Before(dto.StartDate) {
		return internal.NewValidationFieldError("end_date", "end date cannot be before start date", internal.ErrCodeInvalidDateRange)
	}
	return nil
}

type UpdateAbsenceDTO struct {
	AbsenceTypeID *int64     `json:"absence_type_id,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Reason        *string    `json:"reason,omitempty"`
	ProcessNumber *string    `json:"process_number,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

func (dto UpdateAbsenceDTO) Validate() error {
	if dto.AbsenceTypeID != nil && *dto.AbsenceTypeID <= 0 {
		return internal.NewValidationFieldError("absence_type_id", "absence type is invalid", internal.ErrCodeInvalidID)
	}
	if dto.StartDate != nil && dto.EndDate != nil && dto.EndDate.Before(*dto.StartDate) {
		return internal.NewValidationFieldError("end_date", "end date cannot be before start date", internal.ErrCodeInvalidDateRange)
	}
	return nil
}

func (dto UpdateAbsenceDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.AbsenceTypeID != nil {
		patch["absence_type_id"] = *dto.AbsenceTypeID
	}
	if dto.StartDate != nil {
		patch["start_date"] = *dto.StartDate
	}
	if dto.EndDate != nil {
		patch["end_date"] = *dto.EndDate
	}
	if dto.Reason != nil {
		patch["reason"] = *dto.Reason
	}
	if dto.ProcessNumber != nil {
		patch["process_number"] = *dto.ProcessNumber
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}
