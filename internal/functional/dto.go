package functional

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

type CreateRecordDTO struct {
	PersonID           int64      `json:"person_id"`
	RegistrationNumber string     `json:"registration_number"`
	PositionID         int64      `json:"position_id"`
	UnitID             int64      `json:"unit_id"`
	AppointmentDate    *time.Time `json:"appointment_date,omitempty"`
	PossessionDate     *time.Time `json:"possession_date,omitempty"`
	StartOfDutyDate    *time.Time `json:"start_of_duty_date,omitempty"`
	Status             string     `json:"status"`
	Notes              string     `json:"notes"`
}

func (dto CreateRecordDTO) Validate() error {
	if dto.PersonID <= 0 {
		return internal.NewValidationFieldError("person_id", "person is required", internal.ErrCodeInvalidID)
	}
	if dto.RegistrationNumber == "" {
		return internal.NewValidationFieldError("registration_number", "registration number is required", internal.ErrCodeValidationFailed)
	}
	if dto.PositionID <= 0 {
		return internal.NewValidationFieldError("position_id", "position is required", internal.ErrCodeInvalidID)
	}
	if dto.UnitID <= 0 {
		return internal.NewValidationFieldError("unit_id", "organizational unit is required", internal.ErrCodeInvalidID)
	}
	if !ValidStatus(dto.Status) {
		return internal.NewValidationFieldError("status", "status must be one of active, inactive, retired, dismissed", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateRecordDTO struct {
	PositionID      *int64     `json:"position_id,omitempty"`
	UnitID          *int64     `json:"unit_id,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	PossessionDate  *time.Time `json:"possession_date,omitempty"`
	StartOfDutyDate *time.Time `json:"start_of_duty_date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

func (dto UpdateRecordDTO) Validate() error {
	if dto.PositionID != nil && *dto.PositionID <= 0 {
		return internal.NewValidationFieldError("position_id", "position is invalid", internal.ErrCodeInvalidID)
	}
	if dto.UnitID != nil && *dto.UnitID <= 0 {
		return internal.NewValidationFieldError("unit_id", "organizational unit is invalid", internal.ErrCodeInvalidID)
	}
	if dto.Status != nil && !ValidStatus(*dto.Status) {
		return internal.NewValidationFieldError("status", "status must be one of active, inactive, retired, dismissed", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateRecordDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.PositionID != nil {
		patch["position_id"] = *dto.PositionID
	}
	if dto.UnitID != nil {
		patch["unit_id"] = *dto.UnitID
	}
	if dto.AppointmentDate != nil {
		patch["appointment_date"] = *dto.AppointmentDate
	}
	if dto.PossessionDate != nil {
		patch["possession_date"] = *dto.PossessionDate
	}
	if dto.StartOfDutyDate != nil {
		patch["start_of_duty_date"] = *dto.StartOfDutyDate
	}
	if dto.Status != nil {
		patch["status"] = *dto.Status
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}
