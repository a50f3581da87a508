package shift

import (
	"regexp"
	"time"

	"github.com/frizen94/ERPRO/internal"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type CreateShiftDTO struct {
	PersonID    int64     `json:"person_id"`
	ShiftTypeID int64     `json:"shift_type_id"`
	UnitID      int64     `json:"unit_id"`
	ShiftDate   time.Time `json:"shift_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
}

func (dto CreateShiftDTO) Validate() error {
	if dto.PersonID <= 0 {
		return internal.NewValidationFieldError("person_id", "person is required", internal.ErrCodeInvalidID)
	}
	if dto.ShiftTypeID <= 0 {
		return internal.NewValidationFieldError("shift_type_id", "shift type is required", internal.ErrCodeInvalidID)
	}
	if dto.UnitID <= 0 {
		return internal.NewValidationFieldError("unit_id", "organizational unit is required", internal.ErrCodeInvalidID)
	}
	if dto.ShiftDate.IsZero() {
		return internal.NewValidationFieldError("shift_date", "shift date is required", internal.ErrCodeInvalidDate)
	}
	if !timeOfDayPattern.MatchString(dto.StartTime) {
		return internal.NewValidationFieldError("start_time", "start time must be HH:MM", internal.ErrCodeValidationFailed)
	}
	if !timeOfDayPattern.MatchString(dto.EndTime) {
		return internal.NewValidationFieldError("end_time", "end time must be HH:MM", internal.ErrCodeValidationFailed)
	}
	if dto.Status != "" && !ValidStatus(dto.Status) {
		return internal.NewValidationFieldError("status", "status must be one of scheduled, present, absent, justified", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateShiftDTO struct {
	ShiftTypeID *int64     `json:"shift_type_id,omitempty"`
	UnitID      *int64     `json:"unit_id,omitempty"`
	ShiftDate   *time.Time `json:"shift_date,omitempty"`
	StartTime   *string    `json:"start_time,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

func (dto UpdateShiftDTO) Validate() error {
	if dto.ShiftTypeID != nil && *dto.ShiftTypeID <= 0 {
		return internal.NewValidationFieldError("shift_type_id", "shift type is invalid", internal.ErrCodeInvalidID)
	}
	if dto.UnitID != nil && *dto.UnitID <= 0 {
		return internal.NewValidationFieldError("unit_id", "organizational unit is invalid", internal.ErrCodeInvalidID)
	}
	if dto.StartTime != nil && !timeOfDayPattern.MatchString(*dto.StartTime) {
		return internal.NewValidationFieldError("start_time", "start time must be HH:MM", internal.ErrCodeValidationFailed)
	}
	if dto.EndTime != nil && !timeOfDayPattern.MatchString(*dto.EndTime) {
		return internal.NewValidationFieldError("end_time", "end time must be HH:MM", internal.ErrCodeValidationFailed)
	}
	if dto.Status != nil && !ValidStatus(*dto.Status) {
		return internal.NewValidationFieldError("status", "status must be one of scheduled, present, absent, justified", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateShiftDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.ShiftTypeID != nil {
		patch["shift_type_id"] = *dto.ShiftTypeID
	}
	if dto.UnitID != nil {
		patch["unit_id"] = *dto.UnitID
	}
	if dto.ShiftDate != nil {
		patch["shift_date"] = *dto.ShiftDate
	}
	if dto.StartTime != nil {
		patch["start_time"] = *dto.StartTime
	}
	if dto.EndTime != nil {
		patch["end_time"] = *dto.EndTime
	}
	if dto.Status != nil {
		patch["status"] = *dto.Status
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}
