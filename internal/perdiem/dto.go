package perdiem

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

type CreatePerDiemDTO struct {
	PersonID       int64     `json:"person_id"`
	StatusID       int64     `json:"status_id"`
	Destination    string    `json:"destination"`
	Purpose        string    `json:"purpose"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	DailyRateCents int64     `json:"daily_rate_cents"`
	TransportCents int64     `json:"transport_cents"`
	TotalCents     int64     `json:"total_cents"`
	ProcessNumber  string    `json:"process_number"`
	Notes          string    `json:"notes"`
}

func (dto CreatePerDiemDTO) Validate() error {
	if dto.PersonID <= 0 {
		return internal.NewValidationFieldError("person_id", "person is required", internal.ErrCodeInvalidID)
	}
	if dto.Destination == "" {
		return internal.NewValidationFieldError("destination", "destination is required", internal.ErrCodeValidationFailed)
	}
	if dto.StartDate.IsZero() || dto.EndDate.IsZero() {
		return internal.NewValidationFieldError("start_date", "start and end dates are required", internal.ErrCodeInvalidDate)
	}
	if dto.EndDate.Before(dto.StartDate) {
		return internal.NewValidationFieldError("end_date", "end date cannot be before start date", internal.ErrCodeInvalidDateRange)
	}
	if dto.DailyRateCents < 0 || dto.TransportCents < 0 || dto.TotalCents < 0 {
		return internal.NewValidationFieldError("daily_rate_cents", "amounts cannot be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdatePerDiemDTO struct {
	StatusID       *int64     `json:"status_id,omitempty"`
	Destination    *string    `json:"destination,omitempty"`
	Purpose        *string    `json:"purpose,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DailyRateCents *int64     `json:"daily_rate_cents,omitempty"`
	TransportCents *int64     `json:"transport_cents,omitempty"`
	TotalCents     *int64     `json:"total_cents,omitempty"`
	ProcessNumber  *string    `json:"process_number,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

func (dto UpdatePerDiemDTO) Validate() error {
	if dto.StatusID != nil && *dto.StatusID <= 0 {
		return internal.NewValidationFieldError("status_id", "status is invalid", internal.ErrCodeInvalidID)
	}
	if dto.Destination != nil && *dto.Destination == "" {
		return internal.NewValidationFieldError("destination", "destination cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.StartDate != nil && dto.EndDate != nil && dto.EndDate.Before(*dto.StartDate) {
		return internal.NewValidationFieldError("end_date", "end date cannot be before start date", internal.ErrCodeInvalidDateRange)
	}
	return nil
}

func (dto UpdatePerDiemDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.StatusID != nil {
		patch["status_id"] = *dto.StatusID
	}
	if dto.Destination != nil {
		patch["destination"] = *dto.Destination
	}
	if dto.Purpose != nil {
		patch["purpose"] = *dto.Purpose
	}
	if dto.StartDate != nil {
		patch["start_date"] = *dto.StartDate
	}
	if dto.EndDate != nil {
		patch["end_date"] = *dto.EndDate
	}
	if dto.DailyRateCents != nil {
		patch["daily_rate_cents"] = *dto.DailyRateCents
	}
	if dto.TransportCents != nil {
		patch["transport_cents"] = *dto.TransportCents
	}
	if dto.TotalCents != nil {
		patch["total_cents"] = *dto.TotalCents
	}
	if dto.ProcessNumber != nil {
		patch["process_number"] = *dto.ProcessNumber
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}
