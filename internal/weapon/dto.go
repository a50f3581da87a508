package weapon

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

type CreateWeaponDTO struct {
	SerialNumber    string `json:"serial_number"`
	WeaponTypeID    int64  `json:"weapon_type_id"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	ManufactureYear int    `json:"manufacture_year"`
	Situation       string `json:"situation"`
	Notes           string `json:"notes"`
}

func (dto CreateWeaponDTO) Validate() error {
	if dto.SerialNumber == "" {
		return internal.NewValidationFieldError("serial_number", "serial number is required", internal.ErrCodeValidationFailed)
	}
	if dto.WeaponTypeID <= 0 {
		return internal.NewValidationFieldError("weapon_type_id", "weapon type is required", internal.ErrCodeInvalidID)
	}
	if dto.ManufactureYear != 0 && (dto.ManufactureYear < 1800 || dto.ManufactureYear > time.Now().Year()) {
		return internal.NewValidationFieldError("manufacture_year", "manufacture year is invalid", internal.ErrCodeValidationFailed)
	}
	if dto.Situation != "" && !ValidSituation(dto.Situation) {
		return internal.NewValidationFieldError("situation", "situation must be one of available, in_use, maintenance, decommissioned", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateWeaponDTO struct {
	WeaponTypeID    *int64  `json:"weapon_type_id,omitempty"`
	Brand           *string `json:"brand,omitempty"`
	Model           *string `json:"model,omitempty"`
	ManufactureYear *int    `json:"manufacture_year,omitempty"`
	Situation       *string `json:"situation,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (dto UpdateWeaponDTO) Validate() error {
	if dto.WeaponTypeID != nil && *dto.WeaponTypeID <= 0 {
		return internal.NewValidationFieldError("weapon_type_id", "weapon type is invalid", internal.ErrCodeInvalidID)
	}
	if dto.Situation != nil && !ValidSituation(*dto.Situation) {
		return internal.NewValidationFieldError("situation", "situation must be one of available, in_use, maintenance, decommissioned", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (dto UpdateWeaponDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.WeaponTypeID != nil {
		patch["weapon_type_id"] = *dto.WeaponTypeID
	}
	if dto.Brand != nil {
		patch["brand"] = *dto.Brand
	}
	if dto.Model != nil {
		patch["model"] = *dto.Model
	}
	if dto.ManufactureYear != nil {
		patch["manufacture_year"] = *dto.ManufactureYear
	}
	if dto.Situation != nil {
		patch["situation"] = *dto.Situation
	}
	if dto.Notes != nil {
		patch["notes"] = *dto.Notes
	}
	return patch
}

type CheckoutDTO struct {
	PersonID int64  `json:"person_id"`
	Purpose  string `json:"purpose"`
	Notes    string `json:"notes"`
}

func (dto CheckoutDTO) Validate() error {
	if dto.PersonID <= 0 {
		return internal.NewValidationFieldError("person_id", "person is required", internal.ErrCodeInvalidID)
	}
	return nil
}
