package person

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

type CreatePersonDTO struct {
	FullName      string    `json:"full_name"`
	DisplayName   *string   `json:"display_name,omitempty"`
	NationalID    string    `json:"national_id"`
	SecondaryID   *string   `json:"secondary_id,omitempty"`
	BirthDate     time.Time `json:"birth_date"`
	Sex           string    `json:"sex"`
	MaritalStatus string    `json:"marital_status"`
	MotherName    *string   `json:"mother_name,omitempty"`
	FatherName    *string   `json:"father_name,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Address       *string   `json:"address,omitempty"`
	PostalCode    *string   `json:"postal_code,omitempty"`
	PersonType    string    `json:"person_type"`
}

func (dto CreatePersonDTO) Validate() error {
	if dto.FullName == "" {
		return internal.NewValidationFieldError("full_name", "full name is required", internal.ErrCodeValidationFailed)
	}
	if !validNationalID(dto.NationalID) {
		return internal.NewValidationFieldError("national_id", "national ID must be an 11-digit number", internal.ErrCodeValidationFailed)
	}
	if dto.BirthDate.IsZero() {
		return internal.NewValidationFieldError("birth_date", "birth date is required", internal.ErrCodeInvalidDate)
	}
	if dto.BirthDate.After(time.Now()) {
		return internal.NewValidationFieldError("birth_date", "birth date cannot be in the future", internal.ErrCodeInvalidDate)
	}
	if dto.PersonType != TypeStaff && dto.PersonType != TypeContractor {
		return internal.NewValidationFieldError("person_type", "person type must be staff or contractor", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdatePersonDTO is a partial patch: nil fields are left untouched.
type UpdatePersonDTO struct {
	FullName      *string    `json:"full_name,omitempty"`
	DisplayName   *string    `json:"display_name,omitempty"`
	SecondaryID   *string    `json:"secondary_id,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Sex           *string    `json:"sex,omitempty"`
	MaritalStatus *string    `json:"marital_status,omitempty"`
	MotherName    *string    `json:"mother_name,omitempty"`
	FatherName    *string    `json:"father_name,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Address       *string    `json:"address,omitempty"`
	PostalCode    *string    `json:"postal_code,omitempty"`
	PersonType    *string    `json:"person_type,omitempty"`
}

func (dto UpdatePersonDTO) Validate() error {
	if dto.FullName != nil && *dto.FullName == "" {
		return internal.NewValidationFieldError("full_name", "full name cannot be empty", internal.ErrCodeValidationFailed)
	}
	if dto.BirthDate != nil && dto.BirthDate.After(time.Now()) {
		return internal.NewValidationFieldError("birth_date", "birth date cannot be in the future", internal.ErrCodeInvalidDate)
	}
	if dto.PersonType != nil && *dto.PersonType != TypeStaff && *dto.PersonType != TypeContractor {
		return internal.NewValidationFieldError("person_type", "person type must be staff or contractor", internal.ErrCodeValidationFailed)
	}
	return nil
}

// Patch maps set fields to their column names for a partial update.
func (dto UpdatePersonDTO) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if dto.FullName != nil {
		patch["full_name"] = *dto.FullName
	}
	if dto.DisplayName != nil {
		patch["display_name"] = *dto.DisplayName
	}
	if dto.SecondaryID != nil {
		patch["secondary_id"] = *dto.SecondaryID
	}
	if dto.BirthDate != nil {
		patch["birth_date"] = *dto.BirthDate
	}
	if dto.Sex != nil {
		patch["sex"] = *dto.Sex
	}
	if dto.MaritalStatus != nil {
		patch["marital_status"] = *dto.MaritalStatus
	}
	if dto.MotherName != nil {
		patch["mother_name"] = *dto.MotherName
	}
	if dto.FatherName != nil {
		patch["father_name"] = *dto.FatherName
	}
	if dto.Phone != nil {
		patch["phone"] = *dto.Phone
	}
	if dto.Email != nil {
		patch["email"] = *dto.Email
	}
	if dto.Address != nil {
		patch["address"] = *dto.Address
	}
	if dto.PostalCode != nil {
		patch["postal_code"] = *dto.PostalCode
	}
	if dto.PersonType != nil {
		patch["person_type"] = *dto.PersonType
	}
	return patch
}

func validNationalID(s string) bool {
	if len(s) != 11 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
