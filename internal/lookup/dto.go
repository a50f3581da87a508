package lookup

import "github.com/frizen94/ERPRO/internal"

// NameDTO covers the plain name/description tables (positions, absence
// types, shift types, per-diem statuses, weapon types). Lookup rows are
// small enough that updates replace the whole record.
type NameDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (dto NameDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type StateDTO struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (dto StateDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.Code == "" {
		return internal.NewValidationFieldError("code", "code is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type MunicipalityDTO struct {
	Name    string `json:"name"`
	StateID int64  `json:"state_id"`
}

func (dto MunicipalityDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.StateID <= 0 {
		return internal.NewValidationFieldError("state_id", "state ID is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UnitDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

func (dto UnitDTO) Validate() error {
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if dto.ParentID != nil && *dto.ParentID <= 0 {
		return internal.NewValidationFieldError("parent_id", "parent ID must be a positive ID", internal.ErrCodeValidationFailed)
	}
	return nil
}
