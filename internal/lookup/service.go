package lookup

import "log/slog"

type Repository interface {
	ListPositions() ([]*Position, error)
	CreatePosition(p *Position) error
	UpdatePosition(id int64, patch map[string]interface{}) (*Position, error)
	SoftDeletePosition(id int64) error

	ListUnits() ([]*OrganizationalUnit, error)
	GetUnitByID(id int64) (*OrganizationalUnit, error)
	CreateUnit(u *OrganizationalUnit) error
	UpdateUnit(id int64, patch map[string]interface{}) (*OrganizationalUnit, error)
	SoftDeleteUnit(id int64) error

	ListStates() ([]*State, error)
	CreateState(s *State) error
	UpdateState(id int64, patch map[string]interface{}) (*State, error)
	SoftDeleteState(id int64) error

	ListMunicipalities(stateID int64) ([]*Municipality, error)
	CreateMunicipality(m *Municipality) error
	UpdateMunicipality(id int64, patch map[string]interface{}) (*Municipality, error)
	SoftDeleteMunicipality(id int64) error

	ListAbsenceTypes() ([]*AbsenceType, error)
	CreateAbsenceType(t *AbsenceType) error
	UpdateAbsenceType(id int64, patch map[string]interface{}) (*AbsenceType, error)
	SoftDeleteAbsenceType(id int64) error

	ListShiftTypes() ([]*ShiftType, error)
	CreateShiftType(t *ShiftType) error
	UpdateShiftType(id int64, patch map[string]interface{}) (*ShiftType, error)
	SoftDeleteShiftType(id int64) error

	ListPerDiemStatuses() ([]*PerDiemStatus, error)
	GetPerDiemStatusByName(name string) (*PerDiemStatus, error)
	CreatePerDiemStatus(st *PerDiemStatus) error
	UpdatePerDiemStatus(id int64, patch map[string]interface{}) (*PerDiemStatus, error)
	SoftDeletePerDiemStatus(id int64) error

	ListWeaponTypes() ([]*WeaponType, error)
	CreateWeaponType(t *WeaponType) error
	UpdateWeaponType(id int64, patch map[string]interface{}) (*WeaponType, error)
	SoftDeleteWeaponType(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func nameDTOPatch(dto NameDTO) map[string]interface{} {
	return map[string]interface{}{
		"name":        dto.Name,
		"description": dto.Description,
	}
}

func (s *Service) ListPositions() ([]*Position, error) { return s.repo.ListPositions() }

func (s *Service) CreatePosition(dto NameDTO) (*Position, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	p := &Position{Name: dto.Name, Description: dto.Description, IsActive: true}
	if err := s.repo.CreatePosition(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePosition(id int64, dto NameDTO) (*Position, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdatePosition(id, nameDTOPatch(dto))
}

func (s *Service) DeletePosition(id int64) error { return s.repo.SoftDeletePosition(id) }

func (s *Service) ListUnits() ([]*OrganizationalUnit, error) { return s.repo.ListUnits() }

func (s *Service) CreateUnit(dto UnitDTO) (*OrganizationalUnit, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if dto.ParentID != nil {
		if _, err := s.repo.GetUnitByID(*dto.ParentID); err != nil {
			return nil, ErrUnitParentNotFound
		}
	}
	u := &OrganizationalUnit{
		Name:        dto.Name,
		Description: dto.Description,
		ParentID:    dto.ParentID,
		IsActive:    true,
	}
	if err := s.repo.CreateUnit(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUnit(id int64, dto UnitDTO) (*OrganizationalUnit, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if dto.ParentID != nil {
		if err := s.checkUnitCycle(id, *dto.ParentID); err != nil {
			return nil, err
		}
	}
	patch := map[string]interface{}{
		"name":        dto.Name,
		"description": dto.Description,
		"parent_id":   dto.ParentID,
	}
	return s.repo.UpdateUnit(id, patch)
}

func (s *Service) DeleteUnit(id int64) error { return s.repo.SoftDeleteUnit(id) }

// checkUnitCycle walks the parent chain starting at the proposed parent. The
// write is rejected if the chain reaches the unit being updated, so the tree
// stays acyclic. The visited set guards against cycles already present in
// the data.
func (s *Service) checkUnitCycle(unitID, parentID int64) error {
	if parentID == unitID {
		return ErrUnitCycle
	}

	visited := map[int64]bool{unitID: true}
	current := parentID
	for {
		if visited[current] {
			return ErrUnitCycle
		}
		visited[current] = true

		unit, err := s.repo.GetUnitByID(current)
		if err != nil {
			return ErrUnitParentNotFound
		}
		if unit.ParentID == nil {
			return nil
		}
		current = *unit.ParentID
	}
}

func (s *Service) ListStates() ([]*State, error) { return s.repo.ListStates() }

func (s *Service) CreateState(dto StateDTO) (*State, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	st := &State{Name: dto.Name, Code: dto.Code, IsActive: true}
	if err := s.repo.CreateState(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) UpdateState(id int64, dto StateDTO) (*State, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateState(id, map[string]interface{}{
		"name": dto.Name,
		"code": dto.Code,
	})
}

func (s *Service) DeleteState(id int64) error { return s.repo.SoftDeleteState(id) }

func (s *Service) ListMunicipalities(stateID int64) ([]*Municipality, error) {
	return s.repo.ListMunicipalities(stateID)
}

func (s *Service) CreateMunicipality(dto MunicipalityDTO) (*Municipality, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	m := &Municipality{Name: dto.Name, StateID: dto.StateID, IsActive: true}
	if err := s.repo.CreateMunicipality(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) UpdateMunicipality(id int64, dto MunicipalityDTO) (*Municipality, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateMunicipality(id, map[string]interface{}{
		"name":     dto.Name,
		"state_id": dto.StateID,
	})
}

func (s *Service) DeleteMunicipality(id int64) error { return s.repo.SoftDeleteMunicipality(id) }

func (s *Service) ListAbsenceTypes() ([]*AbsenceType, error) { return s.repo.ListAbsenceTypes() }

func (s *Service) CreateAbsenceType(dto NameDTO) (*AbsenceType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	t := &AbsenceType{Name: dto.Name, Description: dto.Description, IsActive: true}
	if err := s.repo.CreateAbsenceType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateAbsenceType(id int64, dto NameDTO) (*AbsenceType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateAbsenceType(id, nameDTOPatch(dto))
}

func (s *Service) DeleteAbsenceType(id int64) error { return s.repo.SoftDeleteAbsenceType(id) }

func (s *Service) ListShiftTypes() ([]*ShiftType, error) { return s.repo.ListShiftTypes() }

func (s *Service) CreateShiftType(dto NameDTO) (*ShiftType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	t := &ShiftType{Name: dto.Name, Description: dto.Description, IsActive: true}
	if err := s.repo.CreateShiftType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateShiftType(id int64, dto NameDTO) (*ShiftType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateShiftType(id, nameDTOPatch(dto))
}

func (s *Service) DeleteShiftType(id int64) error { return s.repo.SoftDeleteShiftType(id) }

func (s *Service) ListPerDiemStatuses() ([]*PerDiemStatus, error) {
	return s.repo.ListPerDiemStatuses()
}

// PerDiemStatusIDByName satisfies the per-diem module's status resolver.
func (s *Service) PerDiemStatusIDByName(name string) (int64, error) {
	st, err := s.repo.GetPerDiemStatusByName(name)
	if err != nil {
		return 0, err
	}
	return st.ID, nil
}

func (s *Service) CreatePerDiemStatus(dto NameDTO) (*PerDiemStatus, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	st := &PerDiemStatus{Name: dto.Name, Description: dto.Description, IsActive: true}
	if err := s.repo.CreatePerDiemStatus(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) UpdatePerDiemStatus(id int64, dto NameDTO) (*PerDiemStatus, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdatePerDiemStatus(id, nameDTOPatch(dto))
}

func (s *Service) DeletePerDiemStatus(id int64) error { return s.repo.SoftDeletePerDiemStatus(id) }

func (s *Service) ListWeaponTypes() ([]*WeaponType, error) { return s.repo.ListWeaponTypes() }

func (s *Service) CreateWeaponType(dto NameDTO) (*WeaponType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	t := &WeaponType{Name: dto.Name, Description: dto.Description, IsActive: true}
	if err := s.repo.CreateWeaponType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateWeaponType(id int64, dto NameDTO) (*WeaponType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateWeaponType(id, nameDTOPatch(dto))
}

func (s *Service) DeleteWeaponType(id int64) error { return s.repo.SoftDeleteWeaponType(id) }
