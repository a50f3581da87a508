package absence

import (
	"log/slog"

	"github.com/frizen94/ERPRO/internal"
)

type Repository interface {
	List(filters Filters) ([]*Absence, error)
	GetByID(id int64) (*Absence, error)
	Create(absence *Absence) error
	Update(id int64, patch map[string]interface{}) (*Absence, error)
	SoftDelete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListAbsences(filters Filters) ([]*Absence, error) {
	absences, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list absences", "error", err)
		return nil, internal.NewInternalError("failed to list absences", err)
	}
	return absences, nil
}

func (s *Service) GetAbsence(id int64) (*Absence, error) {
	return s.repo.GetByID(id)
}

func (s *Service) CreateAbsence(dto CreateAbsenceDTO) (*Absence, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a := &Absence{
		PersonID:      dto.PersonID,
		AbsenceTypeID: dto.AbsenceTypeID,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		Reason:        dto.Reason,
		ProcessNumber: dto.ProcessNumber,
		Notes:         dto.Notes,
		IsActive:      true,
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create absence", "error", err, "person_id", dto.PersonID)
		return nil, internal.NewInternalError("failed to create absence", err)
	}

	s.logger.Info("absence created", "absence_id", a.ID, "person_id", a.PersonID)
	return a, nil
}

func (s *Service) UpdateAbsence(id int64, dto UpdateAbsenceDTO) (*Absence, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, dto.Patch())
	if err != nil {
		return nil, err
	}

	s.logger.Info("absence updated", "absence_id", id)
	return updated, nil
}

func (s *Service) DeleteAbsence(id int64) error {
	if err := s.repo.SoftDelete(id); err != nil {
		s.logger.Error("failed to delete absence", "error", err, "absence_id", id)
		return internal.NewInternalError("failed to delete absence", err)
	}
	return nil
}
