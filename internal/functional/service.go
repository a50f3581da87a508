package functional

import (
	"log/slog"

	"github.com/frizen94/ERPRO/internal"
)

type Repository interface {
	List(filters Filters) ([]*FunctionalRecord, error)
	GetByID(id int64) (*FunctionalRecord, error)
	GetLatestByPerson(personID int64) (*FunctionalRecord, error)
	Create(record *FunctionalRecord) error
	Update(id int64, patch map[string]interface{}) (*FunctionalRecord, error)
	SoftDelete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListRecords(filters Filters) ([]*FunctionalRecord, error) {
	records, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list functional records", "error", err)
		return nil, internal.NewInternalError("failed to list functional records", err)
	}
	return records, nil
}

func (s *Service) GetRecord(id int64) (*FunctionalRecord, error) {
	return s.repo.GetByID(id)
}

// GetRecordForPerson returns the newest active record of a person.
func (s *Service) GetRecordForPerson(personID int64) (*FunctionalRecord, error) {
	return s.repo.GetLatestByPerson(personID)
}

func (s *Service) CreateRecord(dto CreateRecordDTO) (*FunctionalRecord, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &FunctionalRecord{
		PersonID:           dto.PersonID,
		RegistrationNumber: dto.RegistrationNumber,
		PositionID:         dto.PositionID,
		UnitID:             dto.UnitID,
		AppointmentDate:    dto.AppointmentDate,
		PossessionDate:     dto.PossessionDate,
		StartOfDutyDate:    dto.StartOfDutyDate,
		Status:             dto.Status,
		Notes:              dto.Notes,
		IsActive:           true,
	}

	if err := s.repo.Create(record); err != nil {
		s.logger.Error("failed to create functional record", "error", err, "person_id", dto.PersonID)
		return nil, err
	}

	s.logger.Info("functional record created", "record_id", record.ID, "person_id", record.PersonID)
	return record, nil
}

func (s *Service) UpdateRecord(id int64, dto UpdateRecordDTO) (*FunctionalRecord, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, dto.Patch())
	if err != nil {
		return nil, err
	}

	s.logger.Info("functional record updated", "record_id", id)
	return updated, nil
}

func (s *Service) DeleteRecord(id int64) error {
	if err := s.repo.SoftDelete(id); err != nil {
		s.logger.Error("failed to delete functional record", "error", err, "record_id", id)
		return internal.NewInternalError("failed to delete functional record", err)
	}
	return nil
}
