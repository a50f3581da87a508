package person

import (
	"log/slog"

	"github.com/frizen94/ERPRO/internal"
)

// Repository is the storage contract for persons. Implementations apply the
// is_active filter on every read and never remove rows physically.
type Repository interface {
	List(filters Filters) ([]*Person, error)
	GetByID(id int64) (*Person, error)
	GetByNationalID(nationalID string) (*Person, error)
	Create(person *Person) error
	Update(id int64, patch map[string]interface{}) (*Person, error)
	SoftDelete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListPersons(filters Filters) ([]*Person, error) {
	persons, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list persons", "error", err)
		return nil, internal.NewInternalError("failed to list persons", err)
	}
	return persons, nil
}

func (s *Service) GetPerson(id int64) (*Person, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetPersonByNationalID(nationalID string) (*Person, error) {
	return s.repo.GetByNationalID(nationalID)
}

// CreatePerson inserts a new person. Uniqueness of the national ID is
// enforced by the database constraint alone; the repository translates the
// violation into ErrDuplicateNationalID, so no racy pre-check is needed.
func (s *Service) CreatePerson(dto CreatePersonDTO) (*Person, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p := &Person{
		FullName:      dto.FullName,
		DisplayName:   dto.DisplayName,
		NationalID:    dto.NationalID,
		SecondaryID:   dto.SecondaryID,
		BirthDate:     dto.BirthDate,
		Sex:           dto.Sex,
		MaritalStatus: dto.MaritalStatus,
		MotherName:    dto.MotherName,
		FatherName:    dto.FatherName,
		Phone:         dto.Phone,
		Email:         dto.Email,
		Address:       dto.Address,
		PostalCode:    dto.PostalCode,
		PersonType:    dto.PersonType,
		IsActive:      true,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create person", "error", err, "national_id_len", len(dto.NationalID))
		return nil, err
	}

	s.logger.Info("person created", "person_id", p.ID, "person_type", p.PersonType)
	return p, nil
}

func (s *Service) UpdatePerson(id int64, dto UpdatePersonDTO) (*Person, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, dto.Patch())
	if err != nil {
		return nil, err
	}

	s.logger.Info("person updated", "person_id", id)
	return updated, nil
}

func (s *Service) DeletePerson(id int64) error {
	if err := s.repo.SoftDelete(id); err != nil {
		s.logger.Error("failed to delete person", "error", err, "person_id", id)
		return internal.NewInternalError("failed to delete person", err)
	}
	s.logger.Info("person deleted", "person_id", id)
	return nil
}
