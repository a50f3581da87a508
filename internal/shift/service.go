package shift

import (
	"log/slog"

	"github.com/frizen94/ERPRO/internal"
)

type Repository interface {
	List(filters Filters) ([]*ShiftSchedule, error)
	GetByID(id int64) (*ShiftSchedule, error)
	Create(schedule *ShiftSchedule) error
	Update(id int64, patch map[string]interface{}) (*ShiftSchedule, error)
	SoftDelete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListShifts(filters Filters) ([]*ShiftSchedule, error) {
	shifts, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list shift schedules", "error", err)
		return nil, internal.NewInternalError("failed to list shift schedules", err)
	}
	return shifts, nil
}

func (s *Service) GetShift(id int64) (*ShiftSchedule, error) {
	return s.repo.GetByID(id)
}

func (s *Service) CreateShift(dto CreateShiftDTO) (*ShiftSchedule, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	status := dto.Status
	if status == "" {
		status = StatusScheduled
	}

	sched := &ShiftSchedule{
		PersonID:    dto.PersonID,
		ShiftTypeID: dto.ShiftTypeID,
		UnitID:      dto.UnitID,
		ShiftDate:   dto.ShiftDate,
		StartTime:   dto.StartTime,
		EndTime:     dto.EndTime,
		Status:      status,
		Notes:       dto.Notes,
		IsActive:    true,
	}

	if err := s.repo.Create(sched); err != nil {
		s.logger.Error("failed to create shift schedule", "error", err, "person_id", dto.PersonID)
		return nil, internal.NewInternalError("failed to create shift schedule", err)
	}

	s.logger.Info("shift schedule created", "shift_id", sched.ID, "person_id", sched.PersonID)
	return sched, nil
}

func (s *Service) UpdateShift(id int64, dto UpdateShiftDTO) (*ShiftSchedule, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, dto.Patch())
	if err != nil {
		return nil, err
	}

	s.logger.Info("shift schedule updated", "shift_id", id)
	return updated, nil
}

func (s *Service) DeleteShift(id int64) error {
	if err := s.repo.SoftDelete(id); err != nil {
		s.logger.Error("failed to delete shift schedule", "error", err, "shift_id", id)
		return internal.NewInternalError("failed to delete shift schedule", err)
	}
	return nil
}
