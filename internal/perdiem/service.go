package perdiem

import (
	"log/slog"

	"github.com/frizen94/ERPRO/internal"
	"github.com/google/uuid"
)

// StatusResolver resolves a per-diem status by name; used to default new
// requests to the pending status without hardcoding its numeric id.
type StatusResolver interface {
	PerDiemStatusIDByName(name string) (int64, error)
}

// PendingStatusName is the well-known lookup row new requests default to.
const PendingStatusName = "pending"

type Repository interface {
	List(filters Filters) ([]*PerDiemRequest, error)
	GetByID(id int64) (*PerDiemRequest, error)
	Create(request *PerDiemRequest) error
	Update(id int64, patch map[string]interface{}) (*PerDiemRequest, error)
	SoftDelete(id int64) error
}

type Service struct {
	repo     Repository
	statuses StatusResolver
	logger   *slog.Logger
}

func NewService(repo Repository, statuses StatusResolver, logger *slog.Logger) *Service {
	return &Service{repo: repo, statuses: statuses, logger: logger}
}

func (s *Service) ListRequests(filters Filters) ([]*PerDiemRequest, error) {
	requests, err := s.repo.List(filters)
	if err != nil {
		s.logger.Error("failed to list per-diem requests", "error", err)
		return nil, internal.NewInternalError("failed to list per-diem requests", err)
	}
	return requests, nil
}

func (s *Service) GetRequest(id int64) (*PerDiemRequest, error) {
	return s.repo.GetByID(id)
}

func (s *Service) CreateRequest(dto CreatePerDiemDTO) (*PerDiemRequest, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	statusID := dto.StatusID
	if statusID == 0 {
		resolved, err := s.statuses.PerDiemStatusIDByName(PendingStatusName)
		if err != nil {
			s.logger.Error("failed to resolve pending per-diem status", "error", err)
			return nil, internal.NewInternalError("failed to resolve pending status", err)
		}
		statusID = resolved
	}

	processNumber := dto.ProcessNumber
	if processNumber == "" {
		processNumber = uuid.NewString()
	}

	req := &PerDiemRequest{
		PersonID:       dto.PersonID,
		StatusID:       statusID,
		Destination:    dto.Destination,
		Purpose:        dto.Purpose,
		StartDate:      dto.StartDate,
		EndDate:        dto.EndDate,
		DailyRateCents: dto.DailyRateCents,
		TransportCents: dto.TransportCents,
		TotalCents:     dto.TotalCents,
		ProcessNumber:  processNumber,
		Notes:          dto.Notes,
		IsActive:       true,
	}

	if req.TotalCents == 0 {
		req.TotalCents = req.Days()*req.DailyRateCents + req.TransportCents
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create per-diem request", "error", err, "person_id", dto.PersonID)
		return nil, internal.NewInternalError("failed to create per-diem request", err)
	}

	s.logger.Info("per-diem request created",
		"request_id", req.ID,
		"person_id", req.PersonID,
		"total_cents", req.TotalCents)
	return req, nil
}

func (s *Service) UpdateRequest(id int64, dto UpdatePerDiemDTO) (*PerDiemRequest, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, dto.Patch())
	if err != nil {
		return nil, err
	}

	s.logger.Info("per-diem request updated", "request_id", id)
	return updated, nil
}

func (s *Service) DeleteRequest(id int64) error {
	if err := s.repo.SoftDelete(id); err != nil {
		s.logger.Error("failed to delete per-diem request", "error", err, "request_id", id)
		return internal.NewInternalError("failed to delete per-diem request", err)
	}
	return nil
}
