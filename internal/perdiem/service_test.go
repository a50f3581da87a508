package perdiem_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal/perdiem"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPerDiemService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PerDiem Service Suite")
}

// MockRepository implements perdiem.Repository for testing.
type MockRepository struct {
	requests map[int64]*perdiem.PerDiemRequest
	nextID   int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{requests: make(map[int64]*perdiem.PerDiemRequest), nextID: 1}
}

func (m *MockRepository) List(filters perdiem.Filters) ([]*perdiem.PerDiemRequest, error) {
	var result []*perdiem.PerDiemRequest
	for _, r := range m.requests {
		if r.IsActive {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *MockRepository) GetByID(id int64) (*perdiem.PerDiemRequest, error) {
	r, ok := m.requests[id]
	if !ok || !r.IsActive {
		return nil, perdiem.ErrPerDiemNotFound
	}
	return r, nil
}

func (m *MockRepository) Create(r *perdiem.PerDiemRequest) error {
	r.ID = m.nextID
	m.nextID++
	m.requests[r.ID] = r
	return nil
}

func (m *MockRepository) Update(id int64, patch map[string]interface{}) (*perdiem.PerDiemRequest, error) {
	r, ok := m.requests[id]
	if !ok || !r.IsActive {
		return nil, perdiem.ErrPerDiemNotFound
	}
	if statusID, ok := patch["status_id"].(int64); ok {
		r.StatusID = statusID
	}
	return r, nil
}

func (m *MockRepository) SoftDelete(id int64) error {
	if r, ok := m.requests[id]; ok {
		r.IsActive = false
	}
	return nil
}

// MockStatusResolver maps status names to ids.
type MockStatusResolver struct {
	statuses map[string]int64
	calls    int
}

func (m *MockStatusResolver) PerDiemStatusIDByName(name string) (int64, error) {
	m.calls++
	id, ok := m.statuses[name]
	if !ok {
		return 0, perdiem.ErrPerDiemNotFound
	}
	return id, nil
}

var _ = Describe("PerDiem Service", func() {
	var (
		repo     *MockRepository
		statuses *MockStatusResolver
		svc      *perdiem.Service
	)

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	validDTO := func() perdiem.CreatePerDiemDTO {
		return perdiem.CreatePerDiemDTO{
			PersonID:       1,
			Destination:    "Capital",
			Purpose:        "Training course",
			StartDate:      day(2024, 3, 4),
			EndDate:        day(2024, 3, 6),
			DailyRateCents: 15000,
			TransportCents: 8000,
		}
	}

	BeforeEach(func() {
		repo = NewMockRepository()
		statuses = &MockStatusResolver{statuses: map[string]int64{perdiem.PendingStatusName: 7}}
		svc = perdiem.NewService(repo, statuses, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("CreateRequest", func() {
		It("defaults a new request to the pending status resolved by name", func() {
			req, err := svc.CreateRequest(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(req.StatusID).To(Equal(int64(7)))
			Expect(statuses.calls).To(Equal(1))
		})

		It("keeps an explicitly chosen status", func() {
			dto := validDTO()
			dto.StatusID = 3

			req, err := svc.CreateRequest(dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.StatusID).To(Equal(int64(3)))
			Expect(statuses.calls).To(BeZero())
		})

		It("computes the total from the inclusive day count when absent", func() {
			req, err := svc.CreateRequest(validDTO())
			Expect(err).NotTo(HaveOccurred())
			// 3 days x 15000 + 8000 transport.
			Expect(req.TotalCents).To(Equal(int64(53000)))
		})

		It("keeps an explicitly provided total", func() {
			dto := validDTO()
			dto.TotalCents = 99000

			req, err := svc.CreateRequest(dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.TotalCents).To(Equal(int64(99000)))
		})

		It("generates a process number when none is given", func() {
			req, err := svc.CreateRequest(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(req.ProcessNumber).NotTo(BeEmpty())
		})

		It("rejects an end date before the start date", func() {
			dto := validDTO()
			dto.EndDate = day(2024, 3, 1)

			_, err := svc.CreateRequest(dto)
			Expect(err).To(HaveOccurred())
		})

		It("fails when the pending status cannot be resolved", func() {
			statuses.statuses = map[string]int64{}

			_, err := svc.CreateRequest(validDTO())
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateRequest", func() {
		It("returns not found for a missing request", func() {
			statusID := int64(3)
			_, err := svc.UpdateRequest(4242, perdiem.UpdatePerDiemDTO{StatusID: &statusID})
			Expect(err).To(MatchError(perdiem.ErrPerDiemNotFound))
		})
	})
})
