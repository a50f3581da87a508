package dashboard_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal"
	"github.com/frizen94/ERPRO/internal/dashboard"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDashboardService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dashboard Suite")
}

type MockRepository struct {
	staff       int64
	absences    int64
	perDiems    map[int64]int64
	weaponsOut  int64
	personFeed  []dashboard.Activity
	perDiemFeed []dashboard.Activity
}

func (m *MockRepository) CountActiveStaff() (int64, error) { return m.staff, nil }

func (m *MockRepository) CountActiveAbsences(on time.Time) (int64, error) { return m.absences, nil }

func (m *MockRepository) CountPerDiemsByStatus(statusID int64) (int64, error) {
	return m.perDiems[statusID], nil
}

func (m *MockRepository) CountWeaponsInUse() (int64, error) { return m.weaponsOut, nil }

func (m *MockRepository) RecentPersonActivities(limit int) ([]dashboard.Activity, error) {
	if len(m.personFeed) > limit {
		return m.personFeed[:limit], nil
	}
	return m.personFeed, nil
}

func (m *MockRepository) RecentPerDiemActivities(limit int) ([]dashboard.Activity, error) {
	if len(m.perDiemFeed) > limit {
		return m.perDiemFeed[:limit], nil
	}
	return m.perDiemFeed, nil
}

type MockStatusResolver struct {
	statuses map[string]int64
	calls    int
}

func (m *MockStatusResolver) PerDiemStatusIDByName(name string) (int64, error) {
	m.calls++
	id, ok := m.statuses[name]
	if !ok {
		return 0, internal.NewNotFoundError("per-diem status not found", internal.ErrCodeLookupNotFound)
	}
	return id, nil
}

var _ = Describe("Dashboard Service", func() {
	var (
		repo     *MockRepository
		resolver *MockStatusResolver
		svc      *dashboard.Service
	)

	BeforeEach(func() {
		repo = &MockRepository{
			staff:      12,
			absences:   3,
			perDiems:   map[int64]int64{7: 4},
			weaponsOut: 2,
		}
		resolver = &MockStatusResolver{statuses: map[string]int64{"pending": 7}}
		svc = dashboard.NewService(repo, resolver, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("Stats", func() {
		It("aggregates the four counters", func() {
			stats, err := svc.Stats()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.ActiveStaffCount).To(Equal(int64(12)))
			Expect(stats.ActiveAbsenceCount).To(Equal(int64(3)))
			Expect(stats.PendingPerDiemCount).To(Equal(int64(4)))
			Expect(stats.WeaponsInUseCount).To(Equal(int64(2)))
		})

		It("resolves the pending status once and caches the id", func() {
			_, err := svc.Stats()
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Stats()
			Expect(err).NotTo(HaveOccurred())
			Expect(resolver.calls).To(Equal(1))
		})

		It("retries resolution after a failure", func() {
			resolver.statuses = map[string]int64{}
			_, err := svc.Stats()
			Expect(err).To(HaveOccurred())

			resolver.statuses["pending"] = 7
			stats, err := svc.Stats()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.PendingPerDiemCount).To(Equal(int64(4)))
			Expect(resolver.calls).To(Equal(2))
		})
	})

	Describe("RecentActivities", func() {
		activity := func(kind string, minutesAgo int) dashboard.Activity {
			return dashboard.Activity{
				Kind:      kind,
				Timestamp: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
			}
		}

		It("merges both feeds newest first", func() {
			repo.personFeed = []dashboard.Activity{activity("person_created", 10), activity("person_created", 30)}
			repo.perDiemFeed = []dashboard.Activity{activity("per_diem_created", 20)}

			feed, err := svc.RecentActivities()
			Expect(err).NotTo(HaveOccurred())
			Expect(feed).To(HaveLen(3))
			Expect(feed[0].Kind).To(Equal("person_created"))
			Expect(feed[1].Kind).To(Equal("per_diem_created"))
			Expect(feed[2].Kind).To(Equal("person_created"))
		})

		It("caps the feed at five entries", func() {
			repo.personFeed = []dashboard.Activity{
				activity("person_created", 1),
				activity("person_created", 2),
				activity("person_created", 3),
				activity("person_created", 4),
			}
			repo.perDiemFeed = []dashboard.Activity{
				activity("per_diem_created", 5),
				activity("per_diem_created", 6),
			}

			feed, err := svc.RecentActivities()
			Expect(err).NotTo(HaveOccurred())
			Expect(feed).To(HaveLen(5))
		})
	})
})
