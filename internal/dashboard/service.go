package dashboard

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/frizen94/ERPRO/internal/perdiem"
)

type Repository interface {
	CountActiveStaff() (int64, error)
	CountActiveAbsences(on time.Time) (int64, error)
	CountPerDiemsByStatus(statusID int64) (int64, error)
	CountWeaponsInUse() (int64, error)
	RecentPersonActivities(limit int) ([]Activity, error)
	RecentPerDiemActivities(limit int) ([]Activity, error)
}

const activityFeedCap = 5

type Service struct {
	repo     Repository
	statuses perdiem.StatusResolver
	logger   *slog.Logger

	mu        sync.Mutex
	pendingID int64
}

func NewService(repo Repository, statuses perdiem.StatusResolver, logger *slog.Logger) *Service {
	return &Service{repo: repo, statuses: statuses, logger: logger}
}

// pendingStatusID resolves the "pending" per-diem status once and caches the
// id for the process lifetime. Only a successful resolution is cached, so a
// not-yet-seeded database recovers without a restart.
func (s *Service) pendingStatusID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingID != 0 {
		return s.pendingID, nil
	}

	id, err := s.statuses.PerDiemStatusIDByName(perdiem.PendingStatusName)
	if err != nil {
		return 0, err
	}
	s.pendingID = id
	return id, nil
}

func (s *Service) Stats() (*Stats, error) {
	staff, err := s.repo.CountActiveStaff()
	if err != nil {
		return nil, err
	}

	absences, err := s.repo.CountActiveAbsences(time.Now())
	if err != nil {
		return nil, err
	}

	pendingID, err := s.pendingStatusID()
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPerDiemsByStatus(pendingID)
	if err != nil {
		return nil, err
	}

	weapons, err := s.repo.CountWeaponsInUse()
	if err != nil {
		return nil, err
	}

	return &Stats{
		ActiveStaffCount:    staff,
		ActiveAbsenceCount:  absences,
		PendingPerDiemCount: pending,
		WeaponsInUseCount:   weapons,
	}, nil
}

// RecentActivities merges the newest persons and per-diem requests into a
// single feed, newest first, capped at five entries.
func (s *Service) RecentActivities() ([]Activity, error) {
	persons, err := s.repo.RecentPersonActivities(3)
	if err != nil {
		return nil, err
	}

	perdiems, err := s.repo.RecentPerDiemActivities(2)
	if err != nil {
		return nil, err
	}

	feed := make([]Activity, 0, len(persons)+len(perdiems))
	feed = append(feed, persons...)
	feed = append(feed, perdiems...)

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if len(feed) > activityFeedCap {
		feed = feed[:activityFeedCap]
	}
	return feed, nil
}
