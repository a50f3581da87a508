// Package dashboard serves the landing-page aggregates: headline counters
// and a short recent-activity feed. Everything here is read-only and
// computed from the operational tables at request time.
package dashboard

import "time"

type Stats struct {
	ActiveStaffCount    int64 `json:"active_staff_count"`
	ActiveAbsenceCount  int64 `json:"active_absence_count"`
	PendingPerDiemCount int64 `json:"pending_per_diem_count"`
	WeaponsInUseCount   int64 `json:"weapons_in_use_count"`
}

const (
	KindPersonCreated  = "person_created"
	KindPerDiemCreated = "per_diem_created"
)

// Activity is one entry of the recent-activity feed. The feed is a
// best-effort convenience for the landing page, not an audit trail.
type Activity struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	PersonName  string    `json:"person_name,omitempty"`
}
