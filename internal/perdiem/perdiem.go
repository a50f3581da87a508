package perdiem

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

var ErrPerDiemNotFound = internal.NewNotFoundError("per-diem request not found", internal.ErrCodePerDiemNotFound)

// PerDiemRequest is a travel-allowance request for a date range and
// destination. Its status references the per_diem_statuses lookup table
// rather than an enum, so administrators can manage the set. Money is kept
// in integer cents.
type PerDiemRequest struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	PersonID       int64     `json:"person_id" gorm:"column:person_id;not null"`
	StatusID       int64     `json:"status_id" gorm:"column:status_id;not null"`
	Destination    string    `json:"destination" gorm:"column:destination;not null"`
	Purpose        string    `json:"purpose" gorm:"column:purpose"`
	StartDate      time.Time `json:"start_date" gorm:"column:start_date;type:date;not null"`
	EndDate        time.Time `json:"end_date" gorm:"column:end_date;type:date;not null"`
	DailyRateCents int64     `json:"daily_rate_cents" gorm:"column:daily_rate_cents"`
	TransportCents int64     `json:"transport_cents" gorm:"column:transport_cents"`
	TotalCents     int64     `json:"total_cents" gorm:"column:total_cents"`
	ProcessNumber  string    `json:"process_number" gorm:"column:process_number"`
	Notes          string    `json:"notes" gorm:"column:notes"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (PerDiemRequest) TableName() string {
	return "per_diem_requests"
}

// Days returns the number of allowance days, inclusive of both endpoints.
func (p *PerDiemRequest) Days() int64 {
	return int64(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

type Filters struct {
	PersonID int64
	StatusID int64
	// StartFrom is an inclusive lower bound on the start date.
	StartFrom *time.Time
	// EndTo is an inclusive upper bound on the end date.
	EndTo *time.Time
}
