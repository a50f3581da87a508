package shift

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

// Shift attendance statuses.
const (
	StatusScheduled = "scheduled"
	StatusPresent   = "present"
	StatusAbsent    = "absent"
	StatusJustified = "justified"
)

var ErrShiftNotFound = internal.NewNotFoundError("shift schedule not found", internal.ErrCodeShiftNotFound)

// ShiftSchedule assigns a person to a shift on a given date.
type ShiftSchedule struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	PersonID    int64     `json:"person_id" gorm:"column:person_id;not null"`
	ShiftTypeID int64     `json:"shift_type_id" gorm:"column:shift_type_id;not null"`
	UnitID      int64     `json:"unit_id" gorm:"column:unit_id;not null"`
	ShiftDate   time.Time `json:"shift_date" gorm:"column:shift_date;type:date;not null"`
	StartTime   string    `json:"start_time" gorm:"column:start_time"`
	EndTime     string    `json:"end_time" gorm:"column:end_time"`
	Status      string    `json:"status" gorm:"column:status;not null"`
	Notes       string    `json:"notes" gorm:"column:notes"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (ShiftSchedule) TableName() string {
	return "shift_schedules"
}

type Filters struct {
	PersonID int64
	UnitID   int64
	DateFrom *time.Time
	DateTo   *time.Time
	Status   string
}

func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusPresent, StatusAbsent, StatusJustified:
		return true
	}
	return false
}
