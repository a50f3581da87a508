package absence

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

var ErrAbsenceNotFound = internal.NewNotFoundError("absence not found", internal.ErrCodeAbsenceNotFound)

// Absence is a leave period of a person. A nil EndDate means the absence is
// ongoing. Whether an absence is "currently active" is derived at query
// time from the date range, never stored.
type Absence struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	PersonID      int64      `json:"person_id" gorm:"column:person_id;not null"`
	AbsenceTypeID int64      `json:"absence_type_id" gorm:"column:absence_type_id;not null"`
	StartDate     time.Time  `json:"start_date" gorm:"column:start_date;type:date;not null"`
	EndDate       *time.Time `json:"end_date,omitempty" gorm:"column:end_date;type:date"`
	Reason        string     `json:"reason" gorm:"column:reason"`
	ProcessNumber string     `json:"process_number" gorm:"column:process_number"`
	Notes         string     `json:"notes" gorm:"column:notes"`
	IsActive      bool       `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Absence) TableName() string {
	return "absences"
}

// ActiveOn reports whether the absence covers the given date:
// start <= date and (no end or end >= date).
func (a *Absence) ActiveOn(date time.Time) bool {
	day := date.Truncate(24 * time.Hour)
	if a.StartDate.After(day) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(day)
}

type Filters struct {
	PersonID      int64
	AbsenceTypeID int64
	// ActiveOn restricts results to absences covering this date.
	ActiveOn *time.Time
}
