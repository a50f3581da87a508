package functional

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

// Employment statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusRetired   = "retired"
	StatusDismissed = "dismissed"
)

var (
	ErrRecordNotFound        = internal.NewNotFoundError("functional record not found", internal.ErrCodeRecordNotFound)
	ErrDuplicateRegistration = internal.NewConflictError("a record with this registration number already exists", internal.ErrCodeDuplicateRegistration)
)

// FunctionalRecord is the employment record of a person: registration,
// position, unit and the dates of the appointment lifecycle. By convention
// a person has at most one active record; reads fetch the newest.
type FunctionalRecord struct {
	ID                 int64      `json:"id" gorm:"primaryKey"`
	PersonID           int64      `json:"person_id" gorm:"column:person_id;not null"`
	RegistrationNumber string     `json:"registration_number" gorm:"column:registration_number;not null;unique"`
	PositionID         int64      `json:"position_id" gorm:"column:position_id;not null"`
	UnitID             int64      `json:"unit_id" gorm:"column:unit_id;not null"`
	AppointmentDate    *time.Time `json:"appointment_date,omitempty" gorm:"column:appointment_date;type:date"`
	PossessionDate     *time.Time `json:"possession_date,omitempty" gorm:"column:possession_date;type:date"`
	StartOfDutyDate    *time.Time `json:"start_of_duty_date,omitempty" gorm:"column:start_of_duty_date;type:date"`
	Status             string     `json:"status" gorm:"column:status;not null"`
	Notes              string     `json:"notes" gorm:"column:notes"`
	IsActive           bool       `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt          time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (FunctionalRecord) TableName() string {
	return "functional_records"
}

type Filters struct {
	PersonID int64
	UnitID   int64
	Status   string
}

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusRetired, StatusDismissed:
		return true
	}
	return false
}
