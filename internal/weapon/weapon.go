package weapon

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

// Weapon situations.
const (
	SituationAvailable      = "available"
	SituationInUse          = "in_use"
	SituationMaintenance    = "maintenance"
	SituationDecommissioned = "decommissioned"
)

var (
	ErrWeaponNotFound        = internal.NewNotFoundError("weapon not found", internal.ErrCodeWeaponNotFound)
	ErrDuplicateSerialNumber = internal.NewConflictError("a weapon with this serial number already exists", internal.ErrCodeDuplicateSerialNumber)
	ErrCheckoutNotFound      = internal.NewNotFoundError("weapon checkout not found", internal.ErrCodeCheckoutNotFound)
	ErrWeaponUnavailable     = internal.NewValidationError("weapon is not available for checkout", internal.ErrCodeWeaponUnavailable)
	ErrCheckoutAlreadyClosed = internal.NewValidationError("checkout has already been returned", internal.ErrCodeCheckoutAlreadyClosed)
)

// WeaponItem is one inventory weapon identified by its serial number.
type WeaponItem struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	SerialNumber    string    `json:"serial_number" gorm:"column:serial_number;not null;unique"`
	WeaponTypeID    int64     `json:"weapon_type_id" gorm:"column:weapon_type_id;not null"`
	Brand           string    `json:"brand" gorm:"column:brand"`
	Model           string    `json:"model" gorm:"column:model"`
	ManufactureYear int       `json:"manufacture_year" gorm:"column:manufacture_year"`
	Situation       string    `json:"situation" gorm:"column:situation;not null"`
	Notes           string    `json:"notes" gorm:"column:notes"`
	IsActive        bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (WeaponItem) TableName() string {
	return "weapon_items"
}

// CanBeCheckedOut reports whether the weapon may leave the armory.
func (w *WeaponItem) CanBeCheckedOut() bool {
	return w.Situation == SituationAvailable
}

// WeaponCheckout records a weapon leaving the armory with a person. A nil
// ReturnedAt means the weapon is still out.
type WeaponCheckout struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	WeaponID     int64      `json:"weapon_id" gorm:"column:weapon_id;not null"`
	PersonID     int64      `json:"person_id" gorm:"column:person_id;not null"`
	CheckedOutAt time.Time  `json:"checked_out_at" gorm:"column:checked_out_at;not null"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty" gorm:"column:returned_at"`
	Purpose      string     `json:"purpose" gorm:"column:purpose"`
	Notes        string     `json:"notes" gorm:"column:notes"`
	IsActive     bool       `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (WeaponCheckout) TableName() string {
	return "weapon_checkouts"
}

func (c *WeaponCheckout) IsOpen() bool {
	return c.ReturnedAt == nil
}

type ItemFilters struct {
	WeaponTypeID int64
	Situation    string
	SerialNumber string
}

type CheckoutFilters struct {
	WeaponID int64
	PersonID int64
	OpenOnly bool
}

func ValidSituation(s string) bool {
	switch s {
	case SituationAvailable, SituationInUse, SituationMaintenance, SituationDecommissioned:
		return true
	}
	return false
}
