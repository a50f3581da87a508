// Package lookup holds the reference tables the operational entities point
// at: positions, organizational units, municipalities, states, absence
// types, shift types, per-diem statuses and weapon types. All of them are
// small name/code records sharing the same soft-delete lifecycle.
package lookup

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

var (
	ErrLookupNotFound     = internal.NewNotFoundError("lookup record not found", internal.ErrCodeLookupNotFound)
	ErrDuplicateName      = internal.NewConflictError("a record with this name already exists", internal.ErrCodeDuplicateLookupName)
	ErrUnitCycle          = internal.NewValidationError("organizational unit parent chain would form a cycle", internal.ErrCodeUnitCycle)
	ErrUnitParentNotFound = internal.NewValidationError("parent organizational unit not found", internal.ErrCodeLookupNotFound)
)

type Position struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Position) TableName() string { return "positions" }

// OrganizationalUnit is the single hierarchical lookup: units form a tree
// through ParentID. Depth is unbounded; the service keeps the chain acyclic.
type OrganizationalUnit struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	ParentID    *int64    `json:"parent_id,omitempty" gorm:"column:parent_id"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (OrganizationalUnit) TableName() string { return "organizational_units" }

type State struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Code      string    `json:"code" gorm:"column:code;not null"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (State) TableName() string { return "states" }

type Municipality struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"column:name;not null"`
	StateID   int64     `json:"state_id" gorm:"column:state_id;not null"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Municipality) TableName() string { return "municipalities" }

type AbsenceType struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (AbsenceType) TableName() string { return "absence_types" }

type ShiftType struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (ShiftType) TableName() string { return "shift_types" }

// PerDiemStatus rows drive the per-diem request workflow. Statuses are data,
// not an enum, so administrators can extend the workflow without a release;
// new requests attach to the row named "pending".
type PerDiemStatus struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (PerDiemStatus) TableName() string { return "per_diem_statuses" }

type WeaponType struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;not null;uniqueIndex"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (WeaponType) TableName() string { return "weapon_types" }
