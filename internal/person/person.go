package person

import (
	"time"

	"github.com/frizen94/ERPRO/internal"
)

// Person types.
const (
	TypeStaff      = "staff"
	TypeContractor = "contractor"
)

var (
	ErrPersonNotFound      = internal.NewNotFoundError("person not found", internal.ErrCodePersonNotFound)
	ErrDuplicateNationalID = internal.NewConflictError("a person with this national ID already exists", internal.ErrCodeDuplicateNationalID)
)

// Person is an individual managed by the organization, either permanent
// staff or a contractor. Rows are soft-deleted: IsActive false hides the
// record from every end-user-facing read.
type Person struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	FullName      string    `json:"full_name" gorm:"column:full_name;not null"`
	DisplayName   *string   `json:"display_name,omitempty" gorm:"column:display_name"`
	NationalID    string    `json:"national_id" gorm:"column:national_id;not null;unique"`
	SecondaryID   *string   `json:"secondary_id,omitempty" gorm:"column:secondary_id"`
	BirthDate     time.Time `json:"birth_date" gorm:"column:birth_date;type:date"`
	Sex           string    `json:"sex" gorm:"column:sex"`
	MaritalStatus string    `json:"marital_status" gorm:"column:marital_status"`
	MotherName    *string   `json:"mother_name,omitempty" gorm:"column:mother_name"`
	FatherName    *string   `json:"father_name,omitempty" gorm:"column:father_name"`
	Phone         *string   `json:"phone,omitempty" gorm:"column:phone"`
	Email         *string   `json:"email,omitempty" gorm:"column:email"`
	Address       *string   `json:"address,omitempty" gorm:"column:address"`
	PostalCode    *string   `json:"postal_code,omitempty" gorm:"column:postal_code"`
	PersonType    string    `json:"person_type" gorm:"column:person_type;not null"`
	IsActive      bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Person) TableName() string {
	return "persons"
}

// Filters narrow person list queries. Zero values mean "no filter".
type Filters struct {
	Name       string
	NationalID string
	PersonType string
}
