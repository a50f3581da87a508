package postgres

import (
	"errors"
	"strings"
	"time"

	"github.com/frizen94/ERPRO/internal/person"
	"gorm.io/gorm"
)

// PersonRepository implements person.Repository using GORM.
type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) person.Repository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) List(filters person.Filters) ([]*person.Person, error) {
	var persons []*person.Person

	query := r.db.Where("is_active = ?", true)
	if filters.Name != "" {
		query = query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}
	if filters.NationalID != "" {
		query = query.Where("national_id = ?", filters.NationalID)
	}
	if filters.PersonType != "" {
		query = query.Where("person_type = ?", filters.PersonType)
	}

	err := query.Order("created_at DESC").Find(&persons).Error
	return persons, err
}

func (r *PersonRepository) GetByID(id int64) (*person.Person, error) {
	var p person.Person
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, person.ErrPersonNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) GetByNationalID(nationalID string) (*person.Person, error) {
	var p person.Person
	err := r.db.Where("national_id = ? AND is_active = ?", nationalID, true).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, person.ErrPersonNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts the person. The unique constraint on national_id is the
// sole duplicate guard; the translated violation becomes the domain
// conflict error.
func (r *PersonRepository) Create(p *person.Person) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := r.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return person.ErrDuplicateNationalID
		}
		return err
	}
	return nil
}

// Update applies a partial patch and re-stamps updated_at. Zero affected
// rows means the person does not exist (or is soft-deleted) and surfaces as
// not found.
func (r *PersonRepository) Update(id int64, patch map[string]interface{}) (*person.Person, error) {
	patch["updated_at"] = time.Now()

	res := r.db.Model(&person.Person{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, person.ErrDuplicateNationalID
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, person.ErrPersonNotFound
	}

	return r.GetByID(id)
}

// SoftDelete flips is_active off. Idempotent: deleting an absent or already
// deleted person is not an error.
func (r *PersonRepository) SoftDelete(id int64) error {
	return r.db.Model(&person.Person{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
