package postgres

import (
	"errors"
	"time"

	"github.com/frizen94/ERPRO/internal/absence"
	"gorm.io/gorm"
)

type AbsenceRepository struct {
	db *gorm.DB
}

func NewAbsenceRepository(db *gorm.DB) absence.Repository {
	return &AbsenceRepository{db: db}
}

func (r *AbsenceRepository) List(filters absence.Filters) ([]*absence.Absence, error) {
	var absences []*absence.Absence

	query := r.db.Where("is_active = ?", true)
	if filters.PersonID > 0 {
		query = query.Where("person_id = ?", filters.PersonID)
	}
	if filters.AbsenceTypeID > 0 {
		query = query.Where("absence_type_id = ?", filters.AbsenceTypeID)
	}
	if filters.ActiveOn != nil {
		day := filters.ActiveOn.Format("2006-01-02")
		query = query.Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", day, day)
	}

	err := query.Order("created_at DESC").Find(&absences).Error
	return absences, err
}

func (r *AbsenceRepository) GetByID(id int64) (*absence.Absence, error) {
	var a absence.Absence
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, absence.ErrAbsenceNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AbsenceRepository) Create(a *absence.Absence) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	return r.db.Create(a).Error
}

func (r *AbsenceRepository) Update(id int64, patch map[string]interface{}) (*absence.Absence, error) {
	patch["updated_at"] = time.Now()

	res := r.db.Model(&absence.Absence{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, absence.ErrAbsenceNotFound
	}

	return r.GetByID(id)
}

func (r *AbsenceRepository) SoftDelete(id int64) error {
	return r.db.Model(&absence.Absence{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
