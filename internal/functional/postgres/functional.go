package postgres

import (
	"errors"
	"time"

	"github.com/frizen94/ERPRO/internal/functional"
	"gorm.io/gorm"
)

type FunctionalRecordRepository struct {
	db *gorm.DB
}

func NewFunctionalRecordRepository(db *gorm.DB) functional.Repository {
	return &FunctionalRecordRepository{db: db}
}

func (r *FunctionalRecordRepository) List(filters functional.Filters) ([]*functional.FunctionalRecord, error) {
	var records []*functional.FunctionalRecord

	query := r.db.Where("is_active = ?", true)
	if filters.PersonID > 0 {
		query = query.Where("person_id = ?", filters.PersonID)
	}
	if filters.UnitID > 0 {
		query = query.Where("unit_id = ?", filters.UnitID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	err := query.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *FunctionalRecordRepository) GetByID(id int64) (*functional.FunctionalRecord, error) {
	var record functional.FunctionalRecord
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, functional.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *FunctionalRecordRepository) GetLatestByPerson(personID int64) (*functional.FunctionalRecord, error) {
	var record functional.FunctionalRecord
	err := r.db.Where("person_id = ? AND is_active = ?", personID, true).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, functional.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *FunctionalRecordRepository) Create(record *functional.FunctionalRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if err := r.db.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return functional.ErrDuplicateRegistration
		}
		return err
	}
	return nil
}

func (r *FunctionalRecordRepository) Update(id int64, patch map[string]interface{}) (*functional.FunctionalRecord, error) {
	patch["updated_at"] = time.Now()

	res := r.db.Model(&functional.FunctionalRecord{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, functional.ErrRecordNotFound
	}

	return r.GetByID(id)
}

func (r *FunctionalRecordRepository) SoftDelete(id int64) error {
	return r.db.Model(&functional.FunctionalRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
