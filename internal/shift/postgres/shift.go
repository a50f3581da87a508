package postgres

import (
	"errors"
	"time"

	"github.com/frizen94/ERPRO/internal/shift"
	"gorm.io/gorm"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) shift.Repository {
	return &ShiftRepository{db: db}
}

func (r *ShiftRepository) List(filters shift.Filters) ([]*shift.ShiftSchedule, error) {
	var shifts []*shift.ShiftSchedule

	query := r.db.Where("is_active = ?", true)
	if filters.PersonID > 0 {
		query = query.Where("person_id = ?", filters.PersonID)
	}
	if filters.UnitID > 0 {
		query = query.Where("unit_id = ?", filters.UnitID)
	}
	if filters.DateFrom != nil {
		query = query.Where("shift_date >= ?", filters.DateFrom.Format("2006-01-02"))
	}
	if filters.DateTo != nil {
		query = query.Where("shift_date <= ?", filters.DateTo.Format("2006-01-02"))
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	err := query.Order("created_at DESC").Find(&shifts).Error
	return shifts, err
}

func (r *ShiftRepository) GetByID(id int64) (*shift.ShiftSchedule, error) {
	var sched shift.ShiftSchedule
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&sched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shift.ErrShiftNotFound
		}
		return nil, err
	}
	return &sched, nil
}

func (r *ShiftRepository) Create(sched *shift.ShiftSchedule) error {
	now := time.Now()
	sched.CreatedAt = now
	sched.UpdatedAt = now
	return r.db.Create(sched).Error
}

func (r *ShiftRepository) Update(id int64, patch map[string]interface{}) (*shift.ShiftSchedule, error) {
	patch["updated_at"] = time.Now()

	res := r.db.Model(&shift.ShiftSchedule{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, shift.ErrShiftNotFound
	}

	return r.GetByID(id)
}

func (r *ShiftRepository) SoftDelete(id int64) error {
	return r.db.Model(&shift.ShiftSchedule{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
