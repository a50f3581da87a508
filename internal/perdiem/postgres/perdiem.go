package postgres

import (
	"errors"
	"time"

	"github.com/frizen94/ERPRO/internal/perdiem"
	"gorm.io/gorm"
)

type PerDiemRepository struct {
	db *gorm.DB
}

func NewPerDiemRepository(db *gorm.DB) perdiem.Repository {
	return &PerDiemRepository{db: db}
}

func (r *PerDiemRepository) List(filters perdiem.Filters) ([]*perdiem.PerDiemRequest, error) {
	var requests []*perdiem.PerDiemRequest

	query := r.db.Where("is_active = ?", true)
	if filters.PersonID > 0 {
		query = query.Where("person_id = ?", filters.PersonID)
	}
	if filters.StatusID > 0 {
		query = query.Where("status_id = ?", filters.StatusID)
	}
	if filters.StartFrom != nil {
		query = query.Where("start_date >= ?", filters.StartFrom.Format("2006-01-02"))
	}
	if filters.EndTo != nil {
		query = query.Where("end_date <= ?", filters.EndTo.Format("2006-01-02"))
	}

	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *PerDiemRepository) GetByID(id int64) (*perdiem.PerDiemRequest, error) {
	var req perdiem.PerDiemRequest
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perdiem.ErrPerDiemNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *PerDiemRepository) Create(req *perdiem.PerDiemRequest) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	return r.db.Create(req).Error
}

func (r *PerDiemRepository) Update(id int64, patch map[string]interface{}) (*perdiem.PerDiemRequest, error) {
	patch["updated_at"] = time.Now()

	res := r.db.Model(&perdiem.PerDiemRequest{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, perdiem.ErrPerDiemNotFound
	}

	return r.GetByID(id)
}

func (r *PerDiemRepository) SoftDelete(id int64) error {
	return r.db.Model(&perdiem.PerDiemRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}
