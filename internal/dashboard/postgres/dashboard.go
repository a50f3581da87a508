package postgres

import (
	"fmt"
	"time"

	"github.com/frizen94/ERPRO/internal/absence"
	"github.com/frizen94/ERPRO/internal/dashboard"
	"github.com/frizen94/ERPRO/internal/perdiem"
	"github.com/frizen94/ERPRO/internal/person"
	"github.com/frizen94/ERPRO/internal/weapon"
	"gorm.io/gorm"
)

// DashboardRepository implements dashboard.Repository with read-only
// aggregate queries over the operational tables.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountActiveStaff() (int64, error) {
	var count int64
	err := r.db.Model(&person.Person{}).
		Where("is_active = ? AND person_type = ?", true, person.TypeStaff).
		Count(&count).Error
	return count, err
}

// CountActiveAbsences applies the derived-active rule at the given day:
// started on or before it and not yet ended.
func (r *DashboardRepository) CountActiveAbsences(on time.Time) (int64, error) {
	day := on.Format("2006-01-02")

	var count int64
	err := r.db.Model(&absence.Absence{}).
		Where("is_active = ?", true).
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", day, day).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountPerDiemsByStatus(statusID int64) (int64, error) {
	var count int64
	err := r.db.Model(&perdiem.PerDiemRequest{}).
		Where("is_active = ? AND status_id = ?", true, statusID).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) CountWeaponsInUse() (int64, error) {
	var count int64
	err := r.db.Model(&weapon.WeaponItem{}).
		Where("is_active = ? AND situation = ?", true, weapon.SituationInUse).
		Count(&count).Error
	return count, err
}

func (r *DashboardRepository) RecentPersonActivities(limit int) ([]dashboard.Activity, error) {
	var persons []*person.Person
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&persons).Error
	if err != nil {
		return nil, err
	}

	activities := make([]dashboard.Activity, 0, len(persons))
	for _, p := range persons {
		activities = append(activities, dashboard.Activity{
			ID:          p.ID,
			Kind:        dashboard.KindPersonCreated,
			Description: fmt.Sprintf("Person registered: %s", p.FullName),
			Timestamp:   p.CreatedAt,
			PersonName:  p.FullName,
		})
	}
	return activities, nil
}

func (r *DashboardRepository) RecentPerDiemActivities(limit int) ([]dashboard.Activity, error) {
	type row struct {
		ID          int64
		Destination string
		CreatedAt   time.Time
		PersonName  string
	}

	var rows []row
	err := r.db.Model(&perdiem.PerDiemRequest{}).
		Select("per_diem_requests.id, per_diem_requests.destination, per_diem_requests.created_at, persons.full_name AS person_name").
		Joins("LEFT JOIN persons ON persons.id = per_diem_requests.person_id").
		Where("per_diem_requests.is_active = ?", true).
		Order("per_diem_requests.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	activities := make([]dashboard.Activity, 0, len(rows))
	for _, rec := range rows {
		activities = append(activities, dashboard.Activity{
			ID:          rec.ID,
			Kind:        dashboard.KindPerDiemCreated,
			Description: fmt.Sprintf("Per-diem request to %s", rec.Destination),
			Timestamp:   rec.CreatedAt,
			PersonName:  rec.PersonName,
		})
	}
	return activities, nil
}
