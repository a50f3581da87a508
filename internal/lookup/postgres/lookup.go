package postgres

import (
	"errors"
	"time"

	"github.com/frizen94/ERPRO/internal/lookup"
	"gorm.io/gorm"
)

// LookupRepository implements lookup.Repository using GORM. The eight
// reference tables share identical row semantics, so the per-table methods
// delegate to generic helpers.
type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository(db *gorm.DB) lookup.Repository {
	return &LookupRepository{db: db}
}

func listAll[T any](db *gorm.DB) ([]*T, error) {
	var rows []*T
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&rows).Error
	return rows, err
}

func createRecord[T any](db *gorm.DB, rec *T) error {
	if err := db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return lookup.ErrDuplicateName
		}
		return err
	}
	return nil
}

func updateRecord[T any](db *gorm.DB, id int64, patch map[string]interface{}) (*T, error) {
	patch["updated_at"] = time.Now()

	res := db.Model(new(T)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, lookup.ErrDuplicateName
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, lookup.ErrLookupNotFound
	}

	var rec T
	if err := db.Where("id = ? AND is_active = ?", id, true).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func softDeleteRecord[T any](db *gorm.DB, id int64) error {
	return db.Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *LookupRepository) ListPositions() ([]*lookup.Position, error) {
	return listAll[lookup.Position](r.db)
}

func (r *LookupRepository) CreatePosition(p *lookup.Position) error {
	return createRecord(r.db, p)
}

func (r *LookupRepository) UpdatePosition(id int64, patch map[string]interface{}) (*lookup.Position, error) {
	return updateRecord[lookup.Position](r.db, id, patch)
}

func (r *LookupRepository) SoftDeletePosition(id int64) error {
	return softDeleteRecord[lookup.Position](r.db, id)
}

func (r *LookupRepository) ListUnits() ([]*lookup.OrganizationalUnit, error) {
	return listAll[lookup.OrganizationalUnit](r.db)
}

func (r *LookupRepository) GetUnitByID(id int64) (*lookup.OrganizationalUnit, error) {
	var u lookup.OrganizationalUnit
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookup.ErrLookupNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *LookupRepository) CreateUnit(u *lookup.OrganizationalUnit) error {
	return createRecord(r.db, u)
}

func (r *LookupRepository) UpdateUnit(id int64, patch map[string]interface{}) (*lookup.OrganizationalUnit, error) {
	return updateRecord[lookup.OrganizationalUnit](r.db, id, patch)
}

func (r *LookupRepository) SoftDeleteUnit(id int64) error {
	return softDeleteRecord[lookup.OrganizationalUnit](r.db, id)
}

func (r *LookupRepository) ListStates() ([]*lookup.State, error) {
	return listAll[lookup.State](r.db)
}

func (r *LookupRepository) CreateState(s *lookup.State) error {
	return createRecord(r.db, s)
}

func (r *LookupRepository) UpdateState(id int64, patch map[string]interface{}) (*lookup.State, error) {
	return updateRecord[lookup.State](r.db, id, patch)
}

func (r *LookupRepository) SoftDeleteState(id int64) error {
	return softDeleteRecord[lookup.State](r.db, id)
}

func (r *LookupRepository) ListMunicipalities(stateID int64) ([]*lookup.Municipality, error) {
	var rows []*lookup.Municipality
	query := r.db.Where("is_active = ?", true)
	if stateID != 0 {
		query = query.Where("state_id = ?", stateID)
	}
	err := query.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *LookupRepository) CreateMunicipality(m *lookup.Municipality) error {
	return createRecord(r.db, m)
}

func (r *LookupRepository) UpdateMunicipality(id int64, patch map[string]interface{}) (*lookup.Municipality, error) {
	return updateRecord[lookup.Municipality](r.db, id, patch)
}

func (r *LookupRepository) SoftDeleteMunicipality(id int64) error {
	return softDeleteRecord[lookup.Municipality](r.db, id)
}

func (r *LookupRepository) ListAbsenceTypes() ([]*lookup.AbsenceType, error) {
	return listAll[lookup.AbsenceType](r.db)
}

func (r *LookupRepository) CreateAbsenceType(t *lookup.AbsenceType) error {
	return createRecord(r.db, t)
}

func (r *LookupRepository) UpdateAbsenceType(id int64, patch map[string]interface{}) (*lookup.AbsenceType, error) {
	return updateRecord[lookup.AbsenceType](r.db, id, patch)
}

func (r *LookupRepository) SoftDeleteAbsenceType(id int64) error {
	return softDeleteRecord[lookup.AbsenceType](r.db, id)
}

func (r *LookupRepository) ListShiftTypes() ([]*lookup.ShiftType, error) {
	return listAll[lookup.ShiftType](r.db)
}

func (r *LookupRepository) CreateShiftType(t *lookup.ShiftType) error {
	return createRecord(r.db, t)
}

func (r *LookupRepository) UpdateShiftType(id int64, patch map[string]interface{}) (*lookup.ShiftType, error) {
	return updateRecord[lookup.ShiftType](r.db, id, patch)
}

func (r *LookupRepository) SoftDeleteShiftType(id int64) error {
	return softDeleteRecord[lookup.ShiftType](r.db, id)
}

func (r *LookupRepository) ListPerDiemStatuses() ([]*lookup.PerDiemStatus, error) {
	return listAll[lookup.PerDiemStatus](r.db)
}

func (r *LookupRepository) GetPerDiemStatusByName(name string) (*lookup.PerDiemStatus, error) {
	var st lookup.PerDiemStatus
	err := r.db.Where("name = ? AND is_active = ?", name, true).First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookup.ErrLookupNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *LookupRepository) CreatePerDiemStatus(st *lookup.PerDiemStatus) error {
	return createRecord(r.db, st)
}

func (r *LookupRepository) UpdatePerDiemStatus(id int64, patch map[string]interface{}) (*lookup.PerDiemStatus, error) {
	return updateRecord[lookup.PerDiemStatus](r.db, id, patch)
}

func (r *LookupRepository) SoftDeletePerDiemStatus(id int64) error {
	return softDeleteRecord[lookup.PerDiemStatus](r.db, id)
}

func (r *LookupRepository) ListWeaponTypes() ([]*lookup.WeaponType, error) {
	return listAll[lookup.WeaponType](r.db)
}

func (r *LookupRepository) CreateWeaponType(t *lookup.WeaponType) error {
	return createRecord(r.db, t)
}

func (r *LookupRepository) UpdateWeaponType(id int64, patch map[string]interface{}) (*lookup.WeaponType, error) {
	return updateRecord[lookup.WeaponType](r.db, id, patch)
}

func (r *LookupRepository) SoftDeleteWeaponType(id int64) error {
	return softDeleteRecord[lookup.WeaponType](r.db, id)
}
