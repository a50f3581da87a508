package postgres

import (
	"errors"
	"time"

	"github.com/frizen94/ERPRO/internal/weapon"
	"gorm.io/gorm"
)

// WeaponRepository implements weapon.Repository using GORM. It covers both
// the inventory items and their checkout records.
type WeaponRepository struct {
	db *gorm.DB
}

func NewWeaponRepository(db *gorm.DB) weapon.Repository {
	return &WeaponRepository{db: db}
}

func (r *WeaponRepository) ListItems(filters weapon.ItemFilters) ([]*weapon.WeaponItem, error) {
	var items []*weapon.WeaponItem

	query := r.db.Where("is_active = ?", true)
	if filters.WeaponTypeID != 0 {
		query = query.Where("weapon_type_id = ?", filters.WeaponTypeID)
	}
	if filters.Situation != "" {
		query = query.Where("situation = ?", filters.Situation)
	}
	if filters.SerialNumber != "" {
		query = query.Where("serial_number = ?", filters.SerialNumber)
	}

	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *WeaponRepository) GetItemByID(id int64) (*weapon.WeaponItem, error) {
	var item weapon.WeaponItem
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, weapon.ErrWeaponNotFound
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts the weapon. The unique constraint on serial_number is
// the sole duplicate guard.
func (r *WeaponRepository) CreateItem(item *weapon.WeaponItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return weapon.ErrDuplicateSerialNumber
		}
		return err
	}
	return nil
}

func (r *WeaponRepository) UpdateItem(id int64, patch map[string]interface{}) (*weapon.WeaponItem, error) {
	patch["updated_at"] = time.Now()

	res := r.db.Model(&weapon.WeaponItem{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, weapon.ErrDuplicateSerialNumber
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, weapon.ErrWeaponNotFound
	}

	return r.GetItemByID(id)
}

// SoftDeleteItem flips is_active off. Idempotent.
func (r *WeaponRepository) SoftDeleteItem(id int64) error {
	return r.db.Model(&weapon.WeaponItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *WeaponRepository) ListCheckouts(filters weapon.CheckoutFilters) ([]*weapon.WeaponCheckout, error) {
	var checkouts []*weapon.WeaponCheckout

	query := r.db.Where("is_active = ?", true)
	if filters.WeaponID != 0 {
		query = query.Where("weapon_id = ?", filters.WeaponID)
	}
	if filters.PersonID != 0 {
		query = query.Where("person_id = ?", filters.PersonID)
	}
	if filters.OpenOnly {
		query = query.Where("returned_at IS NULL")
	}

	err := query.Order("checked_out_at DESC").Find(&checkouts).Error
	return checkouts, err
}

func (r *WeaponRepository) GetCheckoutByID(id int64) (*weapon.WeaponCheckout, error) {
	var c weapon.WeaponCheckout
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, weapon.ErrCheckoutNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *WeaponRepository) CreateCheckout(checkout *weapon.WeaponCheckout) error {
	now := time.Now()
	checkout.CreatedAt = now
	checkout.UpdatedAt = now
	return r.db.Create(checkout).Error
}

func (r *WeaponRepository) CloseCheckout(id int64, returnedAt time.Time) error {
	res := r.db.Model(&weapon.WeaponCheckout{}).
		Where("id = ? AND is_active = ? AND returned_at IS NULL", id, true).
		Updates(map[string]interface{}{
			"returned_at": returnedAt,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return weapon.ErrCheckoutAlreadyClosed
	}
	return nil
}

func (r *WeaponRepository) CountItemsBySituation(situation string) (int64, error) {
	var count int64
	err := r.db.Model(&weapon.WeaponItem{}).
		Where("is_active = ? AND situation = ?", true, situation).
		Count(&count).Error
	return count, err
}
