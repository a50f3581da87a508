package weapon

import (
	"log/slog"
	"time"

	"github.com/frizen94/ERPRO/internal"
)

type Repository interface {
	ListItems(filters ItemFilters) ([]*WeaponItem, error)
	GetItemByID(id int64) (*WeaponItem, error)
	CreateItem(item *WeaponItem) error
	UpdateItem(id int64, patch map[string]interface{}) (*WeaponItem, error)
	SoftDeleteItem(id int64) error

	ListCheckouts(filters CheckoutFilters) ([]*WeaponCheckout, error)
	GetCheckoutByID(id int64) (*WeaponCheckout, error)
	CreateCheckout(checkout *WeaponCheckout) error
	CloseCheckout(id int64, returnedAt time.Time) error

	CountItemsBySituation(situation string) (int64, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListWeapons(filters ItemFilters) ([]*WeaponItem, error) {
	items, err := s.repo.ListItems(filters)
	if err != nil {
		s.logger.Error("failed to list weapons", "error", err)
		return nil, internal.NewInternalError("failed to list weapons", err)
	}
	return items, nil
}

func (s *Service) GetWeapon(id int64) (*WeaponItem, error) {
	return s.repo.GetItemByID(id)
}

func (s *Service) CreateWeapon(dto CreateWeaponDTO) (*WeaponItem, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	situation := dto.Situation
	if situation == "" {
		situation = SituationAvailable
	}

	item := &WeaponItem{
		SerialNumber:    dto.SerialNumber,
		WeaponTypeID:    dto.WeaponTypeID,
		Brand:           dto.Brand,
		Model:           dto.Model,
		ManufactureYear: dto.ManufactureYear,
		Situation:       situation,
		Notes:           dto.Notes,
		IsActive:        true,
	}

	if err := s.repo.CreateItem(item); err != nil {
		s.logger.Error("failed to create weapon", "error", err, "serial_number", dto.SerialNumber)
		return nil, err
	}

	s.logger.Info("weapon created", "weapon_id", item.ID, "serial_number", item.SerialNumber)
	return item, nil
}

func (s *Service) UpdateWeapon(id int64, dto UpdateWeaponDTO) (*WeaponItem, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateItem(id, dto.Patch())
	if err != nil {
		return nil, err
	}

	s.logger.Info("weapon updated", "weapon_id", id)
	return updated, nil
}

func (s *Service) DeleteWeapon(id int64) error {
	if err := s.repo.SoftDeleteItem(id); err != nil {
		s.logger.Error("failed to delete weapon", "error", err, "weapon_id", id)
		return internal.NewInternalError("failed to delete weapon", err)
	}
	return nil
}

func (s *Service) ListCheckouts(filters CheckoutFilters) ([]*WeaponCheckout, error) {
	checkouts, err := s.repo.ListCheckouts(filters)
	if err != nil {
		s.logger.Error("failed to list weapon checkouts", "error", err)
		return nil, internal.NewInternalError("failed to list weapon checkouts", err)
	}
	return checkouts, nil
}

// CheckoutWeapon hands an available weapon to a person: it records the
// checkout and moves the weapon to in_use.
func (s *Service) CheckoutWeapon(weaponID int64, dto CheckoutDTO) (*WeaponCheckout, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByID(weaponID)
	if err != nil {
		return nil, err
	}
	if !item.CanBeCheckedOut() {
		s.logger.Warn("checkout refused", "weapon_id", weaponID, "situation", item.Situation)
		return nil, ErrWeaponUnavailable
	}

	checkout := &WeaponCheckout{
		WeaponID:     weaponID,
		PersonID:     dto.PersonID,
		CheckedOutAt: time.Now(),
		Purpose:      dto.Purpose,
		Notes:        dto.Notes,
		IsActive:     true,
	}

	if err := s.repo.CreateCheckout(checkout); err != nil {
		s.logger.Error("failed to create weapon checkout", "error", err, "weapon_id", weaponID)
		return nil, internal.NewInternalError("failed to create weapon checkout", err)
	}

	if _, err := s.repo.UpdateItem(weaponID, map[string]interface{}{"situation": SituationInUse}); err != nil {
		s.logger.Error("failed to mark weapon in use", "error", err, "weapon_id", weaponID)
		return nil, err
	}

	s.logger.Info("weapon checked out",
		"checkout_id", checkout.ID,
		"weapon_id", weaponID,
		"person_id", dto.PersonID)
	return checkout, nil
}

// ReturnWeapon closes an open checkout and moves the weapon back to
// available.
func (s *Service) ReturnWeapon(checkoutID int64) (*WeaponCheckout, error) {
	checkout, err := s.repo.GetCheckoutByID(checkoutID)
	if err != nil {
		return nil, err
	}
	if !checkout.IsOpen() {
		return nil, ErrCheckoutAlreadyClosed
	}

	returnedAt := time.Now()
	if err := s.repo.CloseCheckout(checkoutID, returnedAt); err != nil {
		s.logger.Error("failed to close weapon checkout", "error", err, "checkout_id", checkoutID)
		return nil, internal.NewInternalError("failed to close weapon checkout", err)
	}

	if _, err := s.repo.UpdateItem(checkout.WeaponID, map[string]interface{}{"situation": SituationAvailable}); err != nil {
		s.logger.Error("failed to mark weapon available", "error", err, "weapon_id", checkout.WeaponID)
		return nil, err
	}

	checkout.ReturnedAt = &returnedAt
	s.logger.Info("weapon returned", "checkout_id", checkoutID, "weapon_id", checkout.WeaponID)
	return checkout, nil
}
