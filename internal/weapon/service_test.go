package weapon_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal/weapon"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestWeaponService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Weapon Service Suite")
}

// MockRepository implements weapon.Repository for testing.
type MockRepository struct {
	items          map[int64]*weapon.WeaponItem
	checkouts      map[int64]*weapon.WeaponCheckout
	nextItemID     int64
	nextCheckoutID int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		items:          make(map[int64]*weapon.WeaponItem),
		checkouts:      make(map[int64]*weapon.WeaponCheckout),
		nextItemID:     1,
		nextCheckoutID: 1,
	}
}

func (m *MockRepository) ListItems(filters weapon.ItemFilters) ([]*weapon.WeaponItem, error) {
	var result []*weapon.WeaponItem
	for _, it := range m.items {
		if !it.IsActive {
			continue
		}
		if filters.Situation != "" && it.Situation != filters.Situation {
			continue
		}
		result = append(result, it)
	}
	return result, nil
}

func (m *MockRepository) GetItemByID(id int64) (*weapon.WeaponItem, error) {
	it, ok := m.items[id]
	if !ok || !it.IsActive {
		return nil, weapon.ErrWeaponNotFound
	}
	return it, nil
}

func (m *MockRepository) CreateItem(it *weapon.WeaponItem) error {
	for _, existing := range m.items {
		if existing.SerialNumber == it.SerialNumber {
			return weapon.ErrDuplicateSerialNumber
		}
	}
	it.ID = m.nextItemID
	m.nextItemID++
	m.items[it.ID] = it
	return nil
}

func (m *MockRepository) UpdateItem(id int64, patch map[string]interface{}) (*weapon.WeaponItem, error) {
	it, ok := m.items[id]
	if !ok || !it.IsActive {
		return nil, weapon.ErrWeaponNotFound
	}
	if situation, ok := patch["situation"].(string); ok {
		it.Situation = situation
	}
	return it, nil
}

func (m *MockRepository) SoftDeleteItem(id int64) error {
	if it, ok := m.items[id]; ok {
		it.IsActive = false
	}
	return nil
}

func (m *MockRepository) ListCheckouts(filters weapon.CheckoutFilters) ([]*weapon.WeaponCheckout, error) {
	var result []*weapon.WeaponCheckout
	for _, c := range m.checkouts {
		if !c.IsActive {
			continue
		}
		if filters.OpenOnly && c.ReturnedAt != nil {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (m *MockRepository) GetCheckoutByID(id int64) (*weapon.WeaponCheckout, error) {
	c, ok := m.checkouts[id]
	if !ok || !c.IsActive {
		return nil, weapon.ErrCheckoutNotFound
	}
	return c, nil
}

func (m *MockRepository) CreateCheckout(c *weapon.WeaponCheckout) error {
	c.ID = m.nextCheckoutID
	m.nextCheckoutID++
	m.checkouts[c.ID] = c
	return nil
}

func (m *MockRepository) CloseCheckout(id int64, returnedAt time.Time) error {
	c, ok := m.checkouts[id]
	if !ok || c.ReturnedAt != nil {
		return weapon.ErrCheckoutAlreadyClosed
	}
	c.ReturnedAt = &returnedAt
	return nil
}

func (m *MockRepository) CountItemsBySituation(situation string) (int64, error) {
	var count int64
	for _, it := range m.items {
		if it.IsActive && it.Situation == situation {
			count++
		}
	}
	return count, nil
}

var _ = Describe("Weapon Service", func() {
	var (
		repo *MockRepository
		svc  *weapon.Service
	)

	BeforeEach(func() {
		repo = NewMockRepository()
		svc = weapon.NewService(repo, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	addWeapon := func(situation string) *weapon.WeaponItem {
		it := &weapon.WeaponItem{
			SerialNumber: "SN-0001",
			WeaponTypeID: 1,
			Situation:    situation,
			IsActive:     true,
		}
		Expect(repo.CreateItem(it)).To(Succeed())
		return it
	}

	Describe("CheckoutWeapon", func() {
		It("creates a checkout and moves the weapon to in_use", func() {
			it := addWeapon(weapon.SituationAvailable)

			checkout, err := svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{PersonID: 9, Purpose: "patrol"})
			Expect(err).NotTo(HaveOccurred())
			Expect(checkout.WeaponID).To(Equal(it.ID))
			Expect(checkout.ReturnedAt).To(BeNil())
			Expect(checkout.CheckedOutAt).NotTo(BeZero())

			updated, err := repo.GetItemByID(it.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Situation).To(Equal(weapon.SituationInUse))
		})

		It("refuses a weapon that is not available", func() {
			it := addWeapon(weapon.SituationMaintenance)

			_, err := svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{PersonID: 9})
			Expect(err).To(MatchError(weapon.ErrWeaponUnavailable))
		})

		It("refuses a weapon that is already out", func() {
			it := addWeapon(weapon.SituationAvailable)

			_, err := svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{PersonID: 9})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{PersonID: 10})
			Expect(err).To(MatchError(weapon.ErrWeaponUnavailable))
		})

		It("requires a person", func() {
			it := addWeapon(weapon.SituationAvailable)

			_, err := svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("returns not found for an unknown weapon", func() {
			_, err := svc.CheckoutWeapon(4242, weapon.CheckoutDTO{PersonID: 9})
			Expect(err).To(MatchError(weapon.ErrWeaponNotFound))
		})
	})

	Describe("ReturnWeapon", func() {
		It("closes the checkout and moves the weapon back to available", func() {
			it := addWeapon(weapon.SituationAvailable)
			checkout, err := svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{PersonID: 9})
			Expect(err).NotTo(HaveOccurred())

			returned, err := svc.ReturnWeapon(checkout.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(returned.ReturnedAt).NotTo(BeNil())

			updated, err := repo.GetItemByID(it.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Situation).To(Equal(weapon.SituationAvailable))
		})

		It("rejects a second return of the same checkout", func() {
			it := addWeapon(weapon.SituationAvailable)
			checkout, err := svc.CheckoutWeapon(it.ID, weapon.CheckoutDTO{PersonID: 9})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ReturnWeapon(checkout.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.ReturnWeapon(checkout.ID)
			Expect(err).To(MatchError(weapon.ErrCheckoutAlreadyClosed))
		})

		It("returns not found for an unknown checkout", func() {
			_, err := svc.ReturnWeapon(4242)
			Expect(err).To(MatchError(weapon.ErrCheckoutNotFound))
		})
	})

	Describe("CreateWeapon", func() {
		It("surfaces the duplicate serial number conflict", func() {
			_, err := svc.CreateWeapon(weapon.CreateWeaponDTO{
				SerialNumber: "SN-0001",
				WeaponTypeID: 1,
				Situation:    weapon.SituationAvailable,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreateWeapon(weapon.CreateWeaponDTO{
				SerialNumber: "SN-0001",
				WeaponTypeID: 1,
				Situation:    weapon.SituationAvailable,
			})
			Expect(err).To(MatchError(weapon.ErrDuplicateSerialNumber))
		})
	})
})
