package postgres_test

import (
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal/shift"
	shiftPostgres "github.com/frizen94/ERPRO/internal/shift/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestShiftRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Shift Repository Suite")
}

var _ = Describe("Shift Repository", func() {
	var repo shift.Repository

	day := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		Expect(err).NotTo(HaveOccurred())
		return d
	}

	newShift := func(personID, unitID int64, date, status string) *shift.ShiftSchedule {
		return &shift.ShiftSchedule{
			PersonID:    personID,
			ShiftTypeID: 1,
			UnitID:      unitID,
			ShiftDate:   day(date),
			StartTime:   "08:00",
			EndTime:     "16:00",
			Status:      status,
			IsActive:    true,
		}
	}

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&shift.ShiftSchedule{})).To(Succeed())

		repo = shiftPostgres.NewShiftRepository(db)
	})

	Describe("List", func() {
		BeforeEach(func() {
			Expect(repo.Create(newShift(1, 10, "2024-03-04", shift.StatusScheduled))).To(Succeed())
			Expect(repo.Create(newShift(1, 10, "2024-03-11", shift.StatusPresent))).To(Succeed())
			Expect(repo.Create(newShift(2, 20, "2024-03-18", shift.StatusAbsent))).To(Succeed())
		})

		It("returns everything without filters", func() {
			shifts, err := repo.List(shift.Filters{})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(HaveLen(3))
		})

		It("filters by person", func() {
			shifts, err := repo.List(shift.Filters{PersonID: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(HaveLen(1))
			Expect(shifts[0].PersonID).To(Equal(int64(2)))
		})

		It("filters by unit", func() {
			shifts, err := repo.List(shift.Filters{UnitID: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(HaveLen(2))
		})

		It("filters by date range", func() {
			from := day("2024-03-08")
			to := day("2024-03-15")
			shifts, err := repo.List(shift.Filters{DateFrom: &from, DateTo: &to})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(HaveLen(1))
			Expect(shifts[0].Status).To(Equal(shift.StatusPresent))
		})

		It("filters by status", func() {
			shifts, err := repo.List(shift.Filters{Status: shift.StatusAbsent})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(HaveLen(1))
			Expect(shifts[0].PersonID).To(Equal(int64(2)))
		})

		It("hides soft-deleted schedules", func() {
			shifts, err := repo.List(shift.Filters{PersonID: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(HaveLen(1))

			Expect(repo.SoftDelete(shifts[0].ID)).To(Succeed())

			shifts, err = repo.List(shift.Filters{PersonID: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("patches the status", func() {
			sched := newShift(1, 10, "2024-03-04", shift.StatusScheduled)
			Expect(repo.Create(sched)).To(Succeed())

			updated, err := repo.Update(sched.ID, map[string]interface{}{"status": shift.StatusPresent})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(shift.StatusPresent))
			Expect(updated.StartTime).To(Equal("08:00"))
		})

		It("returns not found for a missing schedule", func() {
			_, err := repo.Update(4242, map[string]interface{}{"status": shift.StatusPresent})
			Expect(err).To(MatchError(shift.ErrShiftNotFound))
		})
	})

	Describe("GetByID", func() {
		It("returns not found for an unknown id", func() {
			_, err := repo.GetByID(4242)
			Expect(err).To(MatchError(shift.ErrShiftNotFound))
		})
	})
})
