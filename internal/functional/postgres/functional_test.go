package postgres_test

import (
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal/functional"
	functionalPostgres "github.com/frizen94/ERPRO/internal/functional/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestFunctionalPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Functional Record Postgres Suite")
}

var _ = Describe("Functional Record PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo functional.Repository
	)

	newRecord := func(personID int64, registration string) *functional.FunctionalRecord {
		return &functional.FunctionalRecord{
			PersonID:           personID,
			RegistrationNumber: registration,
			PositionID:         1,
			UnitID:             1,
			Status:             functional.StatusActive,
			IsActive:           true,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&functional.FunctionalRecord{})
		Expect(err).NotTo(HaveOccurred())

		repo = functionalPostgres.NewFunctionalRecordRepository(db)
	})

	Describe("Create", func() {
		It("rejects a duplicate registration number", func() {
			Expect(repo.Create(newRecord(1, "REG-001"))).To(Succeed())

			err := repo.Create(newRecord(2, "REG-001"))
			Expect(err).To(MatchError(functional.ErrDuplicateRegistration))
		})
	})

	Describe("GetLatestByPerson", func() {
		It("returns the newest active record of the person", func() {
			older := newRecord(1, "REG-001")
			Expect(repo.Create(older)).To(Succeed())

			// Force a distinct creation timestamp.
			time.Sleep(5 * time.Millisecond)
			newer := newRecord(1, "REG-002")
			Expect(repo.Create(newer)).To(Succeed())

			latest, err := repo.GetLatestByPerson(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.RegistrationNumber).To(Equal("REG-002"))
		})

		It("skips soft-deleted records", func() {
			first := newRecord(1, "REG-001")
			Expect(repo.Create(first)).To(Succeed())
			time.Sleep(5 * time.Millisecond)
			second := newRecord(1, "REG-002")
			Expect(repo.Create(second)).To(Succeed())
			Expect(repo.SoftDelete(second.ID)).To(Succeed())

			latest, err := repo.GetLatestByPerson(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.RegistrationNumber).To(Equal("REG-001"))
		})

		It("returns not found when the person has no record", func() {
			_, err := repo.GetLatestByPerson(4242)
			Expect(err).To(MatchError(functional.ErrRecordNotFound))
		})
	})

	Describe("List", func() {
		It("filters by status", func() {
			Expect(repo.Create(newRecord(1, "REG-001"))).To(Succeed())
			retired := newRecord(2, "REG-002")
			retired.Status = functional.StatusRetired
			Expect(repo.Create(retired)).To(Succeed())

			records, err := repo.List(functional.Filters{Status: functional.StatusRetired})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].RegistrationNumber).To(Equal("REG-002"))
		})
	})
})
