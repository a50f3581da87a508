package lookup_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/frizen94/ERPRO/internal/lookup"
	lookupPostgres "github.com/frizen94/ERPRO/internal/lookup/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLookupService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Lookup Suite")
}

var _ = Describe("Lookup Service", func() {
	var svc *lookup.Service

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&lookup.Position{},
			&lookup.OrganizationalUnit{},
			&lookup.State{},
			&lookup.Municipality{},
			&lookup.AbsenceType{},
			&lookup.ShiftType{},
			&lookup.PerDiemStatus{},
			&lookup.WeaponType{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo := lookupPostgres.NewLookupRepository(db)
		svc = lookup.NewService(repo, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("name tables", func() {
		It("creates and lists positions ordered by name", func() {
			_, err := svc.CreatePosition(lookup.NameDTO{Name: "Officer"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.CreatePosition(lookup.NameDTO{Name: "Clerk"})
			Expect(err).NotTo(HaveOccurred())

			positions, err := svc.ListPositions()
			Expect(err).NotTo(HaveOccurred())
			Expect(positions).To(HaveLen(2))
			Expect(positions[0].Name).To(Equal("Clerk"))
		})

		It("requires a name", func() {
			_, err := svc.CreatePosition(lookup.NameDTO{})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a duplicate name", func() {
			_, err := svc.CreatePosition(lookup.NameDTO{Name: "Officer"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreatePosition(lookup.NameDTO{Name: "Officer"})
			Expect(err).To(MatchError(lookup.ErrDuplicateName))
		})

		It("hides soft-deleted rows from lists", func() {
			p, err := svc.CreatePosition(lookup.NameDTO{Name: "Officer"})
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.DeletePosition(p.ID)).To(Succeed())

			positions, err := svc.ListPositions()
			Expect(err).NotTo(HaveOccurred())
			Expect(positions).To(BeEmpty())
		})

		It("returns not found when updating a missing row", func() {
			_, err := svc.UpdatePosition(4242, lookup.NameDTO{Name: "Ghost"})
			Expect(err).To(MatchError(lookup.ErrLookupNotFound))
		})
	})

	Describe("per-diem statuses", func() {
		It("resolves a status id by name", func() {
			created, err := svc.CreatePerDiemStatus(lookup.NameDTO{Name: "pending"})
			Expect(err).NotTo(HaveOccurred())

			id, err := svc.PerDiemStatusIDByName("pending")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(created.ID))
		})

		It("fails for an unknown status name", func() {
			_, err := svc.PerDiemStatusIDByName("pending")
			Expect(err).To(MatchError(lookup.ErrLookupNotFound))
		})
	})

	Describe("organizational unit tree", func() {
		It("creates a child under an existing parent", func() {
			root, err := svc.CreateUnit(lookup.UnitDTO{Name: "Headquarters"})
			Expect(err).NotTo(HaveOccurred())

			child, err := svc.CreateUnit(lookup.UnitDTO{Name: "North Precinct", ParentID: &root.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(*child.ParentID).To(Equal(root.ID))
		})

		It("rejects a missing parent", func() {
			missing := int64(4242)
			_, err := svc.CreateUnit(lookup.UnitDTO{Name: "Orphan", ParentID: &missing})
			Expect(err).To(MatchError(lookup.ErrUnitParentNotFound))
		})

		It("rejects a unit as its own parent", func() {
			root, err := svc.CreateUnit(lookup.UnitDTO{Name: "Headquarters"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.UpdateUnit(root.ID, lookup.UnitDTO{Name: "Headquarters", ParentID: &root.ID})
			Expect(err).To(MatchError(lookup.ErrUnitCycle))
		})

		It("rejects a parent chain that loops back", func() {
			a, err := svc.CreateUnit(lookup.UnitDTO{Name: "A"})
			Expect(err).NotTo(HaveOccurred())
			b, err := svc.CreateUnit(lookup.UnitDTO{Name: "B", ParentID: &a.ID})
			Expect(err).NotTo(HaveOccurred())
			c, err := svc.CreateUnit(lookup.UnitDTO{Name: "C", ParentID: &b.ID})
			Expect(err).NotTo(HaveOccurred())

			// A -> C would close the loop A -> C -> B -> A.
			_, err = svc.UpdateUnit(a.ID, lookup.UnitDTO{Name: "A", ParentID: &c.ID})
			Expect(err).To(MatchError(lookup.ErrUnitCycle))
		})

		It("allows reparenting onto a clean chain", func() {
			a, err := svc.CreateUnit(lookup.UnitDTO{Name: "A"})
			Expect(err).NotTo(HaveOccurred())
			b, err := svc.CreateUnit(lookup.UnitDTO{Name: "B"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := svc.UpdateUnit(b.ID, lookup.UnitDTO{Name: "B", ParentID: &a.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.ParentID).To(Equal(a.ID))
		})
	})

	Describe("municipalities", func() {
		It("filters by state", func() {
			st, err := svc.CreateState(lookup.StateDTO{Name: "Central District", Code: "CD"})
			Expect(err).NotTo(HaveOccurred())
			other, err := svc.CreateState(lookup.StateDTO{Name: "Northern District", Code: "ND"})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreateMunicipality(lookup.MunicipalityDTO{Name: "Central City", StateID: st.ID})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.CreateMunicipality(lookup.MunicipalityDTO{Name: "North Town", StateID: other.ID})
			Expect(err).NotTo(HaveOccurred())

			rows, err := svc.ListMunicipalities(st.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Name).To(Equal("Central City"))
		})
	})
})
