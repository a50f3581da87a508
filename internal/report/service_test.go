package report_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frizen94/ERPRO/internal"
	"github.com/frizen94/ERPRO/internal/person"
	"github.com/frizen94/ERPRO/internal/report"
	"github.com/frizen94/ERPRO/internal/shift"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

func TestReportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

type MockPersonLister struct {
	persons []*person.Person
}

func (m *MockPersonLister) List(filters person.Filters) ([]*person.Person, error) {
	return m.persons, nil
}

type MockShiftLister struct {
	shifts  []*shift.ShiftSchedule
	filters shift.Filters
}

func (m *MockShiftLister) List(filters shift.Filters) ([]*shift.ShiftSchedule, error) {
	m.filters = filters
	return m.shifts, nil
}

var _ = Describe("Report Service", func() {
	var (
		persons *MockPersonLister
		shifts  *MockShiftLister
		svc     *report.Service
	)

	day := func(value string) time.Time {
		d, err := time.Parse("2006-01-02", value)
		Expect(err).NotTo(HaveOccurred())
		return d
	}

	BeforeEach(func() {
		persons = &MockPersonLister{persons: []*person.Person{
			{ID: 1, FullName: "Ana Silva", NationalID: "11122233344", PersonType: "staff", BirthDate: day("1990-05-14")},
			{ID: 2, FullName: "Bruno Costa", NationalID: "55566677788", PersonType: "staff", BirthDate: day("1985-11-02")},
		}}
		shifts = &MockShiftLister{shifts: []*shift.ShiftSchedule{
			{ID: 1, PersonID: 1, UnitID: 10, ShiftDate: day("2024-03-11"), StartTime: "08:00", EndTime: "16:00", Status: shift.StatusScheduled},
		}}
		svc = report.NewService(persons, shifts, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	Describe("PersonsRoster", func() {
		It("writes one row per person under the header", func() {
			buf, filename, err := svc.PersonsRoster()
			Expect(err).NotTo(HaveOccurred())
			Expect(filename).To(HavePrefix("personnel_roster_"))
			Expect(filename).To(HaveSuffix(".xlsx"))

			f, err := excelize.OpenReader(buf)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Personnel")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0][1]).To(Equal("Full Name"))
			Expect(rows[1][1]).To(Equal("Ana Silva"))
			Expect(rows[2][2]).To(Equal("55566677788"))
		})
	})

	Describe("ShiftSchedules", func() {
		It("writes the schedule rows and forwards the date range", func() {
			from := day("2024-03-01")
			to := day("2024-03-31")

			buf, filename, err := svc.ShiftSchedules(from, to)
			Expect(err).NotTo(HaveOccurred())
			Expect(filename).To(HaveSuffix(".xlsx"))
			Expect(shifts.filters.DateFrom).NotTo(BeNil())
			Expect(shifts.filters.DateTo).NotTo(BeNil())

			f, err := excelize.OpenReader(buf)
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()

			rows, err := f.GetRows("Shift Schedules")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[1][3]).To(Equal("2024-03-11"))
			Expect(rows[1][6]).To(Equal(shift.StatusScheduled))
		})

		It("omits the date filters when no range is given", func() {
			_, _, err := svc.ShiftSchedules(time.Time{}, time.Time{})
			Expect(err).NotTo(HaveOccurred())
			Expect(shifts.filters.DateFrom).To(BeNil())
			Expect(shifts.filters.DateTo).To(BeNil())
		})

		It("rejects a range that ends before it starts", func() {
			_, _, err := svc.ShiftSchedules(day("2024-03-31"), day("2024-03-01"))
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidDateRange))
		})
	})
})
