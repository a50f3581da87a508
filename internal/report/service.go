// Package report generates XLSX exports of the operational data. Files are
// built in memory and streamed back as attachments.
package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/frizen94/ERPRO/internal"
	"github.com/frizen94/ERPRO/internal/person"
	"github.com/frizen94/ERPRO/internal/shift"
	"github.com/xuri/excelize/v2"
)

var ErrReportGenerate = internal.NewInternalError("failed to generate report file", nil)

// PersonLister and ShiftLister are the narrow read slices of the person and
// shift repositories the exports need.
type PersonLister interface {
	List(filters person.Filters) ([]*person.Person, error)
}

type ShiftLister interface {
	List(filters shift.Filters) ([]*shift.ShiftSchedule, error)
}

type Service struct {
	persons PersonLister
	shifts  ShiftLister
	logger  *slog.Logger
}

func NewService(persons PersonLister, shifts ShiftLister, logger *slog.Logger) *Service {
	return &Service{persons: persons, shifts: shifts, logger: logger}
}

// PersonsRoster exports the active personnel list, one row per person.
func (s *Service) PersonsRoster() (*bytes.Buffer, string, error) {
	persons, err := s.persons.List(person.Filters{})
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Personnel"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrReportGenerate
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "B", 32)
	f.SetColWidth(sheet, "C", "D", 16)
	f.SetColWidth(sheet, "E", "G", 22)

	writeHeaderRow(f, sheet, []string{"ID", "Full Name", "National ID", "Type", "Birth Date", "Phone", "Email"})

	row := 2
	for _, p := range persons {
		f.SetCellValue(sheet, cell("A", row), p.ID)
		f.SetCellValue(sheet, cell("B", row), p.FullName)
		f.SetCellValue(sheet, cell("C", row), p.NationalID)
		f.SetCellValue(sheet, cell("D", row), p.PersonType)
		f.SetCellValue(sheet, cell("E", row), p.BirthDate.Format("2006-01-02"))
		f.SetCellValue(sheet, cell("F", row), strOrEmpty(p.Phone))
		f.SetCellValue(sheet, cell("G", row), strOrEmpty(p.Email))
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing roster workbook", "error", err)
		return nil, "", ErrReportGenerate
	}

	filename := fmt.Sprintf("personnel_roster_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ShiftSchedules exports the shift assignments inside the date range, one
// row per schedule entry, newest first.
func (s *Service) ShiftSchedules(from, to time.Time) (*bytes.Buffer, string, error) {
	if !to.IsZero() && !from.IsZero() && to.Before(from) {
		return nil, "", internal.NewValidationFieldError("dateTo", "dateTo must not be before dateFrom", internal.ErrCodeInvalidDateRange)
	}

	filters := shift.Filters{}
	if !from.IsZero() {
		filters.DateFrom = &from
	}
	if !to.IsZero() {
		filters.DateTo = &to
	}

	schedules, err := s.shifts.List(filters)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Shift Schedules"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrReportGenerate
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "D", 14)
	f.SetColWidth(sheet, "E", "F", 10)
	f.SetColWidth(sheet, "G", "G", 12)

	writeHeaderRow(f, sheet, []string{"ID", "Person ID", "Unit ID", "Date", "Start", "End", "Status"})

	row := 2
	for _, sc := range schedules {
		f.SetCellValue(sheet, cell("A", row), sc.ID)
		f.SetCellValue(sheet, cell("B", row), sc.PersonID)
		f.SetCellValue(sheet, cell("C", row), sc.UnitID)
		f.SetCellValue(sheet, cell("D", row), sc.ShiftDate.Format("2006-01-02"))
		f.SetCellValue(sheet, cell("E", row), sc.StartTime)
		f.SetCellValue(sheet, cell("F", row), sc.EndTime)
		f.SetCellValue(sheet, cell("G", row), sc.Status)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing shift schedule workbook", "error", err)
		return nil, "", ErrReportGenerate
	}

	filename := fmt.Sprintf("shift_schedules_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	for i, header := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, cell(col, 1), header)
		f.SetCellStyle(sheet, cell(col, 1), cell(col, 1), style)
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
