package usecase

import (
	"bytes"
	"context"
	"sponsorship/domain"
	"sponsorship/spreadsheet"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ImporterSuite struct {
	ucSuite
}

func TestImporterSuite(t *testing.T) {
	suite.Run(t, new(ImporterSuite))
}

var importHeader = []string{
	"Full Name", "Preferred Name", "Residence", "Tribe", "Gender", "Date Of Birth", "Weight", "Height",
	"Interest", "In School", "Sponsored", "Father", "Father Alive", "Father Description", "Mother",
	"Mother Alive", "Mother Description", "Guardian", "Guardian Contact", "Relationship", "Siblings",
	"Background", "Health", "Responsibility", "Relationship With Christ", "Religion", "Prayer Request",
	"Year Enrolled", "Departed", "Staff Comment", "Compiled By",
}

func importRow(name string) []string {
	return []string{
		name, "Gee", "Gulu", "Acholi", "Female", "01/04/2012", "30.5", "90",
		"Football", "yes", "No", "John", "Yes", "Farmer", "Jane",
		"No", "", "Aunt Mary", "+256700000001", "Aunt", "2",
		"", "Good", "Fetching water", "", "Catholic", "",
		"2015", "No", "", "mary",
	}
}

func csvFile(rows ...[]string) *strings.Reader {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func (s *ImporterSuite) TestImportSkipsRowsWithoutName() {
	blank := importRow("")
	blank[4] = "Male"

	created, err := s.children.ImportChildren(context.Background(), "children.csv", csvFile(importHeader, blank, importRow("Grace Achieng")))
	s.Require().NoError(err)
	s.Equal(1, created)

	children, _, err := s.children.ListChildren(context.Background(), "", "")
	s.Require().NoError(err)
	s.Require().Len(*children, 1)

	child := (*children)[0]
	s.Equal("Grace Achieng", child.FullName)
	s.Equal("Gee", child.PreferredName)
	s.Equal("Acholi", child.Tribe)
	s.Equal(domain.Female, child.Gender)
	s.Require().NotNil(child.DateOfBirth)
	s.Equal("2012-04-01", child.DateOfBirth.Format("2006-01-02"))
	s.Require().NotNil(child.Weight)
	s.InDelta(30.5, *child.Weight, 0.001)
	s.Require().NotNil(child.Height)
	s.Equal(90, *child.Height)
	s.Equal(domain.Yes, child.IsChildInSchool)
	s.Equal(domain.Yes, child.IsFatherAlive)
	s.Equal(domain.No, child.IsMotherAlive)
	s.Equal("+256700000001", child.GuardianContact)
	s.Require().NotNil(child.Religion)
	s.Equal(domain.Catholic, *child.Religion)
	s.Equal(2015, child.YearEnrolled)
	s.Equal("mary", child.CompiledBy)
}

func (s *ImporterSuite) TestImportStopsAtFirstBadRow() {
	bad := importRow("Peter Okello")
	bad[27] = "2010"

	created, err := s.children.ImportChildren(context.Background(), "children.csv",
		csvFile(importHeader, importRow("Grace Achieng"), bad, importRow("Sarah Nakato")))
	s.Equal(1, created)

	var importErr *domain.ImportError
	s.Require().ErrorAs(err, &importErr)
	s.Equal(3, importErr.Row)
	s.Contains(s.fieldErrors(err), "year_enrolled")

	// Rows before the failure stay committed.
	s.Equal(int64(1), s.count(&domain.Child{}))
}

// workbook builds an import sheet whose date of birth cell holds dob. A time.Time
// is stored as a serial number in the workbook's own date system.
func (s *ImporterSuite) workbook(date1904 bool, dob interface{}) *bytes.Reader {
	f := excelize.NewFile()
	s.Require().NoError(f.SetWorkbookProps(&excelize.WorkbookPropsOptions{Date1904: &date1904}))
	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(importHeader))
	for i, h := range importHeader {
		header[i] = h
	}
	row := make([]interface{}, 0, len(importHeader))
	for _, cell := range importRow("Grace Achieng") {
		row = append(row, cell)
	}
	row[27] = 2016

	s.Require().NoError(f.SetSheetRow(sheet, "A1", &header))
	s.Require().NoError(f.SetSheetRow(sheet, "A2", &row))
	s.Require().NoError(f.SetCellValue(sheet, "F2", dob))

	buf, err := f.WriteToBuffer()
	s.Require().NoError(err)
	return bytes.NewReader(buf.Bytes())
}

func (s *ImporterSuite) importedGrace() domain.Child {
	children, _, err := s.children.ListChildren(context.Background(), "grace", "")
	s.Require().NoError(err)
	s.Require().Len(*children, 1)
	s.Require().NotNil((*children)[0].DateOfBirth)
	return (*children)[0]
}

func (s *ImporterSuite) TestImportXLSXWithSerialDates() {
	created, err := s.children.ImportChildren(context.Background(), "children.xlsx", s.workbook(false, 40999))
	s.Require().NoError(err)
	s.Equal(1, created)

	child := s.importedGrace()
	s.Equal("2012-03-31", child.DateOfBirth.Format("2006-01-02"))
	s.Equal(2016, child.YearEnrolled)
}

func (s *ImporterSuite) TestImportXLSX1904DateSystem() {
	dob := time.Date(2012, 3, 31, 0, 0, 0, 0, time.UTC)

	created, err := s.children.ImportChildren(context.Background(), "children.xlsx", s.workbook(true, dob))
	s.Require().NoError(err)
	s.Equal(1, created)

	s.Equal("2012-03-31", s.importedGrace().DateOfBirth.Format("2006-01-02"))
}

func (s *ImporterSuite) TestImportDropsSponsoredColumn() {
	row := importRow("Grace Achieng")
	row[10] = "Yes"

	created, err := s.children.ImportChildren(context.Background(), "children.csv", csvFile(importHeader, row))
	s.Require().NoError(err)
	s.Equal(1, created)

	child := s.importedGrace()
	s.Equal(domain.No, child.IsSponsored)
	s.Zero(s.count(&domain.ChildSponsorship{}))
}

func (s *ImporterSuite) TestImportRejectsUnknownFormat() {
	created, err := s.children.ImportChildren(context.Background(), "children.txt", strings.NewReader("x"))
	s.Zero(created)

	var importErr *domain.ImportError
	s.Require().ErrorAs(err, &importErr)
	s.Zero(importErr.Row)
	s.ErrorIs(err, spreadsheet.ErrUnsupportedFormat)
}

func (s *ImporterSuite) TestImportAcceptsSpreadsheetBooleans() {
	row := importRow("Grace Achieng")
	row[9] = "TRUE"
	row[12] = "0"
	row[15] = "y"
	row[28] = "false"

	_, err := s.children.ImportChildren(context.Background(), "children.csv", csvFile(importHeader, row))
	s.Require().NoError(err)

	child := s.importedGrace()
	s.Equal(domain.Yes, child.IsChildInSchool)
	s.Equal(domain.No, child.IsFatherAlive)
	s.Equal(domain.Yes, child.IsMotherAlive)
	s.Equal(domain.No, child.IsDeparted)
}
