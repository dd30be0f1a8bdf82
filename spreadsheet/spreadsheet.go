// Package spreadsheet reads tabular uploads into rows of trimmed cells.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, upload a .csv or .xlsx file")
	ErrEmptySheet        = errors.New("the uploaded sheet has no rows")
)

// Sheet is the first sheet of an upload.
type Sheet struct {
	Rows [][]string
	// Date1904 is set for workbooks on the 1904 date system, where serial day 0 is 1904-01-01.
	Date1904 bool
}

// ReadRows picks the decoder from the file extension of name. Every row is padded
// to the header width so callers can index columns without bounds checks.
func ReadRows(name string, r io.Reader) (*Sheet, error) {
	var (
		sheet *Sheet
		err   error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		sheet, err = readCSV(r)
	case ".xlsx", ".xlsm":
		sheet, err = readXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	if len(sheet.Rows) == 0 {
		return nil, ErrEmptySheet
	}
	sheet.Rows = normalize(sheet.Rows)
	return sheet, nil
}

// Date turns a serial day number into a 2006-01-02 date using the sheet's date
// system. Any other cell value is returned unchanged.
func (s *Sheet) Date(cell string) string {
	serial, err := strconv.ParseFloat(cell, 64)
	if err != nil || serial <= 0 {
		return cell
	}
	t, err := excelize.ExcelDateToTime(serial, s.Date1904)
	if err != nil {
		return cell
	}
	return t.Format("2006-01-02")
}

func readCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	return &Sheet{Rows: rows}, nil
}

// readXLSX reads the first sheet. Raw cell values keep dates as serial numbers
// instead of whatever display format the workbook carries.
func readXLSX(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheets[0], err)
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("could not read workbook properties: %w", err)
	}
	return &Sheet{Rows: rows, Date1904: props.Date1904 != nil && *props.Date1904}, nil
}

func normalize(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, width)
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		out[i] = cells
	}
	return out
}
