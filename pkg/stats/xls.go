package stats

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anrid/xls"
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// Source formats understood by ExtractDataFromFile.
const (
	FormatCSV  = "csv"
	FormatXLS  = "xls"
	FormatXLSX = "xlsx"
)

// FormatOf picks the reader for a file from its extension. Anything that is
// not a spreadsheet is read as CSV.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	default:
		return FormatCSV
	}
}

// RowHandler receives one row and the 1-based line (CSV) or sheet row it
// starts on.
type RowHandler func(line int, row []string) error

// ExtractDataFromFile feeds every row of the file's first table to handler,
// header row included. It stops at the first error handler returns.
func ExtractDataFromFile(path string, handler RowHandler) error {
	switch FormatOf(path) {
	case FormatXLSX:
		return ExtractDataFromXLSX(path, handler)
	case FormatXLS:
		return ExtractDataFromXLS(path, handler)
	default:
		return ExtractDataFromCSV(path, handler)
	}
}

func ExtractDataFromCSV(path string, handler RowHandler) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Errorf("reading csv: %w", err)
		}
		line, _ := r.FieldPos(0)
		if err := handler(line, row); err != nil {
			return err
		}
	}
}

func ExtractDataFromXLS(path string, handler RowHandler) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Errorf("opening xls: %w", err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return errors.Errorf("reading xls: %w", err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return errors.New("xls workbook has no sheets")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		if err := handler(i+1, cols); err != nil {
			return err
		}
	}
	return nil
}

func ExtractDataFromXLSX(path string, handler RowHandler) error {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return errors.Errorf("opening xlsx: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("xlsx workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return errors.Errorf("reading rows of sheet %q: %w", sheets[0], err)
	}

	for i, r := range rows {
		if err := handler(i+1, r); err != nil {
			return err
		}
	}
	return nil
}
