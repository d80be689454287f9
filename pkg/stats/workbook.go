package stats

import (
	"github.com/xuri/excelize/v2"
	"gitlab.com/tozd/go/errors"
)

// Sheet names written by SaveWorkbook.
const (
	SheetObservations = "Observations"
	SheetDecades      = "Decades"
	SheetTopPeak      = "Top Peak"
	SheetTopAverage   = "Top Average"
)

// SaveWorkbook writes one sheet per table of the report. Missing values are
// left as empty cells.
func (r *Report) SaveWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetObservations); err != nil {
		return errors.Errorf("renaming sheet: %w", err)
	}

	obs := [][]interface{}{{"Country", "Year", "Population", "Growth Rate (%)", "Index (first year = 100)"}}
	for _, o := range r.Observations {
		obs = append(obs, []interface{}{o.Country, o.Year, o.Population, cellValue(o.GrowthRate), cellValue(o.PopIndex)})
	}

	decades := [][]interface{}{{"Decade", "Rows", "Mean Population", "Mean Growth Rate (%)"}}
	for _, d := range r.Decades {
		decades = append(decades, []interface{}{d.Decade, d.Rows, cellValue(d.Population), cellValue(d.GrowthRate)})
	}

	peak := [][]interface{}{{"Rank", "Country", "Peak Population"}}
	for i, p := range r.TopPeak {
		peak = append(peak, []interface{}{i + 1, p.Country, p.Peak})
	}

	avg := [][]interface{}{{"Rank", "Country", "Years", "Mean Population", "Mean Growth Rate (%)", "Peak Population"}}
	for i, s := range r.TopAverage {
		avg = append(avg, []interface{}{i + 1, s.Country, s.Years, cellValue(s.Population), cellValue(s.GrowthRate), s.Peak})
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{SheetObservations, obs},
		{SheetDecades, decades},
		{SheetTopPeak, peak},
		{SheetTopAverage, avg},
	}

	for i, s := range sheets {
		if i > 0 {
			if _, err := f.NewSheet(s.name); err != nil {
				return errors.Errorf("creating sheet %q: %w", s.name, err)
			}
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Errorf("addressing row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return errors.Errorf("naming column: %w", err)
	}
	return f.SetColWidth(sheet, "A", last, 18)
}

func cellValue(v Value) interface{} {
	if !v.Defined() {
		return nil
	}
	return v.Float
}
