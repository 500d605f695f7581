package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var excelHeaders = []string{
	"Oznaczenie działki (literowe)",
	"Numer działki ewidencyjnej",
	"Data wykonania czynności [dd/mm/rrrr]",
	"Powierzchnia działki/uprawy [ha,a]",
	"Rodzaj użytkowania (uprawa w plonie głównym/uprawa w poplonie)",
	"Rodzaj wykonywanej czynności*",
	"Nazwa środka ochrony roślin",
	"Zastosowana ilość środka ochrony roślin/nawozu",
	"Działanie/interwencja/praktyka Nummer pakietu lub wariantu**",
	"Uwagi/powierzchnia wykonywanej czynności***",
}

// Excel renders the report rows into an XLSX workbook with the same ten
// columns as the HTML table.
func (s *Service) Excel(rows []ActivityRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.MergeCell(sheet, "A1", "J1"); err != nil {
		return nil, fmt.Errorf("failed to merge title cells: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", "WYKAZ DZIAŁAŃ AGROTECHNICZNYCH"); err != nil {
		return nil, err
	}
	for i, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		numbered, err := excelize.CoordinatesToCellName(i+1, 3)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, numbered, i+1); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.CropIdentifier,
			row.ParcelNumber,
			row.DateString(),
			row.AreaString(),
			row.TypeOfUse,
			row.Activity,
			row.Product,
			row.Amount,
			row.Intervention,
			row.Comments,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+4)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
