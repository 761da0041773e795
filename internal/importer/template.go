package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateSheetName is the sheet the XLSX template carries its rows on.
const TemplateSheetName = "Registros de Ponto"

// templateRows is the fixed reference table users download to match
// the pipeline's column expectations: 7 header columns plus 2 example
// data rows. Content is static and versionless.
var templateRows = [][]any{
	{"Data", "Entrada", "Saída Almoço", "Volta Almoço", "Saída", "Horas Contratuais", "Observações"},
	{"2024-01-15", "09:00", "12:00", "13:00", "18:00", 8, "Exemplo de registro"},
	{"2024-01-16", "08:30", "12:30", "13:30", "17:30", 8, ""},
}

var templateColWidths = []float64{12, 10, 12, 12, 10, 15, 20}

// TemplateXLSX builds the import template workbook and returns its
// serialized bytes.
func TemplateXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", TemplateSheetName); err != nil {
		return nil, fmt.Errorf("renaming template sheet: %w", err)
	}
	for i := range templateRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(TemplateSheetName, cell, &templateRows[i]); err != nil {
			return nil, fmt.Errorf("writing template row %d: %w", i+1, err)
		}
	}
	for i, width := range templateColWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(TemplateSheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("setting template column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing template: %w", err)
	}
	return buf.Bytes(), nil
}

// TemplateCSV renders the same reference table as comma-separated
// text, for users who prefer plain files.
func TemplateCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range templateRows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing template row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("serializing template: %w", err)
	}
	return buf.Bytes(), nil
}
