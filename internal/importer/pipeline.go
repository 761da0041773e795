package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"timebank/internal/model"
)

// User-facing structural failure messages.
const (
	msgTooFewRows  = "A planilha deve conter pelo menos uma linha de cabeçalho e uma linha de dados"
	msgReadFailure = "Erro ao ler o arquivo"
)

var xlsxMagic = []byte("PK\x03\x04")

// Import runs the full import pipeline over raw file bytes: decode the
// first sheet, map data rows onto the header's column names, validate
// every non-empty row, and collect drafts and errors. defaultHours is
// applied to rows without a contractual-hours cell.
//
// The pipeline never fails past its own boundary: decode errors, a
// missing data section, and per-row problems are all reported inside
// the result.
func Import(data []byte, defaultHours float64) model.ImportResult {
	rows, err := decodeRows(data)
	if err != nil {
		return failureResult(fmt.Sprintf("Erro ao processar arquivo: %v", err))
	}
	if len(rows) < 2 {
		return failureResult(msgTooFewRows)
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	result := model.ImportResult{
		Entries: []model.EntryDraft{},
		Errors:  []string{},
	}

	for i, raw := range rows[1:] {
		row, empty := mapRow(headers, raw)
		if empty {
			// Fully blank rows are skipped silently and not counted.
			continue
		}
		result.TotalRows++

		// Row numbers in messages use the absolute data-row offset,
		// not the post-skip position.
		draft, errs := ValidateRow(row, i, defaultHours)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, errs...)
			continue
		}
		result.Entries = append(result.Entries, draft)
	}

	result.ValidRows = len(result.Entries)
	result.Success = len(result.Errors) == 0
	return result
}

// ImportFile reads path and delegates to Import. A read failure
// produces a single-error result, mirroring the pipeline's
// never-escalate contract.
func ImportFile(path string, defaultHours float64) model.ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return failureResult(msgReadFailure)
	}
	return Import(data, defaultHours)
}

func failureResult(msg string) model.ImportResult {
	return model.ImportResult{
		Entries: []model.EntryDraft{},
		Errors:  []string{msg},
	}
}

// mapRow zips a positional raw row onto the header names and reports
// whether every cell was empty.
func mapRow(headers []string, raw []string) (map[string]Cell, bool) {
	row := make(map[string]Cell, len(headers))
	empty := true
	for i, name := range headers {
		if name == "" {
			continue
		}
		var c Cell
		if i < len(raw) {
			c = CellFromString(raw[i])
		}
		if !c.IsEmpty() {
			empty = false
		}
		row[name] = c
	}
	return row, empty
}

// decodeRows turns file bytes into an ordered sequence of raw string
// rows. XLSX files are recognized by the zip magic and read from their
// first sheet with raw cell values, so serial dates and time fractions
// survive as numbers; everything else is treated as CSV.
func decodeRows(data []byte) ([][]string, error) {
	if bytes.HasPrefix(data, xlsxMagic) {
		return decodeXLSX(data)
	}
	return decodeCSV(data)
}

func decodeXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		// Best-effort close; the reader owns no file handle.
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("arquivo sem planilhas")
	}
	return f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}

func decodeCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// sniffDelimiter picks ';' over ',' when the header line favours it;
// pt-BR locales commonly export semicolon-separated CSV.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		return ';'
	}
	return ','
}
