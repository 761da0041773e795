package importer

import (
	"fmt"
	"strconv"
	"strings"

	"timebank/internal/model"
)

// DefaultContractualHours is the fallback applied to rows whose
// contractual-hours cell is empty when the caller supplies no
// configured default (defaultHours == 0).
const DefaultContractualHours = 8

// Accepted header names per canonical field, probed in order. The bare
// column letters cover sheets whose first row was never renamed.
var (
	dateAliases     = []string{"Data", "data", "DATE", "Data do Ponto", "A"}
	checkInAliases  = []string{"Entrada", "entrada", "CHECK_IN", "Horário Entrada", "B"}
	lunchOutAliases = []string{"Saída Almoço", "saida_almoco", "LUNCH_OUT", "Saída para Almoço", "C"}
	lunchInAliases  = []string{"Volta Almoço", "volta_almoco", "LUNCH_IN", "Volta do Almoço", "D"}
	checkOutAliases = []string{"Saída", "saida", "CHECK_OUT", "Horário Saída", "E"}
	hoursAliases    = []string{"Horas Contratuais", "horas_contratuais", "CONTRACTUAL_HOURS", "Carga Horária", "F"}
	notesAliases    = []string{"Observações", "observacoes", "NOTES", "Obs", "G"}
)

// resolveField returns the first present, non-empty cell among the
// field's aliases.
func resolveField(row map[string]Cell, aliases []string) Cell {
	for _, name := range aliases {
		if c, ok := row[name]; ok && !c.IsEmpty() {
			return c
		}
	}
	return Cell{}
}

// ValidateRow checks one named-field row mapping and either yields an
// entry draft or the full list of problems found. rowIndex is the
// 0-based data-row offset; messages cite the 1-based spreadsheet line
// (header = line 1), so data row 0 is "Linha 2". Every rule is
// evaluated — errors do not short-circuit, so the user sees all
// problems of a row at once. defaultHours fills an absent
// contractual-hours cell.
func ValidateRow(row map[string]Cell, rowIndex int, defaultHours float64) (model.EntryDraft, []string) {
	if defaultHours == 0 {
		defaultHours = DefaultContractualHours
	}
	line := rowIndex + 2
	var errs []string

	date := NormalizeDate(resolveField(row, dateAliases))
	if date == "" {
		errs = append(errs, fmt.Sprintf("Linha %d: Data inválida ou ausente", line))
	}

	checkIn := NormalizeTime(resolveField(row, checkInAliases))
	if checkIn == "" {
		errs = append(errs, fmt.Sprintf("Linha %d: Horário de entrada inválido ou ausente", line))
	}

	checkOut := NormalizeTime(resolveField(row, checkOutAliases))
	if checkOut == "" {
		errs = append(errs, fmt.Sprintf("Linha %d: Horário de saída inválido ou ausente", line))
	}

	// Lunch is optional, but half a lunch is not.
	lunchOut := NormalizeTime(resolveField(row, lunchOutAliases))
	lunchIn := NormalizeTime(resolveField(row, lunchInAliases))
	if (lunchOut != "") != (lunchIn != "") {
		errs = append(errs, fmt.Sprintf("Linha %d: Se informado horário de almoço, tanto saída quanto volta devem ser preenchidos", line))
	}

	contractual := defaultHours
	if c := resolveField(row, hoursAliases); !c.IsEmpty() {
		v, err := parseDecimal(c)
		if err != nil || v < 0 || v > 24 {
			errs = append(errs, fmt.Sprintf("Linha %d: Horas contratuais inválidas (deve ser entre 0 e 24)", line))
		} else {
			contractual = v
		}
	}

	notes := ""
	if c := resolveField(row, notesAliases); !c.IsEmpty() {
		notes = strings.TrimSpace(c.String())
	}

	if len(errs) > 0 {
		return model.EntryDraft{}, errs
	}

	return model.EntryDraft{
		Date:             date,
		CheckIn:          checkIn,
		LunchOut:         lunchOut,
		LunchIn:          lunchIn,
		CheckOut:         checkOut,
		ContractualHours: contractual,
		Notes:            notes,
	}, nil
}

// parseDecimal reads a decimal value from a number or text cell. A
// decimal comma is tolerated, as pt-BR spreadsheets commonly use it.
func parseDecimal(c Cell) (float64, error) {
	if c.Kind == CellNumber {
		return c.Number, nil
	}
	s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", ".")
	return strconv.ParseFloat(s, 64)
}
