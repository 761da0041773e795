package importer_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timebank/internal/importer"
)

const csvHeader = "Data,Entrada,Saída Almoço,Volta Almoço,Saída,Horas Contratuais,Observações"

func csvFile(lines ...string) []byte {
	return []byte(strings.Join(append([]string{csvHeader}, lines...), "\n"))
}

func TestImportValidFile(t *testing.T) {
	result := importer.Import(csvFile(
		"2024-01-15,09:00,12:00,13:00,18:00,8,Exemplo",
		"16/01/2024,08:30,,,17:30,,",
	), 8)

	require.True(t, result.Success)
	require.Empty(t, result.Errors)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.ValidRows)
	require.Len(t, result.Entries, 2)

	assert.Equal(t, "2024-01-15", result.Entries[0].Date)
	assert.Equal(t, "12:00", result.Entries[0].LunchOut)
	assert.Equal(t, "Exemplo", result.Entries[0].Notes)

	// Second row: reordered date, no lunch, defaulted hours.
	assert.Equal(t, "2024-01-16", result.Entries[1].Date)
	assert.Empty(t, result.Entries[1].LunchOut)
	assert.Equal(t, 8.0, result.Entries[1].ContractualHours)
}

func TestImportMixedValidity(t *testing.T) {
	// Row on line 2 is missing the check-out; row on line 3 is fine.
	result := importer.Import(csvFile(
		"2024-01-15,09:00,,,,8,",
		"2024-01-16,09:00,,,18:00,8,",
	), 8)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Linha 2: Horário de saída inválido ou ausente", result.Errors[0])
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "2024-01-16", result.Entries[0].Date)
}

func TestImportSkipsBlankRowsKeepsLineNumbers(t *testing.T) {
	// The blank row on line 3 is skipped and not counted, but the bad
	// row on line 4 must still be reported as line 4.
	result := importer.Import(csvFile(
		"2024-01-15,09:00,,,18:00,8,",
		",,,,,,",
		"2024-01-17,09:00,,,,8,",
	), 8)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, result.ValidRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Linha 4: Horário de saída inválido ou ausente", result.Errors[0])
}

func TestImportHeaderOnly(t *testing.T) {
	result := importer.Import([]byte(csvHeader), 8)

	assert.False(t, result.Success)
	assert.Zero(t, result.TotalRows)
	assert.Zero(t, result.ValidRows)
	assert.Empty(t, result.Entries)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "A planilha deve conter pelo menos uma linha de cabeçalho e uma linha de dados", result.Errors[0])
}

func TestImportCorruptXLSX(t *testing.T) {
	result := importer.Import([]byte("PK\x03\x04garbage-that-is-not-a-workbook"), 8)

	assert.False(t, result.Success)
	assert.Zero(t, result.TotalRows)
	assert.Empty(t, result.Entries)
	require.Len(t, result.Errors, 1)
	assert.True(t, strings.HasPrefix(result.Errors[0], "Erro ao processar arquivo:"), "got %q", result.Errors[0])
}

func TestImportSemicolonCSV(t *testing.T) {
	data := []byte("Data;Entrada;Saída Almoço;Volta Almoço;Saída;Horas Contratuais;Observações\n" +
		"2024-01-15;09:00;12:00;13:00;18:00;8;ok")
	result := importer.Import(data, 8)

	require.True(t, result.Success, "errors: %v", result.Errors)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "2024-01-15", result.Entries[0].Date)
}

func TestImportFileMissing(t *testing.T) {
	result := importer.ImportFile(filepath.Join(t.TempDir(), "nope.csv"), 8)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Erro ao ler o arquivo", result.Errors[0])
}

func TestImportTemplateRoundTrip(t *testing.T) {
	data, err := importer.TemplateXLSX()
	require.NoError(t, err)

	result := importer.Import(data, 8)
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2, result.TotalRows)
	require.Len(t, result.Entries, 2)

	assert.Equal(t, "2024-01-15", result.Entries[0].Date)
	assert.Equal(t, "09:00", result.Entries[0].CheckIn)
	assert.Equal(t, "18:00", result.Entries[0].CheckOut)
	assert.Equal(t, 8.0, result.Entries[0].ContractualHours)
	assert.Equal(t, "Exemplo de registro", result.Entries[0].Notes)
	assert.Equal(t, "2024-01-16", result.Entries[1].Date)
}

func TestTemplateCSVImportsCleanly(t *testing.T) {
	data, err := importer.TemplateCSV()
	require.NoError(t, err)

	result := importer.Import(data, 8)
	require.True(t, result.Success, "errors: %v", result.Errors)
	assert.Equal(t, 2, result.ValidRows)
}
