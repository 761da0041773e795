package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"timebank/internal/importer"
)

var templateCmd = &cobra.Command{
	Use:   "template [output-file]",
	Short: "Write the import template file",
	Long: `template writes the reference table the import pipeline expects:
7 header columns and 2 example data rows. The output format follows
the file extension (.csv for plain text, anything else is XLSX).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	path := "modelo_banco_de_horas.xlsx"
	if len(args) == 1 {
		path = args[0]
	}

	var data []byte
	var err error
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		data, err = importer.TemplateCSV()
	} else {
		data, err = importer.TemplateXLSX()
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	fmt.Printf("Template written to %s\n", path)
	return nil
}
