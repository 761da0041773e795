package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebank/internal/importer"
)

var importApply bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import entries from a CSV or XLSX file",
	Long: `import runs the file through the normalization and validation pipeline
and reports every problem it finds. Nothing is written to the ledger
until the report has been reviewed and the command is re-run with
--apply; entries whose date already exists in the ledger are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importApply, "apply", false, "Commit the valid entries to the ledger")
}

func runImport(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	result := importer.ImportFile(args[0], led.Settings().DefaultContractualHours)

	for _, msg := range result.Errors {
		fmt.Println(msg)
	}
	fmt.Printf("Rows: %d, valid: %d, errors: %d\n",
		result.TotalRows, result.ValidRows, len(result.Errors))

	if !importApply {
		if result.ValidRows > 0 {
			fmt.Println("Dry run – re-run with --apply to commit the valid entries.")
		}
		return nil
	}
	if result.ValidRows == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	inserted, err := led.BulkImport(result.Entries)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d entries", inserted)
	if skipped := result.ValidRows - inserted; skipped > 0 {
		fmt.Printf(" (%d skipped, date already in the ledger)", skipped)
	}
	fmt.Println()
	return nil
}
