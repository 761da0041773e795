package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"timebank/internal/model"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

func runExport(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	entries := led.Entries()

	switch exportFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding entries: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case "csv":
		return writeCSV(entries)
	default:
		return fmt.Errorf("unknown format %q (expected csv or json)", exportFormat)
	}
}

func writeCSV(entries []model.TimeEntry) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"date", "checkIn", "lunchOut", "lunchIn", "checkOut", "contractualHours", "workedHours", "balance", "notes"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.Date,
			e.CheckIn,
			e.LunchOut,
			e.LunchIn,
			e.CheckOut,
			strconv.FormatFloat(e.ContractualHours, 'f', -1, 64),
			strconv.FormatFloat(e.WorkedHours, 'f', -1, 64),
			strconv.FormatFloat(e.Balance, 'f', -1, 64),
			e.Notes,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
