package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebank/internal/model"
	"timebank/internal/timecalc"
)

var listMonth string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "Only entries of one month, YYYY-MM")
}

func runList(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	entries := led.Entries()
	if listMonth != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if len(e.Date) >= 7 && e.Date[:7] == listMonth {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	printEntries(entries)
	return nil
}

// printEntries renders the ledger as a fixed-width table.
func printEntries(entries []model.TimeEntry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	fmt.Printf("%-36s  %-10s  %-5s  %-11s  %-5s  %-6s  %-7s  %s\n",
		"ID", "DATE", "IN", "LUNCH", "OUT", "WORKED", "BALANCE", "NOTES")
	for _, e := range entries {
		lunch := "-"
		if e.LunchOut != "" {
			lunch = e.LunchOut + "-" + e.LunchIn
		}
		fmt.Printf("%-36s  %-10s  %-5s  %-11s  %-5s  %-6s  %-7s  %s\n",
			e.ID,
			e.Date,
			e.CheckIn,
			lunch,
			e.CheckOut,
			timecalc.FormatHours(e.WorkedHours),
			timecalc.FormatHours(e.Balance),
			e.Notes)
	}
}
