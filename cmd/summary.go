package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"timebank/internal/timecalc"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate worked hours and balance",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output as JSON")
}

func runSummary(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	s := led.Summary()

	if summaryJSON {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println("Time bank summary")
	fmt.Println("--------------------------------")
	fmt.Printf("%-22s%d\n", "Days worked", s.DaysWorked)
	fmt.Printf("%-22s%s\n", "Worked hours", timecalc.FormatHours(s.TotalWorkedHours))
	fmt.Printf("%-22s%s\n", "Contractual hours", timecalc.FormatHours(s.TotalContractualHours))
	fmt.Printf("%-22s%s\n", "Average worked/day", timecalc.FormatHours(s.AverageWorkedHours))
	fmt.Println("--------------------------------")
	fmt.Printf("%-22s%s\n", "Balance", timecalc.FormatHours(s.TotalBalance))
	return nil
}
