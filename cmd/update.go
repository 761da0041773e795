package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"timebank/internal/model"
	"timebank/internal/timecalc"
)

var (
	updateDate     string
	updateIn       string
	updateOut      string
	updateLunchOut string
	updateLunchIn  string
	updateHours    float64
	updateNotes    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an existing entry",
	Long: `update changes the given fields of an entry and recomputes its worked
hours and balance. Fields not passed as flags keep their current value.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateDate, "date", "", "Entry date, YYYY-MM-DD")
	updateCmd.Flags().StringVar(&updateIn, "in", "", "Check-in time, HH:MM")
	updateCmd.Flags().StringVar(&updateOut, "out", "", "Check-out time, HH:MM")
	updateCmd.Flags().StringVar(&updateLunchOut, "lunch-out", "", "Lunch start, HH:MM (empty clears)")
	updateCmd.Flags().StringVar(&updateLunchIn, "lunch-in", "", "Lunch end, HH:MM (empty clears)")
	updateCmd.Flags().Float64Var(&updateHours, "hours", 0, "Contractual hours")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "Free-text notes")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	id := args[0]
	entry, ok := led.Find(id)
	if !ok {
		return fmt.Errorf("no entry with id %s", id)
	}

	// Start from the stored entry and overlay only the flags given.
	draft := model.EntryDraft{
		Date:             entry.Date,
		CheckIn:          entry.CheckIn,
		LunchOut:         entry.LunchOut,
		LunchIn:          entry.LunchIn,
		CheckOut:         entry.CheckOut,
		ContractualHours: entry.ContractualHours,
		Notes:            entry.Notes,
	}
	if cmd.Flags().Changed("date") {
		draft.Date = updateDate
	}
	if cmd.Flags().Changed("in") {
		draft.CheckIn = updateIn
	}
	if cmd.Flags().Changed("out") {
		draft.CheckOut = updateOut
	}
	if cmd.Flags().Changed("lunch-out") {
		draft.LunchOut = updateLunchOut
	}
	if cmd.Flags().Changed("lunch-in") {
		draft.LunchIn = updateLunchIn
	}
	if cmd.Flags().Changed("hours") {
		draft.ContractualHours = updateHours
	}
	if cmd.Flags().Changed("notes") {
		draft.Notes = updateNotes
	}

	if err := validateDraft(draft); err != nil {
		return err
	}
	if err := led.Update(id, draft); err != nil {
		return err
	}

	updated, _ := led.Find(id)
	fmt.Printf("Updated %s: worked %s, balance %s\n",
		updated.Date,
		timecalc.FormatHours(updated.WorkedHours),
		timecalc.FormatHours(updated.Balance))
	return nil
}
