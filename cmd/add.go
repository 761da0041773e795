package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timebank/internal/model"
	"timebank/internal/timecalc"
)

var (
	addDate     string
	addIn       string
	addOut      string
	addLunchOut string
	addLunchIn  string
	addHours    float64
	addNotes    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a time entry for one day",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Entry date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addIn, "in", "", "Check-in time, HH:MM")
	addCmd.Flags().StringVar(&addOut, "out", "", "Check-out time, HH:MM")
	addCmd.Flags().StringVar(&addLunchOut, "lunch-out", "", "Lunch start, HH:MM")
	addCmd.Flags().StringVar(&addLunchIn, "lunch-in", "", "Lunch end, HH:MM")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "Contractual hours (default from settings)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-text notes")
	_ = addCmd.MarkFlagRequired("in")
	_ = addCmd.MarkFlagRequired("out")
}

func runAdd(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	hours := addHours
	if !cmd.Flags().Changed("hours") {
		hours = led.Settings().DefaultContractualHours
	}

	draft := model.EntryDraft{
		Date:             date,
		CheckIn:          addIn,
		LunchOut:         addLunchOut,
		LunchIn:          addLunchIn,
		CheckOut:         addOut,
		ContractualHours: hours,
		Notes:            addNotes,
	}
	if err := validateDraft(draft); err != nil {
		return err
	}

	entry, err := led.Add(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s: worked %s, balance %s (id %s)\n",
		entry.Date,
		timecalc.FormatHours(entry.WorkedHours),
		timecalc.FormatHours(entry.Balance),
		entry.ID)
	return nil
}
