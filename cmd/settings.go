package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	settingsHours        float64
	settingsLunchMinutes int
	settingsWorkDays     string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change work settings",
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().Float64Var(&settingsHours, "hours", 0, "Default contractual hours per day")
	settingsCmd.Flags().IntVar(&settingsLunchMinutes, "lunch-minutes", 0, "Default lunch break in minutes")
	settingsCmd.Flags().StringVar(&settingsWorkDays, "workdays", "", "Comma-separated weekday names")
}

func runSettings(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	s := led.Settings()
	changed := false

	if cmd.Flags().Changed("hours") {
		if settingsHours < 0 || settingsHours > 24 {
			return fmt.Errorf("default contractual hours must be between 0 and 24, got %v", settingsHours)
		}
		s.DefaultContractualHours = settingsHours
		changed = true
	}
	if cmd.Flags().Changed("lunch-minutes") {
		if settingsLunchMinutes < 0 {
			return fmt.Errorf("lunch minutes must not be negative, got %d", settingsLunchMinutes)
		}
		s.LunchBreakMinutes = settingsLunchMinutes
		changed = true
	}
	if cmd.Flags().Changed("workdays") {
		days := strings.Split(settingsWorkDays, ",")
		for i, d := range days {
			days[i] = strings.ToLower(strings.TrimSpace(d))
		}
		s.WorkDays = days
		changed = true
	}

	if changed {
		if err := led.UpdateSettings(s); err != nil {
			return err
		}
		fmt.Println("Settings updated.")
	}

	fmt.Printf("Default contractual hours: %g\n", s.DefaultContractualHours)
	fmt.Printf("Lunch break minutes:       %d\n", s.LunchBreakMinutes)
	fmt.Printf("Work days:                 %s\n", strings.Join(s.WorkDays, ", "))
	return nil
}
