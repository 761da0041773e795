package cmd

import (
	"fmt"
	"time"

	"timebank/internal/model"
	"timebank/internal/timecalc"
)

// validateDraft checks a manually entered draft before it reaches the
// ledger, which assumes canonical fields. Import drafts take the
// importer's validation path instead.
func validateDraft(d model.EntryDraft) error {
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", d.Date)
	}
	if _, err := timecalc.ParseClock(d.CheckIn); err != nil {
		return fmt.Errorf("invalid check-in time %q (expected HH:MM)", d.CheckIn)
	}
	if _, err := timecalc.ParseClock(d.CheckOut); err != nil {
		return fmt.Errorf("invalid check-out time %q (expected HH:MM)", d.CheckOut)
	}
	if (d.LunchOut != "") != (d.LunchIn != "") {
		return fmt.Errorf("lunch times must be given as a pair (both --lunch-out and --lunch-in)")
	}
	if d.LunchOut != "" {
		if _, err := timecalc.ParseClock(d.LunchOut); err != nil {
			return fmt.Errorf("invalid lunch-out time %q (expected HH:MM)", d.LunchOut)
		}
		if _, err := timecalc.ParseClock(d.LunchIn); err != nil {
			return fmt.Errorf("invalid lunch-in time %q (expected HH:MM)", d.LunchIn)
		}
	}
	if d.ContractualHours < 0 || d.ContractualHours > 24 {
		return fmt.Errorf("contractual hours must be between 0 and 24, got %v", d.ContractualHours)
	}
	return nil
}
