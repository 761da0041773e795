// Package model defines the shared data structures of the time bank.
package model

// TimeEntry is one day's attendance record. Dates are stored as
// YYYY-MM-DD, wall-clock times as HH:MM (24-hour). LunchOut and
// LunchIn are optional; an empty string means absent, and they are
// always both present or both absent.
type TimeEntry struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	CheckIn          string  `json:"checkIn"`
	LunchOut         string  `json:"lunchOut,omitempty"`
	LunchIn          string  `json:"lunchIn,omitempty"`
	CheckOut         string  `json:"checkOut"`
	ContractualHours float64 `json:"contractualHours"`
	WorkedHours      float64 `json:"workedHours"`
	Balance          float64 `json:"balance"`
	Notes            string  `json:"notes,omitempty"`
}

// EntryDraft is a TimeEntry before the ledger has assigned an ID and
// computed the derived WorkedHours/Balance fields.
type EntryDraft struct {
	Date             string  `json:"date"`
	CheckIn          string  `json:"checkIn"`
	LunchOut         string  `json:"lunchOut,omitempty"`
	LunchIn          string  `json:"lunchIn,omitempty"`
	CheckOut         string  `json:"checkOut"`
	ContractualHours float64 `json:"contractualHours"`
	Notes            string  `json:"notes,omitempty"`
}

// WorkSettings is the process-wide configuration edited by the user.
// LunchBreakMinutes is an informational default only; it is never
// enforced against entries. WorkDays is reserved for future use.
type WorkSettings struct {
	DefaultContractualHours float64  `json:"defaultContractualHours"`
	LunchBreakMinutes       int      `json:"lunchBreakMinutes"`
	WorkDays                []string `json:"workDays"`
}

// DefaultWorkSettings returns the built-in defaults: 8 contractual
// hours, 60-minute lunch, Monday through Friday.
func DefaultWorkSettings() WorkSettings {
	return WorkSettings{
		DefaultContractualHours: 8,
		LunchBreakMinutes:       60,
		WorkDays:                []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
	}
}

// TimeBankSummary aggregates an entry collection. It is recomputed on
// every read and never persisted.
type TimeBankSummary struct {
	TotalBalance          float64 `json:"totalBalance"`
	TotalWorkedHours      float64 `json:"totalWorkedHours"`
	TotalContractualHours float64 `json:"totalContractualHours"`
	AverageWorkedHours    float64 `json:"averageWorkedHours"`
	DaysWorked            int     `json:"daysWorked"`
}

// ImportResult reports one bulk-import attempt. Errors reference
// 1-based spreadsheet row numbers where the header is row 1.
type ImportResult struct {
	Success   bool         `json:"success"`
	Entries   []EntryDraft `json:"entries"`
	Errors    []string     `json:"errors"`
	TotalRows int          `json:"totalRows"`
	ValidRows int          `json:"validRows"`
}
