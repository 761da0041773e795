// Package timecalc holds the pure time arithmetic of the ledger:
// wall-clock parsing, worked-hours and balance computation, and
// summary aggregation.
package timecalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"timebank/internal/model"
)

// ParseClock converts a canonical HH:MM wall-clock string into minutes
// since midnight. Input is expected to be pre-validated upstream;
// anything that is not 1–2 digits, a colon, and exactly 2 digits is an
// error.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return h*60 + m, nil
}

// clockMinutes is ParseClock for callers that already validated the
// input; unparseable values count as midnight.
func clockMinutes(s string) int {
	min, err := ParseClock(s)
	if err != nil {
		return 0
	}
	return min
}

// WorkedHours computes the worked span in decimal hours for one day.
// lunchOut and lunchIn are optional (empty string = absent); the lunch
// span is only deducted when both are given. Negative raw spans clamp
// to zero — shifts crossing midnight are not modelled.
func WorkedHours(checkIn, checkOut, lunchOut, lunchIn string) float64 {
	total := clockMinutes(checkOut) - clockMinutes(checkIn)
	if lunchOut != "" && lunchIn != "" {
		total -= clockMinutes(lunchIn) - clockMinutes(lunchOut)
	}
	if total < 0 {
		total = 0
	}
	return float64(total) / 60
}

// Balance returns the signed difference between worked and contractual
// hours. Deficits are negative; no clamping.
func Balance(workedHours, contractualHours float64) float64 {
	return workedHours - contractualHours
}

// FormatHours renders decimal hours as ±HH:MM with a sign prefix only
// for negative values. Fractional minutes that round up to 60 carry
// into the hour, so 7.999999 renders as "08:00" rather than "07:60".
func FormatHours(hours float64) string {
	abs := math.Abs(hours)
	h := int(abs)
	m := int(math.Round((abs - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	formatted := fmt.Sprintf("%02d:%02d", h, m)
	if hours < 0 {
		return "-" + formatted
	}
	return formatted
}

// Summarize folds an entry collection into aggregate totals. The
// result is independent of input order, and an empty collection yields
// all zeros (including the average).
func Summarize(entries []model.TimeEntry) model.TimeBankSummary {
	s := model.TimeBankSummary{DaysWorked: len(entries)}
	for _, e := range entries {
		s.TotalBalance += e.Balance
		s.TotalWorkedHours += e.WorkedHours
		s.TotalContractualHours += e.ContractualHours
	}
	if len(entries) > 0 {
		s.AverageWorkedHours = s.TotalWorkedHours / float64(len(entries))
	}
	return s
}
