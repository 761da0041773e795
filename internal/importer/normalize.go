package importer

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	brSlashPattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	brDashPattern  = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	clockPattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// NormalizeDate converts a cell into the canonical YYYY-MM-DD form, or
// "" when the value is unrecognized. Accepted shapes: canonical
// strings, DD/MM/YYYY, DD-MM-YYYY, spreadsheet serial day counts, and
// native date cells. Reordered strings are checked against the
// calendar, so "99/99/2024" does not normalize.
func NormalizeDate(c Cell) string {
	switch c.Kind {
	case CellText:
		return normalizeDateString(c.Text)
	case CellNumber:
		if c.Number < 1 {
			return ""
		}
		t, err := excelize.ExcelDateToTime(c.Number, false)
		if err != nil {
			return ""
		}
		return t.Format("2006-01-02")
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return ""
	}
}

func normalizeDateString(s string) string {
	var candidate string
	switch {
	case isoDatePattern.MatchString(s):
		candidate = s
	case brSlashPattern.MatchString(s):
		m := brSlashPattern.FindStringSubmatch(s)
		candidate = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	case brDashPattern.MatchString(s):
		m := brDashPattern.FindStringSubmatch(s)
		candidate = fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	default:
		return ""
	}
	if _, err := time.Parse("2006-01-02", candidate); err != nil {
		return ""
	}
	return candidate
}

// NormalizeTime converts a cell into the canonical HH:MM form, or ""
// when unrecognized. Accepted shapes: H:MM / HH:MM strings (hour
// padded to two digits) and non-negative fraction-of-day numbers per
// the spreadsheet time convention (0.5 = 12:00).
func NormalizeTime(c Cell) string {
	switch c.Kind {
	case CellText:
		m := clockPattern.FindStringSubmatch(c.Text)
		if m == nil {
			return ""
		}
		h := m[1]
		if len(h) == 1 {
			h = "0" + h
		}
		return h + ":" + m[2]
	case CellNumber:
		if c.Number < 0 {
			return ""
		}
		total := int(math.Round(c.Number * 24 * 60))
		return fmt.Sprintf("%02d:%02d", total/60, total%60)
	default:
		return ""
	}
}
