// Package importer converts loosely-formatted tabular files (CSV or
// XLSX) into validated ledger entry drafts. All failure is reported
// through the ImportResult value; nothing in this package panics or
// escalates row-level problems past the import attempt.
package importer

import (
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the recognized cell representations.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is a tagged union over the value shapes a tabular cell can
// carry: free text, a number (spreadsheet serial dates and
// fraction-of-day times arrive this way), or a native date.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// CellFromString classifies a raw cell value. Whitespace-only input is
// empty; values that parse as a plain float become number cells (this
// is how serial dates, time fractions and contractual hours show up in
// raw sheet data); everything else is text.
func CellFromString(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: CellNumber, Number: n, Text: s}
	}
	return Cell{Kind: CellText, Text: s}
}

// DateCell wraps a native date value.
func DateCell(t time.Time) Cell {
	return Cell{Kind: CellDate, Date: t}
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String renders the cell back to text, for pass-through fields such
// as notes.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		if c.Text != "" {
			return c.Text
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return c.Text
	}
}
