package importer_test

import (
	"testing"
	"time"

	"timebank/internal/importer"
)

func TestNormalizeDateStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-15"},
		{"15/01/2024", "2024-01-15"},
		{"15-01-2024", "2024-01-15"},
		{"01/02/2024", "2024-02-01"}, // DD/MM, not MM/DD
		{" 2024-01-15 ", "2024-01-15"},
		{"not-a-date", ""},
		{"99/99/2024", ""},
		{"2024-13-45", ""},
		{"15/1/2024", ""}, // single-digit components are not accepted
		{"", ""},
	}
	for _, tt := range tests {
		got := importer.NormalizeDate(importer.CellFromString(tt.in))
		if got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDateSerial(t *testing.T) {
	// Excel serial 45306 is 2024-01-15.
	got := importer.NormalizeDate(importer.CellFromString("45306"))
	if got != "2024-01-15" {
		t.Errorf("NormalizeDate(45306) = %q, want %q", got, "2024-01-15")
	}

	if got := importer.NormalizeDate(importer.CellFromString("-3")); got != "" {
		t.Errorf("NormalizeDate(-3) = %q, want empty", got)
	}
}

func TestNormalizeDateNative(t *testing.T) {
	d := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	got := importer.NormalizeDate(importer.DateCell(d))
	if got != "2024-01-15" {
		t.Errorf("NormalizeDate(native) = %q, want %q", got, "2024-01-15")
	}
}

func TestNormalizeTimeStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:05", "09:05"},
		{" 18:30 ", "18:30"},
		{"9:5", ""},
		{"0900", ""},
		{"morning", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := importer.NormalizeTime(importer.CellFromString(tt.in))
		if got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTimeFraction(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "12:00"},
		{"0.375", "09:00"},
		{"0.75", "18:00"},
		{"0", "00:00"},
		{"-0.25", ""},
	}
	for _, tt := range tests {
		got := importer.NormalizeTime(importer.CellFromString(tt.in))
		if got != tt.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
