package cmd

import (
	"testing"

	"timebank/internal/model"
)

func validManualDraft() model.EntryDraft {
	return model.EntryDraft{
		Date:             "2024-01-15",
		CheckIn:          "09:00",
		CheckOut:         "18:00",
		ContractualHours: 8,
	}
}

func TestValidateDraft(t *testing.T) {
	if err := validateDraft(validManualDraft()); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*model.EntryDraft)
	}{
		{"bad date", func(d *model.EntryDraft) { d.Date = "15/01/2024" }},
		{"bad check-in", func(d *model.EntryDraft) { d.CheckIn = "9am" }},
		{"bad check-out", func(d *model.EntryDraft) { d.CheckOut = "" }},
		{"half lunch", func(d *model.EntryDraft) { d.LunchOut = "12:00" }},
		{"bad lunch time", func(d *model.EntryDraft) { d.LunchOut = "noon"; d.LunchIn = "13:00" }},
		{"hours out of range", func(d *model.EntryDraft) { d.ContractualHours = 25 }},
	}
	for _, tt := range mutations {
		d := validManualDraft()
		tt.mutate(&d)
		if err := validateDraft(d); err == nil {
			t.Errorf("%s: expected error, got none", tt.name)
		}
	}
}
