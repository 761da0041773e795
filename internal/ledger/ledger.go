// Package ledger coordinates the entry collection: lifecycle
// operations, derived-field computation, and write-through to the
// persistence collaborator.
package ledger

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"timebank/internal/model"
	"timebank/internal/store"
	"timebank/internal/timecalc"
)

// Ledger owns the in-memory entry collection and settings. All
// operations run to completion on the caller's goroutine; the model is
// single-threaded by contract, so no locking is done here. After every
// successful mutation the relevant snapshot is written through to the
// injected store. A failed write surfaces as the returned error, but
// the in-memory state stays authoritative for the session.
type Ledger struct {
	entries  []model.TimeEntry
	settings model.WorkSettings
	store    store.Store
	log      zerolog.Logger
}

// Open loads both snapshot slots and returns a ready ledger. A slot
// that is absent or holds malformed data falls back to an empty
// collection / default settings; startup never fails on bad snapshots.
func Open(st store.Store, log zerolog.Logger) (*Ledger, error) {
	l := &Ledger{
		entries:  []model.TimeEntry{},
		settings: model.DefaultWorkSettings(),
		store:    st,
		log:      log,
	}

	data, err := st.Load(store.SlotEntries)
	if err != nil {
		return nil, fmt.Errorf("loading entries: %w", err)
	}
	if data != nil {
		var entries []model.TimeEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			l.log.Warn().Err(err).Msg("entries snapshot is malformed, starting empty")
		} else {
			l.entries = entries
		}
	}

	data, err = st.Load(store.SlotSettings)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if data != nil {
		var settings model.WorkSettings
		if err := json.Unmarshal(data, &settings); err != nil {
			l.log.Warn().Err(err).Msg("settings snapshot is malformed, using defaults")
		} else {
			l.settings = settings
		}
	}

	l.sortEntries()
	return l, nil
}

// newEntry stamps a draft with a fresh ID and the derived fields.
func newEntry(draft model.EntryDraft) model.TimeEntry {
	worked := timecalc.WorkedHours(draft.CheckIn, draft.CheckOut, draft.LunchOut, draft.LunchIn)
	return model.TimeEntry{
		ID:               uuid.NewString(),
		Date:             draft.Date,
		CheckIn:          draft.CheckIn,
		LunchOut:         draft.LunchOut,
		LunchIn:          draft.LunchIn,
		CheckOut:         draft.CheckOut,
		ContractualHours: draft.ContractualHours,
		WorkedHours:      worked,
		Balance:          timecalc.Balance(worked, draft.ContractualHours),
		Notes:            draft.Notes,
	}
}

// Add creates an entry from a draft and inserts it into the
// collection, which stays sorted descending by date.
func (l *Ledger) Add(draft model.EntryDraft) (model.TimeEntry, error) {
	entry := newEntry(draft)
	l.entries = append([]model.TimeEntry{entry}, l.entries...)
	l.sortEntries()
	l.log.Info().Str("id", entry.ID).Str("date", entry.Date).Msg("entry added")
	return entry, l.persistEntries()
}

// BulkImport inserts a batch of drafts, dropping any draft whose date
// already exists in the collection as it was before the import
// (first-write-wins; the incoming batch is not de-duplicated against
// itself). Returns the number of entries actually inserted.
func (l *Ledger) BulkImport(drafts []model.EntryDraft) (int, error) {
	existing := make(map[string]bool, len(l.entries))
	for _, e := range l.entries {
		existing[e.Date] = true
	}

	inserted := 0
	for _, draft := range drafts {
		if existing[draft.Date] {
			l.log.Debug().Str("date", draft.Date).Msg("duplicate date skipped")
			continue
		}
		l.entries = append(l.entries, newEntry(draft))
		inserted++
	}
	if inserted == 0 {
		return 0, nil
	}

	l.sortEntries()
	l.log.Info().Int("inserted", inserted).Int("received", len(drafts)).Msg("bulk import merged")
	return inserted, l.persistEntries()
}

// Update replaces the fields of the entry with the given id from the
// draft, recomputing the derived fields. The identity is unchanged.
// An unknown id is a silent no-op, which keeps UI retries idempotent.
func (l *Ledger) Update(id string, draft model.EntryDraft) error {
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		entry := newEntry(draft)
		entry.ID = id
		l.entries[i] = entry
		l.sortEntries()
		l.log.Info().Str("id", id).Msg("entry updated")
		return l.persistEntries()
	}
	return nil
}

// Delete removes the entry with the given id. Unknown ids are a
// silent no-op.
func (l *Ledger) Delete(id string) error {
	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		l.log.Info().Str("id", id).Msg("entry deleted")
		return l.persistEntries()
	}
	return nil
}

// Entries returns a copy of the collection, sorted descending by date.
func (l *Ledger) Entries() []model.TimeEntry {
	out := make([]model.TimeEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Find returns the entry with the given id, if present.
func (l *Ledger) Find(id string) (model.TimeEntry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.TimeEntry{}, false
}

// Summary recomputes the aggregate totals from the current collection.
func (l *Ledger) Summary() model.TimeBankSummary {
	return timecalc.Summarize(l.entries)
}

// Settings returns the current work settings.
func (l *Ledger) Settings() model.WorkSettings {
	return l.settings
}

// UpdateSettings replaces the settings wholesale and persists them.
func (l *Ledger) UpdateSettings(s model.WorkSettings) error {
	l.settings = s
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return l.store.Save(store.SlotSettings, data)
}

// sortEntries orders the collection descending by date. Canonical
// YYYY-MM-DD dates sort correctly as strings; the stable sort keeps
// insertion order between same-date entries.
func (l *Ledger) sortEntries() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date > l.entries[j].Date
	})
}

func (l *Ledger) persistEntries() error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	if err := l.store.Save(store.SlotEntries, data); err != nil {
		return fmt.Errorf("persisting entries: %w", err)
	}
	return nil
}
