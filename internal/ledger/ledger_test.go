package ledger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timebank/internal/ledger"
	"timebank/internal/model"
	"timebank/internal/store"
)

// memStore is an in-memory Store fake that records save calls.
type memStore struct {
	slots map[string][]byte
	saves int
}

func newMemStore() *memStore {
	return &memStore{slots: map[string][]byte{}}
}

func (m *memStore) Load(slot string) ([]byte, error) {
	return m.slots[slot], nil
}

func (m *memStore) Save(slot string, data []byte) error {
	m.slots[slot] = data
	m.saves++
	return nil
}

func (m *memStore) Close() error { return nil }

func openLedger(t *testing.T, st store.Store) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Open(st, zerolog.Nop())
	require.NoError(t, err)
	return l
}

func draft(date string) model.EntryDraft {
	return model.EntryDraft{
		Date:             date,
		CheckIn:          "09:00",
		LunchOut:         "12:00",
		LunchIn:          "13:00",
		CheckOut:         "18:00",
		ContractualHours: 8,
	}
}

func TestAddComputesDerivedFields(t *testing.T) {
	l := openLedger(t, newMemStore())

	entry, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 8.0, entry.WorkedHours)
	assert.Equal(t, 0.0, entry.Balance)
}

func TestEntriesSortedDescendingByDate(t *testing.T) {
	l := openLedger(t, newMemStore())

	for _, d := range []string{"2024-01-15", "2024-01-17", "2024-01-16"} {
		_, err := l.Add(draft(d))
		require.NoError(t, err)
	}

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-01-17", entries[0].Date)
	assert.Equal(t, "2024-01-16", entries[1].Date)
	assert.Equal(t, "2024-01-15", entries[2].Date)
}

func TestBulkImportDeduplicatesByDate(t *testing.T) {
	l := openLedger(t, newMemStore())
	_, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)

	inserted, err := l.BulkImport([]model.EntryDraft{
		draft("2024-01-15"), // already in the ledger, dropped
		draft("2024-01-16"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, inserted)
	require.Len(t, l.Entries(), 2)
	assert.Equal(t, "2024-01-16", l.Entries()[0].Date)
}

func TestBulkImportKeepsBatchInternalDuplicates(t *testing.T) {
	// De-duplication is against the pre-import collection only, not
	// within the incoming batch.
	l := openLedger(t, newMemStore())

	inserted, err := l.BulkImport([]model.EntryDraft{
		draft("2024-01-15"),
		draft("2024-01-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, inserted)
	assert.Len(t, l.Entries(), 2)
}

func TestUpdateRecomputesAndKeepsID(t *testing.T) {
	l := openLedger(t, newMemStore())
	entry, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)

	d := draft("2024-01-15")
	d.CheckOut = "19:00"
	require.NoError(t, l.Update(entry.ID, d))

	updated, ok := l.Find(entry.ID)
	require.True(t, ok)
	assert.Equal(t, 9.0, updated.WorkedHours)
	assert.Equal(t, 1.0, updated.Balance)
	assert.Equal(t, entry.ID, updated.ID)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	st := newMemStore()
	l := openLedger(t, st)
	_, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)
	savesBefore := st.saves

	require.NoError(t, l.Update("missing", draft("2024-01-16")))
	assert.Equal(t, savesBefore, st.saves)
	assert.Len(t, l.Entries(), 1)
}

func TestDelete(t *testing.T) {
	l := openLedger(t, newMemStore())
	entry, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)

	require.NoError(t, l.Delete(entry.ID))
	assert.Empty(t, l.Entries())

	// Unknown id is a silent no-op.
	require.NoError(t, l.Delete("missing"))
}

func TestPersistenceRoundTrip(t *testing.T) {
	st := newMemStore()
	l := openLedger(t, st)
	_, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)
	require.NoError(t, l.UpdateSettings(model.WorkSettings{
		DefaultContractualHours: 6,
		LunchBreakMinutes:       30,
		WorkDays:                []string{"monday"},
	}))

	// A second ledger over the same store sees the persisted state.
	l2 := openLedger(t, st)
	require.Len(t, l2.Entries(), 1)
	assert.Equal(t, "2024-01-15", l2.Entries()[0].Date)
	assert.Equal(t, 6.0, l2.Settings().DefaultContractualHours)
}

func TestOpenWithMalformedSnapshots(t *testing.T) {
	st := newMemStore()
	st.slots[store.SlotEntries] = []byte("{not json")
	st.slots[store.SlotSettings] = []byte("also not json")

	l := openLedger(t, st)
	assert.Empty(t, l.Entries())
	assert.Equal(t, model.DefaultWorkSettings(), l.Settings())
}

func TestSummary(t *testing.T) {
	l := openLedger(t, newMemStore())
	_, err := l.Add(draft("2024-01-15"))
	require.NoError(t, err)

	d := draft("2024-01-16")
	d.CheckOut = "17:00"
	_, err = l.Add(d)
	require.NoError(t, err)

	s := l.Summary()
	assert.Equal(t, 2, s.DaysWorked)
	assert.Equal(t, 15.0, s.TotalWorkedHours)
	assert.Equal(t, -1.0, s.TotalBalance)
	assert.Equal(t, 7.5, s.AverageWorkedHours)
}
