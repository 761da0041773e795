// Package store persists the ledger's durable snapshots. A Store
// holds two named slots — entries and settings — each carrying one
// serialized snapshot that is overwritten wholesale on every change.
package store

// Slot names used by the ledger.
const (
	SlotEntries  = "entries"
	SlotSettings = "settings"
)

// Store is the persistence collaborator injected into the ledger.
type Store interface {
	// Load returns the snapshot bytes for a slot, or nil when the slot
	// has never been written.
	Load(slot string) ([]byte, error)
	// Save overwrites the slot with a full snapshot.
	Save(slot string, data []byte) error
	Close() error
}
