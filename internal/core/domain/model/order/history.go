package order

import (
	"time"

	"storefront/internal/pkg/errs"
)

// HistoryEntry is one append-only row of the order's status history. Entries
// are never updated or deleted; display order is newest-first, audit replay
// follows insertion order.
type HistoryEntry struct {
	status     Status
	note       string
	occurredAt time.Time

	isConstructed bool
}

// NewHistoryEntry records a status transition that just happened.
func NewHistoryEntry(status Status, note string) (HistoryEntry, error) {
	return RestoreHistoryEntry(status, note, time.Now().UTC())
}

// RestoreHistoryEntry reconstructs a history row from persistence.
func RestoreHistoryEntry(status Status, note string, occurredAt time.Time) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if occurredAt.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("occurredAt")
	}

	return HistoryEntry{
		status:        status,
		note:          note,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Status returns the status the order entered.
func (h HistoryEntry) Status() Status { return h.status }

// Note returns the optional operator note.
func (h HistoryEntry) Note() string { return h.note }

// OccurredAt returns when the transition happened.
func (h HistoryEntry) OccurredAt() time.Time { return h.occurredAt }

// Validate ensures the entry was created through a constructor.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return errs.NewValueIsRequiredError("HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry")
	}
	return nil
}
