// Per-sender storage for a reminder negotiation awaiting a yes/no answer.
//
// Exactly one slot exists per sender and a later negotiation overwrites an
// earlier one. Entries expire on their own after constants.PendingReminderTTL;
// a consumer never needs a separate staleness check.
package pending

import (
	"context"

	"avisame/types"
)

type Store interface {
	// Put upserts the sender's pending reminder and refreshes its expiry.
	Put(ctx context.Context, sender string, p types.PendingReminder) error

	// Get returns the sender's pending reminder, or nil when none exists
	// or it has expired. A non-nil error means the backing store itself
	// failed and the negotiation state cannot be trusted.
	Get(ctx context.Context, sender string) (*types.PendingReminder, error)

	// Clear deletes the sender's pending reminder. Idempotent.
	Clear(ctx context.Context, sender string) error
}
