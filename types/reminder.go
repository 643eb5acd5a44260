package types

import "time"

// PendingReminder is the single-slot negotiation context stored per sender
// while an early heads-up question is awaiting a yes/no answer. The
// existence of the record is the pending signal.
type PendingReminder struct {
	// The originally requested delivery time.
	ScheduledFor time.Time

	// Verbatim user text, kept to regenerate composed reminder text.
	OriginalMessage string
}

// ScheduledMessage is one outbound delivery held by the dispatcher until
// its fire time. (Destination, FireAt) is its natural identity.
type ScheduledMessage struct {
	Destination string    `json:"destination"`
	Body        string    `json:"body"`
	FireAt      time.Time `json:"fire_at"`
}
