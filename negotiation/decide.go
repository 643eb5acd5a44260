// The reminder negotiation state machine.
//
// A sender is either Idle or mid-negotiation (AwaitingConfirmation, which
// is simply "a pending reminder exists for them"). Decide is the pure
// transition function; Engine executes what it decides.
package negotiation

import (
	"regexp"
	"strings"
	"time"

	"avisame/types"
)

type State int

const (
	StateIdle State = iota
	StateAwaitingConfirmation
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingConfirmation:
		return "awaiting_confirmation"
	}

	return "unknown"
}

// StateOf derives the sender's state from their stored context. The
// record's existence is the whole signal.
func StateOf(stored *types.PendingReminder) State {
	if stored != nil {
		return StateAwaitingConfirmation
	}

	return StateIdle
}

type Action int

const (
	// Hand the message to the generic conversation collaborator.
	ActionGenericReply Action = iota

	// Store a pending reminder and ask the early heads-up question.
	ActionAskEarlyHeadsUp

	// Schedule one delivery at When.
	ActionScheduleSingle

	// Schedule the early heads-up and the main delivery.
	ActionScheduleBoth
)

// Decision is the outcome of one transition: which action to take, the
// delivery time for scheduling actions, and the message text the composer
// should work from.
type Decision struct {
	Action Action
	When   time.Time
	Source string

	// Set when the interpreter claimed a reminder but its timestamp was
	// absent or unparseable. The fall-through to a generic reply loses
	// the user's stated intent; flagged so the engine can log it.
	LostIntent bool
}

var affirmativeRegex = regexp.MustCompile(`^(s[iíì]|yes|ok|dale|claro)`)

// Affirmative reports whether a confirmation answer counts as "yes":
// a prefix match on the trimmed, lowercased message.
func Affirmative(message string) bool {
	return affirmativeRegex.MatchString(strings.ToLower(strings.TrimSpace(message)))
}

// Decide computes the transition for one inbound message.
//
// A stored context always wins over whatever the fresh interpretation
// says: the sender is mid-negotiation and answering our question, not
// opening a second one.
func Decide(intent *types.Intent, stored *types.PendingReminder, message string) Decision {
	if StateOf(stored) == StateAwaitingConfirmation {
		action := ActionScheduleSingle

		if Affirmative(message) {
			action = ActionScheduleBoth
		}

		return Decision{
			Action: action,
			When:   stored.ScheduledFor,
			Source: stored.OriginalMessage,
		}
	}

	if !intent.IsReminder {
		return Decision{Action: ActionGenericReply}
	}

	when, err := intent.Time()

	if err != nil {
		return Decision{
			Action:     ActionGenericReply,
			LostIntent: true,
		}
	}

	if intent.WantsEarlyHeadsUp && intent.EventKind == types.EventAppointment {
		return Decision{
			Action: ActionAskEarlyHeadsUp,
			When:   when,
			Source: message,
		}
	}

	return Decision{
		Action: ActionScheduleSingle,
		When:   when,
		Source: message,
	}
}
