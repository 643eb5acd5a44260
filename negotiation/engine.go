package negotiation

import (
	"context"
	"time"

	"avisame/constants"
	"avisame/pending"
	"avisame/types"

	"go.uber.org/zap"
)

// Scheduler accepts one future delivery. Fire-and-forget from the engine's
// perspective; it never blocks on the delivery itself.
type Scheduler interface {
	Schedule(ctx context.Context, destination, body string, fireAt time.Time) error
}

// Composer produces the human-facing texts. All calls are blocking
// round-trips with no internal retry.
type Composer interface {
	ReminderText(ctx context.Context, originalMessage string, at time.Time) (string, error)
	EarlyReminderText(ctx context.Context, originalMessage string) (string, error)
	GenericReply(ctx context.Context, message string) (string, error)
}

type Engine struct {
	Store     pending.Store
	Composer  Composer
	Scheduler Scheduler
	Logger    *zap.SugaredLogger
}

func NewEngine(store pending.Store, composer Composer, scheduler Scheduler, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		Store:     store,
		Composer:  composer,
		Scheduler: scheduler,
		Logger:    logger.Named("negotiation"),
	}
}

// Handle runs one full transition for an inbound message: consult the
// stored context, decide, execute (compose, schedule, mutate the store)
// and return exactly one reply.
//
// Errors are fatal to the request: a failing store means the negotiation
// state cannot be trusted, and composer/scheduler failures mean no honest
// reply exists. The caller decides how loudly to fail.
func (e *Engine) Handle(ctx context.Context, sender, destination, message string, intent *types.Intent) (string, error) {
	stored, err := e.Store.Get(ctx, sender)

	if err != nil {
		return "", err
	}

	d := Decide(intent, stored, message)

	switch d.Action {
	case ActionAskEarlyHeadsUp:
		err = e.Store.Put(ctx, sender, types.PendingReminder{
			ScheduledFor:    d.When,
			OriginalMessage: d.Source,
		})

		if err != nil {
			return "", err
		}

		return intent.Reply + constants.EarlyHeadsUpQuestion, nil

	case ActionScheduleSingle:
		body, err := e.Composer.ReminderText(ctx, d.Source, d.When)

		if err != nil {
			return "", err
		}

		err = e.Scheduler.Schedule(ctx, destination, body, d.When)

		if err != nil {
			return "", err
		}

		// Idle schedules acknowledge with the interpreter's reply;
		// a declined heads-up gets the fixed acknowledgment instead.
		if StateOf(stored) == StateAwaitingConfirmation {
			err = e.Store.Clear(ctx, sender)

			if err != nil {
				return "", err
			}

			return constants.DeclinedReply, nil
		}

		return intent.Reply, nil

	case ActionScheduleBoth:
		earlyBody, err := e.Composer.EarlyReminderText(ctx, d.Source)

		if err != nil {
			return "", err
		}

		body, err := e.Composer.ReminderText(ctx, d.Source, d.When)

		if err != nil {
			return "", err
		}

		err = e.Scheduler.Schedule(ctx, destination, earlyBody, d.When.Add(-constants.EarlyReminderOffset))

		if err != nil {
			return "", err
		}

		err = e.Scheduler.Schedule(ctx, destination, body, d.When)

		if err != nil {
			return "", err
		}

		err = e.Store.Clear(ctx, sender)

		if err != nil {
			return "", err
		}

		return constants.BothScheduledReply, nil

	default:
		if d.LostIntent {
			// The interpreter saw a reminder but no usable timestamp.
			// The original behavior falls through to plain conversation
			// without telling the user parsing failed; kept, but not
			// silently.
			e.Logger.With(
				zap.String("sender", sender),
				zap.String("message", message),
			).Warn("Reminder intent lost: timestamp absent or unparseable")
		}

		return e.Composer.GenericReply(ctx, message)
	}
}
