// In-process timed dispatch of outbound reminders.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sender delivers one outbound message right now.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// Dispatcher holds scheduled deliveries on timers until their fire time.
// Job identity is the natural key (destination, fireAt); a second request
// for the same job is a no-op, so replayed requests cannot double-send.
type Dispatcher struct {
	sender Sender
	logger *zap.SugaredLogger

	mu   sync.Mutex
	jobs map[string]*time.Timer
}

func New(sender Sender, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		logger: logger.Named("scheduler"),
		jobs:   make(map[string]*time.Timer),
	}
}

func jobID(destination string, fireAt time.Time) string {
	return fmt.Sprintf("reminder_%s_%d", destination, fireAt.Unix())
}

// Schedule queues one delivery at or after fireAt and immediately sends a
// confirmation message stating the scheduled time. Fire-and-forget for the
// caller: the delivery itself happens on the dispatcher's own timer.
func (d *Dispatcher) Schedule(ctx context.Context, destination, body string, fireAt time.Time) error {
	id := jobID(destination, fireAt)

	d.mu.Lock()

	if _, ok := d.jobs[id]; ok {
		d.mu.Unlock()
		d.logger.With(zap.String("job", id)).Warn("Duplicate schedule request ignored")
		return nil
	}

	timer := time.AfterFunc(time.Until(fireAt), func() {
		d.fire(id, destination, body)
	})

	d.jobs[id] = timer
	d.mu.Unlock()

	confirmation := fmt.Sprintf("✅ Recordatorio programado para el %s.", fireAt.Format("02/01/2006 a las 15:04"))

	err := d.sender.Send(ctx, destination, confirmation)

	if err != nil {
		// Without a confirmation the user believes nothing was
		// scheduled, so take the job back out and fail the request.
		d.mu.Lock()

		if t, ok := d.jobs[id]; ok {
			t.Stop()
			delete(d.jobs, id)
		}

		d.mu.Unlock()

		return fmt.Errorf("send schedule confirmation: %w", err)
	}

	d.logger.With(
		zap.String("job", id),
		zap.Time("fireAt", fireAt),
	).Info("Reminder scheduled")

	return nil
}

func (d *Dispatcher) fire(id, destination, body string) {
	d.mu.Lock()
	delete(d.jobs, id)
	d.mu.Unlock()

	// The request context that scheduled this job is long gone by now.
	err := d.sender.Send(context.Background(), destination, "🔔 "+body)

	if err != nil {
		d.logger.With(zap.String("job", id), zap.Error(err)).Error("Error delivering reminder")
		return
	}

	d.logger.With(zap.String("job", id)).Info("Reminder delivered")
}

// Pending returns the number of jobs still waiting to fire.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.jobs)
}

// Close stops every waiting timer. Jobs that already fired are unaffected.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, timer := range d.jobs {
		timer.Stop()
		delete(d.jobs, id)
	}
}
