package types

import (
	"errors"
	"time"
)

// EventKind is the interpreter's classification of a reminder-worthy event.
// Values match the JSON contract the model is prompted with.
type EventKind string

const (
	EventAppointment    EventKind = "cita"
	EventRoutineTask    EventKind = "tarea_rutinaria"
	EventSimpleReminder EventKind = "recordatorio_simple"
)

// Intent is the structured interpretation of one inbound message.
// JSON keys follow the model prompt contract and are Spanish on the wire.
type Intent struct {
	// Short friendly acknowledgment of what the user asked for.
	Reply string `json:"respuesta"`

	IsReminder bool `json:"es_recordatorio"`

	// ISO 8601 timestamp deduced from the message, nil when none could be.
	When *string `json:"fecha_hora"`

	EventKind EventKind `json:"tipo_evento"`

	// Whether the event would benefit from an early heads-up. Only
	// meaningful for appointments that are not imminent.
	WantsEarlyHeadsUp bool `json:"tiempo_anticipacion"`
}

var ErrNoTimestamp = errors.New("intent has no timestamp")

// Timestamps come back from the model without a zone offset most of the
// time, so naive values are read in the server's local zone.
var whenLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

// Time parses the intent's timestamp. ErrNoTimestamp when absent; any
// other error means the model produced something unparseable.
func (i *Intent) Time() (time.Time, error) {
	if i.When == nil || *i.When == "" {
		return time.Time{}, ErrNoTimestamp
	}

	var lastErr error

	for _, layout := range whenLayouts {
		t, err := time.ParseInLocation(layout, *i.When, time.Local)

		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}
