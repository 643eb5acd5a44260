package interpreter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"avisame/constants"
	"avisame/llm"
	"avisame/types"

	"go.uber.org/zap"
)

type stubModel struct {
	output  string
	err     error
	lastReq llm.Request
}

func (s *stubModel) Complete(_ context.Context, req llm.Request) (string, error) {
	s.lastReq = req
	return s.output, s.err
}

func newTestInterpreter(model *stubModel) *Interpreter {
	return New(model, zap.NewNop().Sugar())
}

func TestInterpretPlainJSON(t *testing.T) {
	model := &stubModel{output: `{"respuesta":"Anotado!","es_recordatorio":true,"fecha_hora":"2025-06-10T15:00:00","tipo_evento":"cita","tiempo_anticipacion":true}`}

	intent, err := newTestInterpreter(model).Interpret(context.Background(), "Recuérdame mi cita médica", time.Now())

	if err != nil {
		t.Fatal(err)
	}
	if !intent.IsReminder {
		t.Error("Expected a reminder intent")
	}
	if intent.EventKind != types.EventAppointment {
		t.Errorf("Expected cita, got %q", intent.EventKind)
	}
	if !intent.WantsEarlyHeadsUp {
		t.Error("Expected early heads-up")
	}

	when, err := intent.Time()
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2025, 6, 10, 15, 0, 0, 0, time.Local)
	if !when.Equal(want) {
		t.Errorf("Expected %v, got %v", want, when)
	}
}

func TestInterpretStripsFences(t *testing.T) {
	model := &stubModel{output: "```json\n{\"respuesta\":\"ok\",\"es_recordatorio\":false,\"fecha_hora\":null}\n```"}

	intent, err := newTestInterpreter(model).Interpret(context.Background(), "hola", time.Now())

	if err != nil {
		t.Fatal(err)
	}
	if intent.IsReminder {
		t.Error("Expected no reminder")
	}
	if intent.Reply != "ok" {
		t.Errorf("Expected reply preserved, got %q", intent.Reply)
	}
}

func TestInterpretDefaultsMissingFields(t *testing.T) {
	model := &stubModel{output: `{"respuesta":"ok","es_recordatorio":true,"fecha_hora":"2025-06-10T15:00:00"}`}

	intent, err := newTestInterpreter(model).Interpret(context.Background(), "recordame", time.Now())

	if err != nil {
		t.Fatal(err)
	}
	if intent.EventKind != types.EventSimpleReminder {
		t.Errorf("Expected the simple-reminder default, got %q", intent.EventKind)
	}
	if intent.WantsEarlyHeadsUp {
		t.Error("Expected early heads-up to default to false")
	}
}

func TestInterpretGarbageFallsBack(t *testing.T) {
	model := &stubModel{output: "Claro! Te recuerdo eso mañana a las 3 :)"}

	intent, err := newTestInterpreter(model).Interpret(context.Background(), "recordame", time.Now())

	if err != nil {
		t.Fatal(err)
	}
	if intent.IsReminder {
		t.Error("Expected the fallback to not be a reminder")
	}
	if intent.Reply != constants.FallbackReply {
		t.Errorf("Expected the fixed fallback reply, got %q", intent.Reply)
	}
}

func TestInterpretRepairsAlmostJSON(t *testing.T) {
	// Single-quoted output is repairable, not a fallback case.
	model := &stubModel{output: `{'respuesta': 'ok', 'es_recordatorio': true, 'fecha_hora': '2025-06-10T15:00:00'}`}

	intent, err := newTestInterpreter(model).Interpret(context.Background(), "recordame", time.Now())

	if err != nil {
		t.Fatal(err)
	}
	if !intent.IsReminder {
		t.Error("Expected the repaired output to parse as a reminder")
	}
}

func TestInterpretTransportErrorSurfaces(t *testing.T) {
	model := &stubModel{err: errors.New("endpoint down")}

	_, err := newTestInterpreter(model).Interpret(context.Background(), "hola", time.Now())

	if err == nil {
		t.Fatal("Expected the transport error to surface")
	}
}

func TestInterpretInjectsCurrentTime(t *testing.T) {
	model := &stubModel{output: `{"respuesta":"ok","es_recordatorio":false}`}

	now := time.Date(2025, 5, 8, 13, 13, 0, 0, time.Local)

	_, err := newTestInterpreter(model).Interpret(context.Background(), "hola", now)

	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(model.lastReq.System, "2025-05-08T13:13:00") {
		t.Error("Expected the current time in the system prompt")
	}
	if model.lastReq.User != "hola" {
		t.Errorf("Expected the raw message as user content, got %q", model.lastReq.User)
	}
}
