// Turns free text into a structured reminder intent via the model.
package interpreter

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"avisame/constants"
	"avisame/llm"
	"avisame/types"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// The model is told to answer with flat JSON only, but fenced output still
// shows up now and then.
var fenceRegex = regexp.MustCompile("(?s)^```(?:json)?\\s*|\\s*```$")

const systemPrompt = `Tu tarea es detectar si el mensaje del usuario implica que desea un recordatorio.
La hora actual es: %s
Debes responder exclusivamente con un JSON plano que contenga estas claves:
- 'respuesta': una frase breve y amistosa confirmando lo que pidió
- 'es_recordatorio': true o false
- 'fecha_hora': Una fecha y hora en formato ISO 8601 (por ejemplo: '2025-05-08T13:13:00') si se puede deducir del mensaje. Si no se puede deducir, devolver null
- 'tipo_evento': categoriza el evento como 'cita' (médica, importante, reunión formal), 'tarea_rutinaria' (medicamentos, comidas), o 'recordatorio_simple' (otros)
- 'tiempo_anticipacion': determina si este tipo de evento se beneficiaría de un recordatorio anticipado. Devuelve true para citas importantes que no son inmediatas, false para tareas rutinarias o recordatorios inmediatos (menos de 2 horas)
No uses etiquetas ` + "```json" + `, ni texto adicional, solo JSON.`

type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

type Interpreter struct {
	Model  Completer
	Logger *zap.SugaredLogger
}

func New(model Completer, logger *zap.SugaredLogger) *Interpreter {
	return &Interpreter{
		Model:  model,
		Logger: logger.Named("interpreter"),
	}
}

// Fallback returns the fixed intent substituted when the model's output
// cannot be made sense of. Always a valid non-reminder.
func Fallback() *types.Intent {
	return &types.Intent{
		Reply:      constants.FallbackReply,
		IsReminder: false,
		EventKind:  types.EventSimpleReminder,
	}
}

// Interpret runs one interpretation round-trip. Malformed model output is
// recovered locally via the fallback intent, never surfaced as an error;
// only the transport failing is.
func (i *Interpreter) Interpret(ctx context.Context, message string, now time.Time) (*types.Intent, error) {
	raw, err := i.Model.Complete(ctx, llm.Request{
		System:      systemPromptAt(now),
		User:        message,
		Temperature: 0.3,
		MaxTokens:   300,
	})

	if err != nil {
		return nil, err
	}

	intent := parse(raw)

	if intent == nil {
		i.Logger.With(zap.String("raw", raw)).Warn("Unparseable model output, using fallback intent")
		return Fallback(), nil
	}

	return intent, nil
}

func systemPromptAt(now time.Time) string {
	// Same shape the model was prompted with originally: a naive local
	// ISO timestamp.
	return fmt.Sprintf(systemPrompt, now.Format("2006-01-02T15:04:05"))
}

func parse(raw string) *types.Intent {
	cleaned := fenceRegex.ReplaceAllString(raw, "")

	var intent types.Intent

	err := json.UnmarshalFromString(cleaned, &intent)

	if err != nil {
		// Second chance: the repair pass fixes truncated/single-quoted
		// output the model occasionally emits.
		repaired, repairErr := jsonrepair.JSONRepair(cleaned)

		if repairErr != nil {
			return nil
		}

		err = json.UnmarshalFromString(repaired, &intent)

		if err != nil {
			return nil
		}
	}

	if intent.EventKind == "" {
		intent.EventKind = types.EventSimpleReminder
	}

	return &intent
}
