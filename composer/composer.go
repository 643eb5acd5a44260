// Model-backed generation of the human-facing reminder texts.
package composer

import (
	"context"
	"fmt"
	"time"

	"avisame/llm"

	"go.uber.org/zap"
)

const reminderPrompt = `Tu tarea es crear un mensaje de recordatorio basado en la solicitud del usuario.
IMPORTANTE: El usuario recibirá este mensaje EXACTAMENTE a la hora indicada, no después.
Por ejemplo, si el recordatorio es para las 20:00, el usuario lo recibirá a las 20:00 exactas.
No añadas frases como 'en X minutos' o referencias a cuánto tiempo falta.

Reglas adicionales:
1. Sé breve y conciso, máximo 1-2 líneas
2. Incluye la hora del evento y su propósito
3. Asume que la hora del recordatorio ES la hora del evento mencionado
4. No uses emojis, el sistema ya los añadirá
Ejemplo correcto: 'Recordatorio: Tu cita médica es ahora, a las 15:30'
Ejemplo INCORRECTO: 'Tu cita médica es a las 15:30, ¡en 5 minutos!'`

const purposePrompt = `Extrae ÚNICAMENTE el propósito o evento principal del recordatorio solicitado.
Responde solo con 2-5 palabras que describan el evento, sin ningún texto adicional.
Ejemplo 1: Si el mensaje es 'Recuérdame mi cita médica mañana a las 3', responde solo 'cita médica'
Ejemplo 2: Si el mensaje es 'Necesito que me avises a las 8pm para llamar a Juan', responde solo 'llamar a Juan'`

type Completer interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

type Composer struct {
	Model  Completer
	Logger *zap.SugaredLogger
}

func New(model Completer, logger *zap.SugaredLogger) *Composer {
	return &Composer{
		Model:  model,
		Logger: logger.Named("composer"),
	}
}

// ReminderText writes the main reminder body for delivery exactly at
// `at`. The prompt forbids relative-time phrasing: the text is read at the
// event time, so "in N minutes" would be wrong by then.
func (c *Composer) ReminderText(ctx context.Context, originalMessage string, at time.Time) (string, error) {
	return c.Model.Complete(ctx, llm.Request{
		System:      reminderPrompt,
		User:        fmt.Sprintf("Solicitud original: '%s'. La hora del recordatorio es: %s", originalMessage, at.Format("15:04")),
		Temperature: 0.7,
		MaxTokens:   150,
	})
}

// EarlyReminderText extracts a short purpose phrase from the original
// request and wraps it in the fixed heads-up template.
func (c *Composer) EarlyReminderText(ctx context.Context, originalMessage string) (string, error) {
	purpose, err := c.Model.Complete(ctx, llm.Request{
		System:      purposePrompt,
		User:        originalMessage,
		Temperature: 0.3,
		MaxTokens:   20,
	})

	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Recordatorio anticipado: En 30 minutos tendrás tu %s. ¡Prepárate!", purpose), nil
}

// GenericReply answers a message that asked for no reminder at all.
func (c *Composer) GenericReply(ctx context.Context, message string) (string, error) {
	return c.Model.Complete(ctx, llm.Request{
		User:        message,
		Temperature: 0.8,
		TopP:        0.1,
		MaxTokens:   2048,
	})
}
