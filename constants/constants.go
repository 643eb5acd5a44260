package constants

import "time"

const (
	NotFound         = "{\"message\":\"We couldn't find this resource *anywhere*!\",\"error\":true}"
	NotFoundPage     = "{\"message\":\"You got the path wrong or something but this endpoint doesn't exist!\",\"error\":true}"
	BadRequest       = "{\"message\":\"You're doing something illegal!!!\",\"error\":true}"
	InternalError    = "{\"message\":\"Something went wrong on our end!\",\"error\":true}"
	MethodNotAllowed = "{\"message\":\"That method is not allowed for this endpoint!!!\",\"error\":true}"
	Success          = "{\"message\":\"Success!\",\"error\":false}"
)

const (
	// How long a pending early-reminder negotiation survives without an answer.
	PendingReminderTTL = time.Hour

	// Offset of the early heads-up before the main reminder.
	EarlyReminderOffset = 30 * time.Minute
)

// Fixed conversational replies, in the assistant's voice.
const (
	EarlyHeadsUpQuestion = " ¿Querés que te avise también 30 minutos antes? (Responde 'Sí' o 'No')"
	BothScheduledReply   = "¡Perfecto! Te avisaré 30 minutos antes y también a la hora exacta."
	DeclinedReply        = "Entendido, te avisaré solamente a la hora exacta."
	FallbackReply        = "No entendí bien si querías un recordatorio 🤔. ¿Podés repetirlo?"
)
