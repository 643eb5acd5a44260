// Resolution of reminder destinations from contact names in the message.
package contacts

import "strings"

// Resolver redirects a reminder to a known contact when their name shows
// up in the message text. No match, or a contact without a configured
// number, falls back to the sender.
type Resolver struct {
	contacts map[string]string
}

func New(contacts map[string]string) *Resolver {
	lowered := make(map[string]string, len(contacts))

	for name, number := range contacts {
		lowered[strings.ToLower(name)] = number
	}

	return &Resolver{contacts: lowered}
}

func (r *Resolver) Resolve(messageText, sender string) string {
	text := strings.ToLower(messageText)

	for name, number := range r.contacts {
		if strings.Contains(text, name) {
			if number == "" {
				return sender
			}

			return "whatsapp:" + number
		}
	}

	return sender
}
