package post_whatsapp_message

import (
	"strings"
	"testing"
)

func TestTwimlWrapsSingleMessage(t *testing.T) {
	got := string(twiml("Entendido, te avisaré solamente a la hora exacta."))

	if !strings.HasPrefix(got, "<?xml") {
		t.Error("Expected an XML declaration")
	}
	if !strings.Contains(got, "<Response><Message>Entendido, te avisaré solamente a la hora exacta.</Message></Response>") {
		t.Errorf("Unexpected payload %q", got)
	}
}

func TestTwimlEscapesMarkup(t *testing.T) {
	got := string(twiml(`recordatorio de "te & <vos>"`))

	if strings.Contains(got, "<vos>") {
		t.Errorf("Expected markup escaped, got %q", got)
	}
	if !strings.Contains(got, "&amp;") {
		t.Errorf("Expected ampersand escaped, got %q", got)
	}
}
