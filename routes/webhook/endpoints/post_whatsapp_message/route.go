package post_whatsapp_message

import (
	"encoding/xml"
	"net/http"
	"time"

	"avisame/api"
	"avisame/state"

	"go.uber.org/zap"
)

// TwiML payload for the synchronous webhook reply: exactly one message.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func twiml(reply string) []byte {
	out, err := xml.Marshal(messagingResponse{Message: reply})

	if err != nil {
		// A string payload cannot fail to marshal; keep the compiler honest.
		panic(err)
	}

	return append([]byte(xml.Header), out...)
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	err := r.ParseForm()

	if err != nil {
		return api.DefaultResponse(http.StatusBadRequest)
	}

	// Body may legitimately be absent; an empty message must not crash.
	message := r.PostFormValue("Body")
	sender := r.PostFormValue("From")

	if sender == "" {
		return api.DefaultResponse(http.StatusBadRequest)
	}

	destination := state.Contacts.Resolve(message, sender)

	state.History.Record(d.Context, "Usuario WhatsApp", message)

	intent, err := state.Interpreter.Interpret(d.Context, message, time.Now())

	if err != nil {
		state.Logger.With(zap.String("sender", sender), zap.Error(err)).Error("Error interpreting message")
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	reply, err := state.Engine.Handle(d.Context, sender, destination, message, intent)

	if err != nil {
		// Failing loudly beats replying from a corrupted negotiation.
		state.Logger.With(zap.String("sender", sender), zap.Error(err)).Error("Error handling message")
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.History.Record(d.Context, "IA", reply)

	return api.HttpResponse{
		Bytes: twiml(reply),
		Headers: map[string]string{
			"Content-Type": "text/xml; charset=utf-8",
		},
	}
}
