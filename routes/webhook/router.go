package webhook

import (
	"avisame/api"
	"avisame/routes/webhook/endpoints/post_whatsapp_message"

	"github.com/go-chi/chi/v5"
)

const tagName = "Webhook"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "The inbound messaging-provider webhook"
}

func (b Router) Routes(r *chi.Mux) {
	api.Route{
		Pattern: "/whatsapp",
		OpId:    "post_whatsapp_message",
		Method:  api.POST,
		Handler: post_whatsapp_message.Route,
	}.Route(r)
}
