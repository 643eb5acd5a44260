package main

import (
	"net/http"
	"time"

	"avisame/api"
	"avisame/constants"
	"avisame/routes/webhook"
	"avisame/state"
	"avisame/zapchi"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	state.Setup()

	state.Logger.Info("Starting avisame")

	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.CleanPath,
		zapchi.Logger(state.Logger, "api"),
		middleware.Timeout(30*time.Second),
	)

	routers := []api.APIRouter{
		// Use same order as routes folder
		webhook.Router{},
	}

	for _, router := range routers {
		name, _ := router.Tag()
		if name != "" {
			api.CurrentTag = name
		} else {
			panic("Router tag name cannot be empty")
		}

		router.Routes(r)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(constants.NotFoundPage))
	})

	defer state.Dispatcher.Close()

	err := http.ListenAndServe(state.Config.Meta.Port, r)

	if err != nil {
		state.Logger.Fatal(err)
	}
}
