package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/config"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/dto"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-interconnections-service/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	searchInterconnections := httptransport.MakeHandlerFunc(
		endpts.InterconnectionEndpoint.SearchInterconnections,
		httptransport.DecodeQueryRequest[dto.InterconnectionRequest],
		httptransport.ResponseWithBody,
	)

	router.Group(func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.AccessLog(slog.Default()),
			httptransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/interconnections", searchInterconnections)
		router.Get("/api/v1/interconnections", searchInterconnections)
	})

	return router
}
