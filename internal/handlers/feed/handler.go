package feed

import (
	"net/http"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/feed/model/dto"
	"quickcourt/internal/domains/feed/service"
	"quickcourt/shared/constant"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	refresher service.Refresher
	otel      otel.Otel
}

func New(refresher service.Refresher, otel otel.Otel) Handler {
	return Handler{
		refresher: refresher,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feed", func(routerGroup chi.Router) {
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Get("/status", handler.GetStatus)
	})
}

// Refresh runs one refresh synchronously and returns the catalog diff.
// It answers 409 while another refresh is running.
func (handler *Handler) Refresh(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	diff, err := handler.refresher.Refresh(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh feed")

		response.WithError(writer, err)

		return
	}

	var res dto.DiffResponse
	res.FromModel(diff)

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.refresher.Status(ctx))
}
