package notification

import (
	"net/http"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/notification/model/dto"
	"quickcourt/internal/domains/notification/service"
	"quickcourt/shared/constant"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	center service.Center
	otel   otel.Otel
}

func New(center service.Center, otel otel.Otel) Handler {
	return Handler{
		center: center,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/notifications", handler.GetNotifications)
	router.Delete("/notifications/{id}", handler.DismissNotification)
}

func (handler *Handler) GetNotifications(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, dto.NotificationsFromModels(handler.center.Active(ctx)))
}

func (handler *Handler) DismissNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DismissNotification")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.center.Dismiss(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("notification_id", id).Msg("failed to dismiss notification")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Notification dismissed")
}
