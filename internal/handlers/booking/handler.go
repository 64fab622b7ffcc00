package booking

import (
	"net/http"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/booking/model/dto"
	"quickcourt/internal/domains/booking/service"
	"quickcourt/shared/constant"
	"quickcourt/shared/validator"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/facilities/{id}/flows", handler.StartFlow)

	router.Get("/flows/{id}", handler.GetFlow)
	router.Delete("/flows/{id}", handler.AbortFlow)
	router.Patch("/flows/{id}/selection", handler.UpdateSelection)
	router.Get("/flows/{id}/quote", handler.GetQuote)
	router.Post("/flows/{id}/proceed", handler.Proceed)
	router.Post("/flows/{id}/back", handler.Back)
	router.Post("/flows/{id}/confirm", handler.Confirm)
	router.Get("/bookings", handler.GetBookings)
}

// StartFlow opens a booking flow for the facility in the {id} path parameter.
func (handler *Handler) StartFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartFlow")
	defer scope.End()

	facilityID := chi.URLParam(request, constant.RequestParamID)

	flow, err := handler.service.Start(ctx, facilityID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to start booking flow")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking flow started " + flow.ID)

	response.WithJSON(writer, http.StatusCreated, flow)
}

func (handler *Handler) GetFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlow")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	flow, err := handler.service.Get(ctx, flowID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to get booking flow")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, flow)
}

// UpdateSelection applies a partial selection. Omitted fields keep their value;
// an empty string clears court, date or time slot.
func (handler *Handler) UpdateSelection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSelection")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	var req dto.UpdateSelectionRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	flow, err := handler.service.UpdateSelection(ctx, flowID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to update selection")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, flow)
}

func (handler *Handler) GetQuote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	quote, err := handler.service.Quote(ctx, flowID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to quote booking flow")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, quote)
}

func (handler *Handler) Proceed(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Proceed")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	flow, err := handler.service.Proceed(ctx, flowID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to proceed booking flow")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, flow)
}

func (handler *Handler) Back(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	flow, err := handler.service.Back(ctx, flowID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to step back booking flow")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, flow)
}

// Confirm records the booking. The flow only completes once the booking is persisted.
func (handler *Handler) Confirm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	var req dto.ConfirmRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Confirm(ctx, flowID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking confirmed " + booking.ID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

func (handler *Handler) AbortFlow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbortFlow")
	defer scope.End()

	flowID := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Abort(ctx, flowID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flow_id", flowID).Msg("failed to abort booking flow")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking flow aborted")
}

func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.Bookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}
