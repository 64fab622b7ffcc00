package review

import (
	"net/http"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/review/model/dto"
	"quickcourt/internal/domains/review/service"
	"quickcourt/shared/constant"
	"quickcourt/shared/validator"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/facilities/{id}/reviews", handler.GetReviews)
	router.Post("/facilities/{id}/reviews", handler.SubmitReview)
	router.Get("/facilities/{id}/reviews/aggregate", handler.GetAggregate)
}

// GetReviews lists user reviews, newest first, followed by the seeded ones.
func (handler *Handler) GetReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	facilityID := chi.URLParam(request, constant.RequestParamID)

	reviews, err := handler.service.List(ctx, facilityID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to get reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reviews)
}

func (handler *Handler) SubmitReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitReview")
	defer scope.End()

	facilityID := chi.URLParam(request, constant.RequestParamID)

	var req dto.SubmitReviewRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	review, err := handler.service.Submit(ctx, facilityID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to submit review")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Review submitted " + review.ID)

	response.WithJSON(writer, http.StatusCreated, review)
}

func (handler *Handler) GetAggregate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAggregate")
	defer scope.End()

	facilityID := chi.URLParam(request, constant.RequestParamID)

	aggregate, err := handler.service.Aggregate(ctx, facilityID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facility_id", facilityID).Msg("failed to aggregate reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, aggregate)
}
