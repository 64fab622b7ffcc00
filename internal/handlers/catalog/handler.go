package catalog

import (
	"net/http"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/catalog/model/dto"
	"quickcourt/internal/domains/catalog/service"
	"quickcourt/shared/constant"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/facilities", handler.GetFacilities)
	router.Get("/facilities/{id}", handler.GetFacilityByID)
	router.Get("/facilities/{id}/courts", handler.GetCourts)
	router.Get("/sports", handler.GetSports)
}

// GetFacilities lists the catalog narrowed by the search, sport, price_range
// and category query parameters.
func (handler *Handler) GetFacilities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	query := request.URL.Query()

	req := dto.FilterRequest{
		Search:     query.Get(constant.RequestParamSearch),
		Sport:      query.Get(constant.RequestParamSport),
		PriceRange: query.Get(constant.RequestParamPriceRange),
		Category:   query.Get(constant.RequestParamCategory),
	}

	facilities, err := handler.service.Filter(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to filter facilities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.FacilitiesFromModels(facilities))
}

func (handler *Handler) GetFacilityByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	facility, err := handler.service.Find(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facility_id", id).Msg("failed to get facility")

		response.WithError(writer, err)

		return
	}

	var res dto.FacilityResponse
	res.FromModel(facility)

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetCourts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourts")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	courts, err := handler.service.CourtsOf(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("facility_id", id).Msg("failed to get courts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.CourtsFromModels(courts))
}

// GetSports returns the distinct sports offered, optionally narrowed by category.
func (handler *Handler) GetSports(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSports")
	defer scope.End()

	req := dto.SportsRequest{
		Category: request.URL.Query().Get(constant.RequestParamCategory),
	}

	sports, err := handler.service.Sports(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sports")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, sports)
}
