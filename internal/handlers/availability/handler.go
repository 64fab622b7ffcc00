package availability

import (
	"net/http"

	"quickcourt/config"
	"quickcourt/infras/otel"
	"quickcourt/internal/domains/pricing"
	"quickcourt/shared/constant"
	"quickcourt/shared/timezone"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DatesResponse struct {
	Reference   string   `json:"reference"`
	HorizonDays int      `json:"horizon_days"`
	Dates       []string `json:"dates"`
}

type Handler struct {
	config *config.Config
	otel   otel.Otel
	now    func() timezone.Date
}

func New(config *config.Config, otel otel.Otel) Handler {
	return Handler{
		config: config,
		otel:   otel,
		now: func() timezone.Date {
			return timezone.DateOf(timezone.Now())
		},
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/dates", handler.GetDates)
		routerGroup.Get("/time-slots", handler.GetTimeSlots)
	})
}

// GetDates lists the selectable booking dates, starting tomorrow in the app timezone.
func (handler *Handler) GetDates(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDates")
	defer scope.End()

	horizon := handler.config.App.BookingHorizonDays
	if horizon <= 0 {
		horizon = constant.DefaultBookingHorizonDays
	}

	reference := handler.now()
	dates := pricing.AvailableDates(reference, horizon)

	res := DatesResponse{
		Reference:   reference.String(),
		HorizonDays: horizon,
		Dates:       make([]string, len(dates)),
	}

	for i, date := range dates {
		res.Dates[i] = date.String()
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetTimeSlots(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeSlots")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, pricing.TimeSlots())
}
