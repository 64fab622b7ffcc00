package review_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quickcourt/infras/otel/mocks"
	reviewMocks "quickcourt/internal/domains/review/mocks"
	"quickcourt/internal/domains/review/model/dto"
	"quickcourt/internal/handlers/review"
	"quickcourt/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *reviewMocks.MockReviewService) {
	t.Helper()

	svc := reviewMocks.NewMockReviewService(gomock.NewController(t))
	handler := review.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_SubmitReview(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Submit(gomock.Any(), "f1", dto.SubmitReviewRequest{
		UserName: "Rina",
		Rating:   5,
		Comment:  "Great courts",
	}).Return(dto.ReviewResponse{ID: "r_1", Rating: 5}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/facilities/f1/reviews",
		strings.NewReader(`{"user_name":"Rina","rating":5,"comment":"Great courts"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"r_1"`)
}

func TestHandler_SubmitReviewRejectedBeforeService(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty comment", `{"user_name":"Rina","rating":5,"comment":""}`},
		{"whitespace comment", `{"user_name":"Rina","rating":5,"comment":"   "}`},
		{"rating too high", `{"user_name":"Rina","rating":6,"comment":"ok"}`},
		{"not json", `rating=5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/facilities/f1/reviews", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_GetAggregate(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Aggregate(gomock.Any(), "f1").Return(dto.AggregateResponse{Count: 3, Average: 4, AverageText: "4.0", Stars: 4}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/f1/reviews/aggregate", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"4.0"`)
}

func TestHandler_GetReviewsUnknownFacility(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().List(gomock.Any(), "nope").Return(nil, failure.NotFound("facility not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities/nope/reviews", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"facility not found"}`, rec.Body.String())
}
