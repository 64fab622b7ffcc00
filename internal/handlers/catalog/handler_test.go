package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quickcourt/infras/otel/mocks"
	catalogMocks "quickcourt/internal/domains/catalog/mocks"
	"quickcourt/internal/domains/catalog/model"
	"quickcourt/internal/domains/catalog/model/dto"
	"quickcourt/internal/handlers/catalog"
	"quickcourt/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *catalogMocks.MockCatalogService) {
	t.Helper()

	svc := catalogMocks.NewMockCatalogService(gomock.NewController(t))
	handler := catalog.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_GetFacilitiesPassesQuery(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Filter(gomock.Any(), dto.FilterRequest{
		Search:     "arena",
		Sport:      "Tennis",
		PriceRange: "25-50",
		Category:   "indoor",
	}).Return([]model.Facility{{ID: "f1", Name: "Arena", PricePerHour: decimal.NewFromInt(30)}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities?search=arena&sport=Tennis&price_range=25-50&category=indoor", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []dto.FacilityResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "f1", body.Data[0].ID)
}

func TestHandler_GetFacilitiesEmptyIsArray(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/facilities", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		setup    func(svc *catalogMocks.MockCatalogService)
		wantCode int
	}{
		{
			name: "invalid price range",
			path: "/facilities?price_range=cheap",
			setup: func(svc *catalogMocks.MockCatalogService) {
				svc.EXPECT().Filter(gomock.Any(), gomock.Any()).Return(nil, failure.BadRequestFromString("price_range must be one of all 0-25 25-50 50+"))
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown facility",
			path: "/facilities/nope",
			setup: func(svc *catalogMocks.MockCatalogService) {
				svc.EXPECT().Find(gomock.Any(), "nope").Return(model.Facility{}, failure.NotFound("facility not found"))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "courts of unknown facility",
			path: "/facilities/nope/courts",
			setup: func(svc *catalogMocks.MockCatalogService) {
				svc.EXPECT().CourtsOf(gomock.Any(), "nope").Return(nil, failure.NotFound("facility not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandler_GetSports(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Sports(gomock.Any(), dto.SportsRequest{Category: "outdoor"}).Return([]string{"Tennis", "Football"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sports?category=outdoor", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":["Tennis","Football"]}`, rec.Body.String())
}
