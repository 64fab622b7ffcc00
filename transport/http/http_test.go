package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quickcourt/config"
	"quickcourt/infras/jwt"
	"quickcourt/infras/otel/mocks"
	feedMocks "quickcourt/internal/domains/feed/mocks"
	feedDto "quickcourt/internal/domains/feed/model/dto"
	profileMocks "quickcourt/internal/domains/profile/mocks"
	"quickcourt/internal/domains/profile/model"
	profileDto "quickcourt/internal/domains/profile/model/dto"
	feedHandler "quickcourt/internal/handlers/feed"
	profileHandler "quickcourt/internal/handlers/profile"
	"quickcourt/permissions"
	transportHttp "quickcourt/transport/http"
	"quickcourt/transport/http/middleware"
	"quickcourt/transport/http/router"
)

type fixture struct {
	server    *transportHttp.HTTP
	jwt       jwt.JWT
	profile   *profileMocks.MockProfileService
	refresher *feedMocks.MockRefresher
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"
	cfg.Server.Env = "development"

	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()
	profile := profileMocks.NewMockProfileService(ctrl)
	refresher := feedMocks.NewMockRefresher(ctrl)
	jwtService := jwt.New(cfg)

	r := router.New(router.DomainHandlers{
		Profile: profileHandler.New(profile, otel),
		Feed:    feedHandler.New(refresher, otel),
	})

	server := transportHttp.New(
		cfg,
		r,
		middleware.NewAppMiddleware(otel, cfg),
		middleware.NewAuthMiddleware(jwtService, otel, permissions.Get()),
	)

	return fixture{
		server:    server,
		jwt:       jwtService,
		profile:   profile,
		refresher: refresher,
	}
}

func (f fixture) do(request *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, request)

	return rec
}

func TestHTTP_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transportHttp.ServerStateReady, f.server.State())
}

func TestHTTP_PublicRouteAllowsAnonymous(t *testing.T) {
	f := newFixture(t)

	f.refresher.EXPECT().Status(gomock.Any()).Return(feedDto.StatusResponse{Source: "static"}).Times(2)

	assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/v1/feed/status", nil)).Code)

	request := httptest.NewRequest(http.MethodGet, "/v1/feed/status", nil)
	request.Header.Set("Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusOK, f.do(request).Code)
}

func TestHTTP_ProfileRequiresToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"invalid token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			request := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, http.StatusUnauthorized, f.do(request).Code)
		})
	}
}

func TestHTTP_ProfileWithToken(t *testing.T) {
	f := newFixture(t)

	token, err := f.jwt.Generate("u1", "rina@example.com", "Rina", time.Hour)
	require.NoError(t, err)

	f.profile.EXPECT().Get(gomock.Any(), model.Identity{UserID: "u1", Name: "Rina", Email: "rina@example.com"}).
		Return(profileDto.ProfileResponse{UserID: "u1"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/v1/profile", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, http.StatusOK, f.do(request).Code)
}

func TestHTTP_ServeStopsOnCancel(t *testing.T) {
	f := newFixture(t)
	f.server.Config.Server.Host = "127.0.0.1"
	f.server.Config.Server.Port = "0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- f.server.Serve(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
