package profile

import (
	"context"
	"net/http"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/profile/model"
	"quickcourt/internal/domains/profile/model/dto"
	"quickcourt/internal/domains/profile/service"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/validator"
	"quickcourt/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/profile", handler.GetProfile)
	router.Patch("/profile", handler.UpdateProfile)
}

// identityFromContext reads the caller set by the auth middleware.
func identityFromContext(ctx context.Context) (model.Identity, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return model.Identity{}, failure.Unauthorized("authentication required") //nolint:wrapcheck
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)

	return model.Identity{
		UserID: userID,
		Name:   name,
		Email:  email,
	}, nil
}

func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	identity, err := identityFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	profile, err := handler.service.Get(ctx, identity)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to get profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, profile)
}

// UpdateProfile patches the caller's profile. Email always follows the token.
func (handler *Handler) UpdateProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	identity, err := identityFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	var req dto.UpdateProfileRequest

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	profile, err := handler.service.Update(ctx, identity, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to update profile")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Profile updated by user " + identity.UserID)

	response.WithJSON(writer, http.StatusOK, profile)
}
