package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcourt/config"
	"quickcourt/infras/jwt"
)

func newJWT(secret, issuer string) jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret
	cfg.JWT.Issuer = issuer

	return jwt.New(cfg)
}

func TestValidate(t *testing.T) {
	svc := newJWT("s3cret", "auth.quickcourt")

	token, err := svc.Generate("u1", "rina@example.com", "Rina", time.Minute)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "rina@example.com", claims.Email)
	assert.Equal(t, "Rina", claims.Name)
}

func TestValidate_Rejects(t *testing.T) {
	svc := newJWT("s3cret", "auth.quickcourt")

	expired, err := svc.Generate("u1", "a@b.co", "A", -time.Minute)
	require.NoError(t, err)

	foreign, err := newJWT("other", "auth.quickcourt").Generate("u1", "a@b.co", "A", time.Minute)
	require.NoError(t, err)

	wrongIssuer, err := newJWT("s3cret", "elsewhere").Generate("u1", "a@b.co", "A", time.Minute)
	require.NoError(t, err)

	noUser, err := svc.Generate("", "a@b.co", "A", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "expired", token: expired, want: jwt.ErrExpiredToken},
		{name: "wrong secret", token: foreign, want: jwt.ErrInvalidToken},
		{name: "wrong issuer", token: wrongIssuer, want: jwt.ErrInvalidToken},
		{name: "garbage", token: "not.a.token", want: jwt.ErrInvalidToken},
		{name: "no user", token: noUser, want: jwt.ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic xyz")
	assert.ErrorIs(t, err, jwt.ErrMalformedAuth)
}
