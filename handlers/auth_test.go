package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Nerzal/gocloak/v13"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kova98/redditgrow.api/config"
	"github.com/kova98/redditgrow.api/data"
)

type fakeKeycloak struct {
	userInfo      *gocloak.UserInfo
	decodeErr     error
	introspectErr error
	inactive      bool
	infoErr       error
}

func (f fakeKeycloak) DecodeAccessToken(_ context.Context, _, _ string) (*jwt.Token, *jwt.MapClaims, error) {
	if f.decodeErr != nil {
		return nil, nil, f.decodeErr
	}
	return &jwt.Token{Valid: true}, &jwt.MapClaims{}, nil
}

func (f fakeKeycloak) RetrospectToken(_ context.Context, _, clientID, clientSecret, _ string) (*gocloak.IntroSpectTokenResult, error) {
	if f.introspectErr != nil {
		return nil, f.introspectErr
	}
	if clientID != "api" || clientSecret != "api-secret" {
		return nil, errors.New("401 Unauthorized: invalid client credentials")
	}
	return &gocloak.IntroSpectTokenResult{Active: gocloak.BoolP(!f.inactive)}, nil
}

func (f fakeKeycloak) GetUserInfo(_ context.Context, _, _ string) (*gocloak.UserInfo, error) {
	return f.userInfo, f.infoErr
}

func TestGetUser(t *testing.T) {
	sub := testUser.ID.String()

	tests := []struct {
		name       string
		keycloak   fakeKeycloak
		header     string
		expectCode int
		expectUser data.User
	}{
		{
			name:       "missing header",
			keycloak:   fakeKeycloak{},
			header:     "",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			keycloak:   fakeKeycloak{},
			header:     "Basic abc",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			keycloak:   fakeKeycloak{decodeErr: errors.New("expired")},
			header:     "Bearer abc",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "session ended",
			keycloak:   fakeKeycloak{inactive: true},
			header:     "Bearer abc",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "introspection unavailable",
			keycloak:   fakeKeycloak{introspectErr: errors.New("connection refused")},
			header:     "Bearer abc",
			expectCode: http.StatusInternalServerError,
		},
		{
			name:       "user info unavailable",
			keycloak:   fakeKeycloak{infoErr: errors.New("connection refused")},
			header:     "Bearer abc",
			expectCode: http.StatusInternalServerError,
		},
		{
			name:       "no subject",
			keycloak:   fakeKeycloak{userInfo: &gocloak.UserInfo{}},
			header:     "Bearer abc",
			expectCode: http.StatusUnauthorized,
		},
		{
			name: "name from email",
			keycloak: fakeKeycloak{userInfo: &gocloak.UserInfo{
				Sub:   gocloak.StringP(sub),
				Email: gocloak.StringP("tester@example.com"),
			}},
			header:     "Bearer abc",
			expectCode: http.StatusOK,
			expectUser: data.User{ID: testUser.ID, Name: "tester", Email: "tester@example.com"},
		},
		{
			name: "preferred username",
			keycloak: fakeKeycloak{userInfo: &gocloak.UserInfo{
				Sub:               gocloak.StringP(sub),
				PreferredUsername: gocloak.StringP("growth-hacker"),
				Name:              gocloak.StringP("Growth Hacker"),
			}},
			header:     "Bearer abc",
			expectCode: http.StatusOK,
			expectUser: data.User{ID: testUser.ID, Name: "growth-hacker", DisplayName: "Growth Hacker"},
		},
	}

	config.Config.KeycloakRealm = "redditgrow"
	config.Config.KeycloakClientID = "api"
	config.Config.KeycloakClientSecret = "api-secret"
	t.Cleanup(func() { config.Config = config.AppConfig{} })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(tt.keycloak)

			res := h.GetUser(context.Background(), tt.header)

			assert.Equal(t, tt.expectCode, res.Code)
			if tt.expectCode == http.StatusOK {
				assert.Equal(t, tt.expectUser, res.Body.(data.User))
			}
		})
	}
}
