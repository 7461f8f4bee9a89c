package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Nerzal/gocloak/v13"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kova98/redditgrow.api/config"
	"github.com/kova98/redditgrow.api/data"
)

// IdentityProvider is the subset of the Keycloak client used to resolve
// bearer tokens.
type IdentityProvider interface {
	DecodeAccessToken(ctx context.Context, accessToken, realm string) (*jwt.Token, *jwt.MapClaims, error)
	RetrospectToken(ctx context.Context, accessToken, clientID, clientSecret, realm string) (*gocloak.IntroSpectTokenResult, error)
	GetUserInfo(ctx context.Context, accessToken, realm string) (*gocloak.UserInfo, error)
}

type AuthHandler struct {
	keycloak     IdentityProvider
	realm        string
	clientID     string
	clientSecret string
}

func NewAuthHandler(keycloak IdentityProvider) *AuthHandler {
	return &AuthHandler{
		keycloak:     keycloak,
		realm:        config.Config.KeycloakRealm,
		clientID:     config.Config.KeycloakClientID,
		clientSecret: config.Config.KeycloakClientSecret,
	}
}

func (h *AuthHandler) GetUser(ctx context.Context, authHeader string) Result {
	if authHeader == "" {
		return Unauthorized("Missing authorization header")
	}

	res := h.getUserFromAuthHeader(ctx, authHeader)
	if res.Code != http.StatusOK {
		return res
	}
	userInfo := res.Body.(gocloak.UserInfo)

	if userInfo.Sub == nil {
		return Unauthorized("User not found")
	}
	id, err := uuid.Parse(*userInfo.Sub)
	if err != nil {
		slog.Error("Failed to parse user ID from Keycloak", "sub", *userInfo.Sub, "error", err)
		return InternalError(err, "Failed to parse user ID from Keycloak")
	}

	email := deref(userInfo.Email)

	// If preferred_username is empty, use the part before the @ in the email
	name := deref(userInfo.PreferredUsername)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user := data.User{
		ID:          id,
		Name:        name,
		DisplayName: deref(userInfo.Name),
		Email:       email,
		Avatar:      deref(userInfo.Picture),
	}

	return Ok(user)
}

func (h *AuthHandler) getUserFromAuthHeader(ctx context.Context, authHeader string) Result {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Unauthorized("Invalid authorization header format")
	}
	authHeader = strings.TrimPrefix(authHeader, "Bearer ")

	// Validate the token
	_, _, err := h.keycloak.DecodeAccessToken(ctx, authHeader, h.realm)
	if err != nil {
		return Unauthorized("Invalid token")
	}

	// Signature checks alone accept tokens from ended sessions.
	introspection, err := h.keycloak.RetrospectToken(ctx, authHeader, h.clientID, h.clientSecret, h.realm)
	if err != nil {
		return InternalError(err, "Failed to introspect token")
	}
	if introspection.Active == nil || !*introspection.Active {
		return Unauthorized("Token is not active")
	}

	userInfo, err := h.keycloak.GetUserInfo(ctx, authHeader, h.realm)
	if err != nil {
		return InternalError(err, "Failed to get user info")
	}

	if userInfo == nil {
		return Unauthorized("User not found")
	}

	return Ok(*userInfo)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
