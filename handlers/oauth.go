package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kova98/redditgrow.api/data"
	"github.com/kova98/redditgrow.api/metrics"
	"github.com/kova98/redditgrow.api/models"
	"github.com/kova98/redditgrow.api/sources"
)

const stateTTL = 10 * time.Minute

type OAuthClient interface {
	AuthCodeURL(state, redirectURI string) string
	Exchange(ctx context.Context, code, redirectURI string) (models.RedditTokens, error)
	Identity(ctx context.Context, accessToken string) (models.RedditIdentity, error)
}

type ConnectionStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*data.RedditConnection, error)
	Set(ctx context.Context, conn data.RedditConnection) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type pendingState struct {
	value     string
	expiresAt time.Time
}

type OAuthHandler struct {
	client  OAuthClient
	store   ConnectionStore
	metrics *metrics.Metrics
	now     func() time.Time

	mu     sync.Mutex
	states map[uuid.UUID]pendingState
}

func NewOAuthHandler(client OAuthClient, store ConnectionStore, m *metrics.Metrics) *OAuthHandler {
	return &OAuthHandler{
		client:  client,
		store:   store,
		metrics: m,
		now:     time.Now,
		states:  make(map[uuid.UUID]pendingState),
	}
}

// Authorize issues a single-use state token and the Reddit URL to send the
// user to. A new call replaces any pending state for the same user.
func (h *OAuthHandler) Authorize(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r.Context())

	redirectURI := r.URL.Query().Get("redirectUri")
	if redirectURI == "" {
		return Failure(http.StatusBadRequest, "No redirect URI provided")
	}

	state := uuid.NewString()
	h.mu.Lock()
	h.states[user.ID] = pendingState{value: state, expiresAt: h.now().Add(stateTTL)}
	h.mu.Unlock()

	return Ok(models.AuthorizeResponse{
		URL:   h.client.AuthCodeURL(state, redirectURI),
		State: state,
	})
}

func (h *OAuthHandler) Exchange(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r.Context())

	var req models.OAuthExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Failure(http.StatusBadRequest, "Invalid request.")
	}
	if req.Code == "" {
		return Failure(http.StatusBadRequest, "No authorization code provided")
	}
	if req.RedirectURI == "" {
		return Failure(http.StatusBadRequest, "No redirect URI provided")
	}
	if !h.checkState(user.ID, req.State) {
		return Failure(http.StatusBadRequest, "Invalid state parameter")
	}

	tokens, err := h.client.Exchange(r.Context(), req.Code, req.RedirectURI)
	if err != nil {
		h.metrics.ObserveOAuthExchange(false)
		return oauthFailure(err)
	}

	identity, err := h.client.Identity(r.Context(), tokens.AccessToken)
	if err != nil {
		h.metrics.ObserveOAuthExchange(false)
		return oauthFailure(err)
	}
	h.metrics.ObserveOAuthExchange(true)

	redditUser := redditUserFrom(identity)
	conn := data.RedditConnection{
		UserID:           user.ID,
		RedditID:         redditUser.ID,
		Username:         redditUser.Username,
		Karma:            redditUser.Karma,
		LinkKarma:        redditUser.LinkKarma,
		CommentKarma:     redditUser.CommentKarma,
		RedditCreatedUTC: redditUser.CreatedUTC,
		AccessToken:      tokens.AccessToken,
		RefreshToken:     tokens.RefreshToken,
		ExpiresAt:        h.now().Add(time.Duration(tokens.ExpiresIn) * time.Second),
	}
	if err := h.store.Set(r.Context(), conn); err != nil {
		res := InternalError(err, "store reddit connection: ")
		res.Body = MessageResponse{Message: "Failed to store Reddit connection"}
		return res
	}

	slog.Info("reddit account connected", "user", user.ID, "reddit_user", redditUser.Username)

	return Ok(models.OAuthExchangeResponse{
		Success: true,
		Message: "Reddit account connected successfully",
		User:    redditUser,
		Tokens:  tokens,
	})
}

// checkState consumes the user's pending state. Once /reddit/authorize has
// issued one the exchange must present it; without a pending state none may
// be sent.
func (h *OAuthHandler) checkState(userID uuid.UUID, state string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	pending, ok := h.states[userID]
	if !ok {
		return state == ""
	}
	delete(h.states, userID)

	return pending.value == state && h.now().Before(pending.expiresAt)
}

func oauthFailure(err error) Result {
	var oauthErr *sources.OAuthError
	if errors.As(err, &oauthErr) {
		return Failure(http.StatusBadGateway, oauthErr.Message)
	}
	slog.Error("reddit oauth failed", "error", err)
	return Failure(http.StatusBadGateway, "Reddit OAuth request failed")
}

func redditUserFrom(identity models.RedditIdentity) models.RedditUser {
	karma := identity.TotalKarma
	if karma == 0 {
		karma = identity.LinkKarma + identity.CommentKarma
	}
	return models.RedditUser{
		ID:           identity.ID,
		Username:     identity.Name,
		Karma:        karma,
		LinkKarma:    identity.LinkKarma,
		CommentKarma: identity.CommentKarma,
		CreatedUTC:   identity.CreatedUTC,
	}
}
