package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/kova98/redditgrow.api/config"
	"github.com/kova98/redditgrow.api/metrics"
	"github.com/kova98/redditgrow.api/models"
)

// Scopes requested when a user connects their Reddit account.
var Scopes = []string{"identity", "submit", "save", "read"}

// OAuthError carries a message that is safe to show the user. The cause,
// which may hold request URLs, stays in Err.
type OAuthError struct {
	Message string
	Err     error
}

func (e *OAuthError) Error() string {
	return e.Message
}

func (e *OAuthError) Unwrap() error {
	return e.Err
}

type RedditOAuth struct {
	logger       *slog.Logger
	httpClient   *http.Client
	metrics      *metrics.Metrics
	oauth        oauth2.Config
	oauthBaseURL string
}

func NewRedditOAuth(logger *slog.Logger, httpClient *http.Client, m *metrics.Metrics) *RedditOAuth {
	baseURL := strings.TrimRight(config.Config.RedditBaseURL, "/")

	return &RedditOAuth{
		logger:     logger,
		httpClient: withUserAgent(httpClient, config.Config.RedditUserAgent),
		metrics:    m,
		oauth: oauth2.Config{
			ClientID:     config.Config.RedditClientID,
			ClientSecret: config.Config.RedditClientSecret,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   baseURL + "/api/v1/authorize",
				TokenURL:  baseURL + "/api/v1/access_token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		oauthBaseURL: strings.TrimRight(config.Config.RedditOAuthURL, "/"),
	}
}

// AuthCodeURL asks for a permanent grant so a refresh token is issued.
func (o *RedditOAuth) AuthCodeURL(state, redirectURI string) string {
	cfg := o.oauth
	cfg.RedirectURL = redirectURI
	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("duration", "permanent"))
}

func (o *RedditOAuth) Exchange(ctx context.Context, code, redirectURI string) (models.RedditTokens, error) {
	cfg := o.oauth
	cfg.RedirectURL = redirectURI

	ctx = context.WithValue(ctx, oauth2.HTTPClient, o.httpClient)
	ts := time.Now()
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		status := retrieveStatus(err)
		o.metrics.ObserveUpstream("access_token", status, time.Since(ts))
		o.logger.Error("token exchange failed", "status", status, "error", err)
		return models.RedditTokens{}, tokenError(err)
	}
	o.metrics.ObserveUpstream("access_token", http.StatusOK, time.Since(ts))

	expiresIn := token.ExpiresIn
	if expiresIn == 0 && !token.Expiry.IsZero() {
		expiresIn = int64(time.Until(token.Expiry).Seconds())
	}

	return models.RedditTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

func (o *RedditOAuth) Identity(ctx context.Context, accessToken string) (models.RedditIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.oauthBaseURL+"/api/v1/me", nil)
	if err != nil {
		return models.RedditIdentity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	ts := time.Now()
	resp, err := o.httpClient.Do(req)
	if err != nil {
		o.metrics.ObserveUpstream("me", 0, time.Since(ts))
		o.logger.Error("user info fetch failed", "error", err)
		return models.RedditIdentity{}, &OAuthError{Message: "User info fetch failed", Err: err}
	}
	defer resp.Body.Close()
	o.metrics.ObserveUpstream("me", resp.StatusCode, time.Since(ts))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		o.logger.Error("user info fetch failed", "status", resp.StatusCode, "body", string(body))
		return models.RedditIdentity{}, &OAuthError{Message: fmt.Sprintf("User info fetch failed: %d", resp.StatusCode)}
	}

	var identity models.RedditIdentity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		o.logger.Error("decode user info", "error", err)
		return models.RedditIdentity{}, &OAuthError{Message: "User info fetch failed", Err: err}
	}

	return identity, nil
}

func tokenError(err error) error {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return &OAuthError{Message: "Token exchange failed", Err: err}
	}
	if re.ErrorCode != "" {
		return &OAuthError{Message: "Reddit API error: " + re.ErrorCode, Err: err}
	}
	if re.Response != nil {
		return &OAuthError{Message: fmt.Sprintf("Token exchange failed: %d", re.Response.StatusCode), Err: err}
	}
	return &OAuthError{Message: "Token exchange failed", Err: err}
}

func retrieveStatus(err error) int {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return re.Response.StatusCode
	}
	return 0
}
