package models

type OAuthExchangeRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirectUri"`
	State       string `json:"state,omitempty"`
}

type RedditUser struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Karma        int     `json:"karma"`
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	CreatedUTC   float64 `json:"created_utc"`
}

type RedditTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type OAuthExchangeResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    RedditUser   `json:"user"`
	Tokens  RedditTokens `json:"tokens"`
}

type AuthorizeResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type ConnectionResponse struct {
	Connected bool        `json:"connected"`
	User      *RedditUser `json:"user,omitempty"`
}
