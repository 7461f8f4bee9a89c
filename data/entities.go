package data

import (
	"time"

	"github.com/google/uuid"
)

// User is the dashboard user as reported by the identity provider.
type User struct {
	ID          uuid.UUID
	Name        string
	DisplayName string
	Email       string
	Avatar      string
}

// RedditConnection is a dashboard user's linked Reddit account and its tokens.
type RedditConnection struct {
	UserID           uuid.UUID `db:"user_id"`
	RedditID         string    `db:"reddit_id"`
	Username         string    `db:"username"`
	Karma            int       `db:"karma"`
	LinkKarma        int       `db:"link_karma"`
	CommentKarma     int       `db:"comment_karma"`
	RedditCreatedUTC float64   `db:"reddit_created_utc"`
	AccessToken      string    `db:"access_token"`
	RefreshToken     string    `db:"refresh_token"`
	ExpiresAt        time.Time `db:"expires_at"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
