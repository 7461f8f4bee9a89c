package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kova98/redditgrow.api/data"
)

type ConnectionRepo struct {
	db *sqlx.DB
}

func NewConnectionRepo(db *sqlx.DB) *ConnectionRepo {
	return &ConnectionRepo{db}
}

// Get returns nil when the user has not connected an account.
func (r *ConnectionRepo) Get(ctx context.Context, userID uuid.UUID) (*data.RedditConnection, error) {
	var conn data.RedditConnection
	query := `
		SELECT user_id, reddit_id, username, karma, link_karma, comment_karma,
		       reddit_created_utc, access_token, refresh_token, expires_at, created_at, updated_at
		FROM reddit_connections
		WHERE user_id = $1`

	err := r.db.GetContext(ctx, &conn, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get connection: %w", err)
	}

	return &conn, nil
}

func (r *ConnectionRepo) Set(ctx context.Context, conn data.RedditConnection) error {
	query := `
		INSERT INTO reddit_connections (
			user_id, reddit_id, username, karma, link_karma, comment_karma,
			reddit_created_utc, access_token, refresh_token, expires_at)
		VALUES (
			:user_id, :reddit_id, :username, :karma, :link_karma, :comment_karma,
			:reddit_created_utc, :access_token, :refresh_token, :expires_at)
		ON CONFLICT (user_id) DO UPDATE SET
			reddit_id = EXCLUDED.reddit_id,
			username = EXCLUDED.username,
			karma = EXCLUDED.karma,
			link_karma = EXCLUDED.link_karma,
			comment_karma = EXCLUDED.comment_karma,
			reddit_created_utc = EXCLUDED.reddit_created_utc,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()`

	_, err := r.db.NamedExecContext(ctx, query, conn)
	if err != nil {
		return fmt.Errorf("set connection: %w", err)
	}

	return nil
}

func (r *ConnectionRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	query := "DELETE FROM reddit_connections WHERE user_id = $1"
	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clear connection: %w", err)
	}

	return nil
}
