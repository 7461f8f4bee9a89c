package handlers

import (
	"context"

	"github.com/kova98/redditgrow.api/data"
)

type contextKey string

const userContextKey contextKey = "user"

func WithUser(ctx context.Context, user data.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom panics when called outside a private route.
func UserFrom(ctx context.Context) data.User {
	return ctx.Value(userContextKey).(data.User)
}
