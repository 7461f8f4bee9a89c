package repos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kova98/redditgrow.api/data"
)

// MemoryConnectionRepo keeps connections in process. Used when no database is
// configured; everything is lost on restart.
type MemoryConnectionRepo struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]data.RedditConnection
}

func NewMemoryConnectionRepo() *MemoryConnectionRepo {
	return &MemoryConnectionRepo{conns: make(map[uuid.UUID]data.RedditConnection)}
}

func (r *MemoryConnectionRepo) Get(_ context.Context, userID uuid.UUID) (*data.RedditConnection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.conns[userID]
	if !ok {
		return nil, nil
	}
	return &conn, nil
}

func (r *MemoryConnectionRepo) Set(_ context.Context, conn data.RedditConnection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.conns[conn.UserID]; ok {
		conn.CreatedAt = existing.CreatedAt
	} else {
		conn.CreatedAt = now
	}
	conn.UpdatedAt = now
	r.conns[conn.UserID] = conn

	return nil
}

func (r *MemoryConnectionRepo) Clear(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.conns, userID)
	return nil
}
