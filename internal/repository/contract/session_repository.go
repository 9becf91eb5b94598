package contract

import (
	"context"

	"study-planner-be/pkg/store"
)

// SessionRepository persists per-learner planning state. Implementations:
// in-memory cache (default), redis, postgres. A missing or expired session
// returns (nil, nil); callers start fresh.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*store.Session, error)
	Save(ctx context.Context, session *store.Session) error
	Delete(ctx context.Context, id string) error
}
