package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"study-planner-be/pkg/store"
)

// SessionRepository keeps sessions in process memory. The default store:
// zero infrastructure, sessions expire after the TTL.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge expired sessions every 10 minutes
	return &SessionRepository{cache: cache.New(ttl, 10*time.Minute)}
}

func (r *SessionRepository) Get(_ context.Context, id string) (*store.Session, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*store.Session), nil
	}
	return nil, nil
}

func (r *SessionRepository) Save(_ context.Context, session *store.Session) error {
	session.UpdatedAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.cache.Delete(id)
	return nil
}
