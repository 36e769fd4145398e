package planner

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripforge/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "planner:sess:"

// SessionStore holds planning sessions for their active lifetime. Nothing
// is persisted beyond the TTL.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.PlannerSession, error)
	Set(ctx context.Context, sess *models.PlannerSession) error
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions in Redis as JSON with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.PlannerSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess models.PlannerSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sess *models.PlannerSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.ID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// MemorySessionStore keeps sessions in process memory. Used in development
// and tests; sessions do not survive a restart.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.PlannerSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.PlannerSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.PlannerSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := sess
	if sess.Costs != nil {
		cp.Costs = make(map[string]float64, len(sess.Costs))
		for k, v := range sess.Costs {
			cp.Costs[k] = v
		}
	}
	return &cp, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, sess *models.PlannerSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
