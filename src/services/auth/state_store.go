package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const stateTTL = 10 * time.Minute

// StateStore keeps the OAuth state values handed out with the authorize
// URL. Consume succeeds once per issued state.
type StateStore interface {
	Issue(ctx context.Context, state string) error
	Consume(ctx context.Context, state string) (bool, error)
}

func stateKey(state string) string {
	return "auth:state:" + state
}

type redisStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateStore(client *redis.Client) StateStore {
	return &redisStateStore{client: client, ttl: stateTTL}
}

func (s *redisStateStore) Issue(ctx context.Context, state string) error {
	return s.client.Set(ctx, stateKey(state), time.Now().Unix(), s.ttl).Err()
}

func (s *redisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	err := s.client.GetDel(ctx, stateKey(state)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type memoryStateStore struct {
	mu     sync.Mutex
	issued map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryStateStore() StateStore {
	return &memoryStateStore{issued: map[string]time.Time{}, ttl: stateTTL, now: time.Now}
}

func (s *memoryStateStore) Issue(_ context.Context, state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.issued {
		if now.After(exp) {
			delete(s.issued, k)
		}
	}
	s.issued[state] = now.Add(s.ttl)
	return nil
}

func (s *memoryStateStore) Consume(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.issued[state]
	if !ok {
		return false, nil
	}
	delete(s.issued, state)
	return !s.now().After(exp), nil
}
