package survey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftTTL = 24 * time.Hour

// DraftStore keeps the in-progress wizard between requests.
// Load returns (nil, nil) when the user has no draft.
type DraftStore interface {
	Load(ctx context.Context, userID string) (*Snapshot, error)
	Save(ctx context.Context, userID string, s Snapshot) error
	Delete(ctx context.Context, userID string) error
}

type redisDraftStore struct {
	client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) DraftStore {
	return &redisDraftStore{client: client}
}

func draftKey(userID string) string {
	return fmt.Sprintf("survey:draft:%s", userID)
}

func (s *redisDraftStore) Load(ctx context.Context, userID string) (*Snapshot, error) {
	raw, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &snap, nil
}

func (s *redisDraftStore) Save(ctx context.Context, userID string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(userID), raw, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *redisDraftStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, draftKey(userID)).Err()
}

// memoryDraftStore is used when Redis is not configured (dev mode).
type memoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() DraftStore {
	return &memoryDraftStore{drafts: map[string][]byte{}}
}

func (s *memoryDraftStore) Load(_ context.Context, userID string) (*Snapshot, error) {
	s.mu.Lock()
	raw, ok := s.drafts[userID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *memoryDraftStore) Save(_ context.Context, userID string, snap Snapshot) error {
	// stored encoded so callers never share maps with the store
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts[userID] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryDraftStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()
	return nil
}
