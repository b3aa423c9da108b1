package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"Backend-Yeoun-Survey/src/models"
)

// Mirror is the local cache copy of the last stored response per user.
// Load returns (nil, nil) on a miss.
type Mirror interface {
	Save(ctx context.Context, resp *models.SurveyResponse) error
	Load(ctx context.Context, userID string) (*models.SurveyResponse, error)
}

func mirrorKey(userID string) string {
	return fmt.Sprintf("survey:response:%s", userID)
}

type redisMirror struct {
	client *redis.Client
}

func NewRedisMirror(client *redis.Client) Mirror {
	return &redisMirror{client: client}
}

func (m *redisMirror) Save(ctx context.Context, resp *models.SurveyResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, mirrorKey(resp.UserID), raw, 0).Err()
}

func (m *redisMirror) Load(ctx context.Context, userID string) (*models.SurveyResponse, error) {
	raw, err := m.client.Get(ctx, mirrorKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var resp models.SurveyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type memoryMirror struct {
	mu    sync.RWMutex
	items map[string]models.SurveyResponse
}

func NewMemoryMirror() Mirror {
	return &memoryMirror{items: map[string]models.SurveyResponse{}}
}

func (m *memoryMirror) Save(_ context.Context, resp *models.SurveyResponse) error {
	m.mu.Lock()
	m.items[resp.UserID] = *resp
	m.mu.Unlock()
	return nil
}

func (m *memoryMirror) Load(_ context.Context, userID string) (*models.SurveyResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	resp, ok := m.items[userID]
	if !ok {
		return nil, nil
	}
	return &resp, nil
}
