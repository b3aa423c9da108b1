package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeMarkerTTL = 10 * time.Minute

// CodeGuard records authorization codes that have been handed to the
// provider. Claim returns false when the code was seen before.
type CodeGuard interface {
	Claim(ctx context.Context, code string) (bool, error)
}

func codeKey(code string) string {
	sum := sha256.Sum256([]byte(code))
	return "auth:code:" + hex.EncodeToString(sum[:])
}

type redisCodeGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCodeGuard(client *redis.Client) CodeGuard {
	return &redisCodeGuard{client: client, ttl: codeMarkerTTL}
}

func (g *redisCodeGuard) Claim(ctx context.Context, code string) (bool, error) {
	return g.client.SetNX(ctx, codeKey(code), time.Now().Unix(), g.ttl).Result()
}

type memoryCodeGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryCodeGuard() CodeGuard {
	return &memoryCodeGuard{seen: map[string]time.Time{}, ttl: codeMarkerTTL, now: time.Now}
}

func (g *memoryCodeGuard) Claim(_ context.Context, code string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for k, exp := range g.seen {
		if now.After(exp) {
			delete(g.seen, k)
		}
	}
	key := codeKey(code)
	if _, ok := g.seen[key]; ok {
		return false, nil
	}
	g.seen[key] = now.Add(g.ttl)
	return true, nil
}
