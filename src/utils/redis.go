package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"Backend-Yeoun-Survey/src/models"
)

// SessionStore caches logged-in users and revoked tokens. Without a Redis
// client (development mode) it keeps both in process memory.
type SessionStore struct {
	client *redis.Client

	mu        sync.Mutex
	sessions  map[string][]byte
	blacklist map[string]time.Time
	now       func() time.Time
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{
		client:    client,
		sessions:  map[string][]byte{},
		blacklist: map[string]time.Time{},
		now:       time.Now,
	}
}

func sessionKey(userID string) string { return fmt.Sprintf("session:%s", userID) }

func blacklistKey(token string) string { return fmt.Sprintf("blacklist:%s", token) }

// StoreSession เก็บข้อมูลผู้ใช้ที่ล็อกอินอยู่ พร้อม expiration
func (s *SessionStore) StoreSession(ctx context.Context, user *models.User, expiresIn time.Duration) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if s.client == nil {
		s.mu.Lock()
		s.sessions[user.ID] = raw
		s.mu.Unlock()
		return nil
	}
	if err := s.client.Set(ctx, sessionKey(user.ID), raw, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store session: %v", err)
	}
	return nil
}

// LoadSession returns (nil, nil) when nothing is cached.
func (s *SessionStore) LoadSession(ctx context.Context, userID string) (*models.User, error) {
	var raw []byte
	if s.client == nil {
		s.mu.Lock()
		raw = s.sessions[userID]
		s.mu.Unlock()
		if raw == nil {
			return nil, nil
		}
	} else {
		b, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
		if err == redis.Nil {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get session: %v", err)
		}
		raw = b
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteSession ลบ session (ใช้ตอน logout)
func (s *SessionStore) DeleteSession(ctx context.Context, userID string) error {
	if s.client == nil {
		s.mu.Lock()
		delete(s.sessions, userID)
		s.mu.Unlock()
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}
	return nil
}

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
func (s *SessionStore) BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error {
	if s.client == nil {
		s.mu.Lock()
		s.blacklist[token] = s.now().Add(expiresIn)
		s.mu.Unlock()
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
func (s *SessionStore) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		until, ok := s.blacklist[token]
		if !ok {
			return false, nil
		}
		if s.now().After(until) {
			delete(s.blacklist, token)
			return false, nil
		}
		return true, nil
	}

	_, err := s.client.Get(ctx, blacklistKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil // token ไม่อยู่ใน blacklist
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
