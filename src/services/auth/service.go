package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/utils"
)

// UserStore is the subset of the users service login needs.
type UserStore interface {
	FindOrCreate(ctx context.Context, profile models.User) (*models.User, bool, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

type Service struct {
	kakao    *KakaoClient
	guard    CodeGuard
	states   StateStore
	users    UserStore
	tokens   *utils.TokenIssuer
	sessions *utils.SessionStore
	flights  singleflight.Group
}

func NewService(kakao *KakaoClient, guard CodeGuard, states StateStore, users UserStore, tokens *utils.TokenIssuer, sessions *utils.SessionStore) *Service {
	return &Service{kakao: kakao, guard: guard, states: states, users: users, tokens: tokens, sessions: sessions}
}

type LoginResult struct {
	User        *models.User `json:"user"`
	CustomToken string       `json:"customToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	IsNewUser   bool         `json:"isNewUser"`
}

// AuthorizeURL returns the provider authorize URL and its state value. The
// state is remembered so Login can check it comes back unchanged.
func (s *Service) AuthorizeURL(ctx context.Context) (string, string, error) {
	state := utils.GenerateRandomString(32)
	if err := s.states.Issue(ctx, state); err != nil {
		log.Println("❌ Failed to store OAuth state:", err)
		return "", "", err
	}
	return s.kakao.AuthCodeURL(state), state, nil
}

// verifyState consumes a state issued by AuthorizeURL.
func (s *Service) verifyState(ctx context.Context, state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return ErrInvalidState
	}
	ok, err := s.states.Consume(ctx, state)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("⚠️ Unknown or reused OAuth state %s", utils.Truncate(state, 8))
		return ErrInvalidState
	}
	return nil
}

// ExchangeCode turns an authorization code into the local user profile.
// Concurrent calls with the same code share one upstream exchange; a code
// already handed to the provider is rejected with ErrDuplicateCode.
func (s *Service) ExchangeCode(ctx context.Context, code, redirectURI string) (*models.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrMissingCode
	}

	v, err, shared := s.flights.Do(code, func() (interface{}, error) {
		claimed, err := s.guard.Claim(ctx, code)
		if err != nil {
			log.Println("⚠️ Code guard unavailable, continuing:", err)
		} else if !claimed {
			return nil, ErrDuplicateCode
		}
		return s.exchange(ctx, code, redirectURI)
	})
	if shared {
		log.Printf("🔄 Shared in-flight exchange for code %s", utils.Truncate(code, 8))
	}
	if err != nil {
		return nil, err
	}
	user := *(v.(*models.User))
	return &user, nil
}

func (s *Service) exchange(ctx context.Context, code, redirectURI string) (*models.User, error) {
	log.Printf("🔄 Exchanging Kakao code %s", utils.Truncate(code, 8))
	token, err := s.kakao.Exchange(ctx, code, redirectURI)
	if err != nil {
		log.Println("❌ Kakao token exchange failed:", err)
		return nil, err
	}

	kakaoUser, err := s.kakao.FetchUser(ctx, token)
	if err != nil {
		log.Println("❌ Kakao user info failed:", err)
		return nil, err
	}

	user := kakaoUser.ToUser()
	log.Printf("✅ Kakao user resolved: %s", user.ID)
	return &user, nil
}

// Login checks the state, exchanges the code, stores the user and issues a
// session token.
func (s *Service) Login(ctx context.Context, code, state, redirectURI string) (*LoginResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrMissingCode
	}
	if err := s.verifyState(ctx, state); err != nil {
		return nil, err
	}

	profile, err := s.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return nil, err
	}

	user, created, err := s.users.FindOrCreate(ctx, *profile)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateJWT(*user)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.StoreSession(ctx, user, s.tokens.TTL()); err != nil {
		log.Println("⚠️ Failed to cache session:", err)
	}

	return &LoginResult{User: user, CustomToken: token, ExpiresAt: expiresAt, IsNewUser: created}, nil
}

// Me restores the session user from the cache, then from the store.
func (s *Service) Me(ctx context.Context, userID string) (*models.User, error) {
	cached, err := s.sessions.LoadSession(ctx, userID)
	if err != nil {
		log.Println("⚠️ Session cache read failed:", err)
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.StoreSession(ctx, user, s.tokens.TTL()); err != nil {
		log.Println("⚠️ Failed to cache session:", err)
	}
	return user, nil
}

// Logout drops the cached session and revokes token until it expires.
func (s *Service) Logout(ctx context.Context, token string, claims *utils.JWTClaims) error {
	if err := s.sessions.DeleteSession(ctx, claims.UserID); err != nil {
		return err
	}
	if err := s.sessions.BlacklistToken(ctx, token, claims.RemainingTTL(time.Now())); err != nil {
		return err
	}
	log.Printf("✅ User %s logged out", claims.UserID)
	return nil
}

// InvalidateSession forces the next restore to re-read the store.
func (s *Service) InvalidateSession(ctx context.Context, userID string) {
	if err := s.sessions.DeleteSession(ctx, userID); err != nil && !errors.Is(err, context.Canceled) {
		log.Println("⚠️ Failed to invalidate session:", err)
	}
}
