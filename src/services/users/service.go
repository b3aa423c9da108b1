package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"Backend-Yeoun-Survey/src/models"
)

var (
	ErrUserNotFound    = errors.New("users: user not found")
	ErrTargetRequired  = errors.New("users: target user id required")
	ErrAdminIDRequired = errors.New("users: admin user id required")
	ErrNotAdmin        = errors.New("users: caller is not an admin")
	ErrTargetNotFound  = errors.New("users: target user not found")
)

// PromotionNotifier is told about successful promotions.
type PromotionNotifier interface {
	Promoted(ctx context.Context, entry models.AdminLog) error
}

type Service struct {
	repo     Repository
	notifier PromotionNotifier
	now      func() time.Time
}

func NewService(repo Repository, notifier PromotionNotifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// FindOrCreate stores the provider profile and returns the stored user.
func (s *Service) FindOrCreate(ctx context.Context, profile models.User) (*models.User, bool, error) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = s.now()
	}
	user, created, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		return nil, false, err
	}
	if created {
		log.Printf("✅ New user registered: %s", user.ID)
	}
	return user, created, nil
}

// List returns every user (admins first, then newest) with counts.
func (s *Service) List(ctx context.Context) ([]models.User, models.UserStats, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, models.UserStats{}, err
	}
	sortUsers(list)

	stats := models.UserStats{Total: len(list)}
	for _, u := range list {
		if u.IsAdmin {
			stats.Admins++
		}
	}
	stats.Regular = stats.Total - stats.Admins
	return list, stats, nil
}

func sortUsers(list []models.User) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].IsAdmin != list[j].IsAdmin {
			return list[i].IsAdmin
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

type PromoteRequest struct {
	TargetUserID string `json:"targetUserId"`
	AdminUserID  string `json:"adminUserId"`
}

// Promote grants admin to the target. callerID is the authenticated user;
// when AdminUserID is given it must match. Rejected requests write nothing.
func (s *Service) Promote(ctx context.Context, callerID string, req PromoteRequest) (*models.User, error) {
	if callerID == "" {
		return nil, ErrAdminIDRequired
	}
	if req.AdminUserID != "" && req.AdminUserID != callerID {
		return nil, ErrNotAdmin
	}

	admin, err := s.repo.FindByID(ctx, callerID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrNotAdmin
	}
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin {
		return nil, ErrNotAdmin
	}

	if req.TargetUserID == "" {
		return nil, ErrTargetRequired
	}

	target, err := s.repo.FindByID(ctx, req.TargetUserID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.repo.SetAdmin(ctx, target.ID, admin.ID, now); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	target.IsAdmin = true
	target.PromotedAt = &now
	target.PromotedBy = admin.ID

	entry := models.AdminLog{
		ID:           uuid.NewString(),
		Action:       models.ActionPromoteUser,
		AdminID:      admin.ID,
		TargetUserID: target.ID,
		Timestamp:    now,
		Details: models.AdminLogDetails{
			TargetUserName: nameOrUnknown(target.Name),
			AdminUserName:  nameOrUnknown(admin.Name),
		},
	}
	if err := s.repo.InsertAdminLog(ctx, entry); err != nil {
		log.Printf("❌ Failed to write admin log for %s: %v", target.ID, err)
		return nil, fmt.Errorf("write admin log: %w", err)
	}
	if s.notifier != nil {
		if err := s.notifier.Promoted(ctx, entry); err != nil {
			log.Println("⚠️ Failed to publish promotion event:", err)
		}
	}

	log.Printf("✅ %s promoted %s to admin", admin.ID, target.ID)
	return target, nil
}

func nameOrUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
