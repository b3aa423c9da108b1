package users

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Yeoun-Survey/src/models"
)

type fakeRepo struct {
	mu    sync.Mutex
	users map[string]models.User
	logs   []models.AdminLog
	logErr error
}

func newFakeRepo(seed ...models.User) *fakeRepo {
	r := &fakeRepo{users: map[string]models.User{}}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeRepo) Upsert(_ context.Context, user models.User) (*models.User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.users[user.ID]
	if ok {
		existing.Name = user.Name
		existing.Email = user.Email
		existing.ProfileImage = user.ProfileImage
		r.users[user.ID] = existing
		return &existing, false, nil
	}
	user.IsAdmin = false
	r.users[user.ID] = user
	return &user, true, nil
}

func (r *fakeRepo) List(context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) SetAdmin(_ context.Context, targetID, adminID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[targetID]
	if !ok {
		return ErrUserNotFound
	}
	u.IsAdmin = true
	u.PromotedAt = &at
	u.PromotedBy = adminID
	r.users[targetID] = u
	return nil
}

func (r *fakeRepo) InsertAdminLog(_ context.Context, entry models.AdminLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.logErr != nil {
		return r.logErr
	}
	r.logs = append(r.logs, entry)
	return nil
}

type recordingNotifier struct {
	entries []models.AdminLog
}

func (n *recordingNotifier) Promoted(_ context.Context, entry models.AdminLog) error {
	n.entries = append(n.entries, entry)
	return nil
}

var (
	t0    = time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	admin = models.User{ID: "kakao_1", Name: "Admin", IsAdmin: true, CreatedAt: t0}
	alice = models.User{ID: "kakao_2", Name: "Alice", CreatedAt: t0.Add(time.Hour)}
	bob   = models.User{ID: "kakao_3", Name: "Bob", CreatedAt: t0.Add(2 * time.Hour)}
)

func TestPromoteWritesFlagAndLog(t *testing.T) {
	repo := newFakeRepo(admin, alice)
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user, err := svc.Promote(context.Background(), "kakao_1", PromoteRequest{TargetUserID: "kakao_2", AdminUserID: "kakao_1"})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "kakao_1", user.PromotedBy)

	stored := repo.users["kakao_2"]
	assert.True(t, stored.IsAdmin)
	assert.Equal(t, now, *stored.PromotedAt)

	require.Len(t, repo.logs, 1)
	entry := repo.logs[0]
	assert.Equal(t, models.ActionPromoteUser, entry.Action)
	assert.Equal(t, "kakao_1", entry.AdminID)
	assert.Equal(t, "kakao_2", entry.TargetUserID)
	assert.Equal(t, "Alice", entry.Details.TargetUserName)
	assert.Equal(t, "Admin", entry.Details.AdminUserName)
	assert.NotEmpty(t, entry.ID)
	assert.Len(t, notifier.entries, 1)
}

func TestPromoteFailsWhenAdminLogIsNotWritten(t *testing.T) {
	repo := newFakeRepo(admin, alice)
	repo.logErr = errors.New("admin_logs unavailable")
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier)

	user, err := svc.Promote(context.Background(), "kakao_1", PromoteRequest{TargetUserID: "kakao_2"})
	assert.ErrorIs(t, err, repo.logErr)
	assert.Nil(t, user)
	assert.Empty(t, repo.logs)
	assert.Empty(t, notifier.entries)
}

func TestPromoteRejectionsWriteNothing(t *testing.T) {
	tests := []struct {
		name   string
		caller string
		req    PromoteRequest
		want   error
	}{
		{"missing caller", "", PromoteRequest{TargetUserID: "kakao_2"}, ErrAdminIDRequired},
		{"caller not admin", "kakao_3", PromoteRequest{TargetUserID: "kakao_2"}, ErrNotAdmin},
		{"unknown caller", "kakao_9", PromoteRequest{TargetUserID: "kakao_2"}, ErrNotAdmin},
		{"admin id mismatch", "kakao_3", PromoteRequest{TargetUserID: "kakao_2", AdminUserID: "kakao_1"}, ErrNotAdmin},
		{"missing target", "kakao_1", PromoteRequest{}, ErrTargetRequired},
		{"unknown target", "kakao_1", PromoteRequest{TargetUserID: "kakao_9"}, ErrTargetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(admin, alice, bob)
			svc := NewService(repo, nil)

			_, err := svc.Promote(context.Background(), tt.caller, tt.req)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.logs)
			assert.False(t, repo.users["kakao_2"].IsAdmin)
		})
	}
}

func TestListOrdersAdminsFirstThenNewest(t *testing.T) {
	repo := newFakeRepo(alice, bob, admin)
	svc := NewService(repo, nil)

	list, stats, err := svc.List(context.Background())
	require.NoError(t, err)

	ids := []string{}
	for _, u := range list {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"kakao_1", "kakao_3", "kakao_2"}, ids)
	assert.Equal(t, models.UserStats{Total: 3, Admins: 1, Regular: 2}, stats)
}

func TestFindOrCreateKeepsAdminFlag(t *testing.T) {
	repo := newFakeRepo(admin)
	svc := NewService(repo, nil)
	ctx := context.Background()

	user, created, err := svc.FindOrCreate(ctx, models.User{ID: "kakao_1", Name: "Renamed"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "Renamed", user.Name)

	user, created, err = svc.FindOrCreate(ctx, models.User{ID: "kakao_5", Name: "New"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.CreatedAt.IsZero())
}
