package submission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
)

type fakeStore struct {
	mu      sync.Mutex
	docs    map[string]models.SurveyResponse
	puts    int
	putErr  error
	getErr  error
	listErr error
	// putHangs makes Put wait for its context, like a server that stopped answering.
	putHangs bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]models.SurveyResponse{}}
}

func (f *fakeStore) Exists(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.docs[userID]
	return ok, nil
}

func (f *fakeStore) Get(_ context.Context, userID string) (*models.SurveyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.docs[userID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (f *fakeStore) Put(ctx context.Context, resp *models.SurveyResponse) error {
	if f.putHangs {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.docs[resp.UserID] = *resp
	return nil
}

func (f *fakeStore) List(context.Context) ([]models.SurveyResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.SurveyResponse, 0, len(f.docs))
	for _, d := range f.docs {
		out = append(out, d)
	}
	return out, nil
}

type recordingNotifier struct {
	got []string
	err error
}

func (n *recordingNotifier) Submitted(_ context.Context, resp *models.SurveyResponse) error {
	n.got = append(n.got, resp.UserID)
	return n.err
}

func intPtr(v int) *int { return &v }

func validDraft() models.SurveyDraft {
	return models.SurveyDraft{
		MainPositions:      []string{"보컬"},
		ParticipatingSongs: []int{1, 2},
		SongDetails: map[int]models.SongDetail{
			1: {SelectedPositions: []string{"보컬"}, CompletionScore: intPtr(8), Opinion: "good"},
			2: {SelectedPositions: []string{"보컬"}, CompletionScore: intPtr(5), Opinion: ""},
		},
	}
}

var u1 = models.Session{UserID: "kakao_1", Name: "U1"}

func newTestService(store Store) (*Service, Mirror, *recordingNotifier) {
	mirror := NewMemoryMirror()
	notifier := &recordingNotifier{}
	svc := NewService(store, mirror, notifier)
	svc.now = func() time.Time { return time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC) }
	return svc, mirror, notifier
}

func TestSubmitStoresKeyedDocumentAndMirror(t *testing.T) {
	store := newFakeStore()
	svc, mirror, notifier := newTestService(store)
	ctx := context.Background()

	resp, err := svc.Submit(ctx, u1, validDraft())
	require.NoError(t, err)

	assert.Equal(t, "kakao_1", resp.UserID)
	assert.Equal(t, "U1", resp.UserName)
	assert.Equal(t, []int{1, 2}, resp.ParticipatingSongs)
	assert.Equal(t, 8, *resp.SongDetails[1].CompletionScore)
	assert.Equal(t, "good", resp.SongDetails[1].Opinion)
	assert.Equal(t, resp.SubmittedAt, resp.UpdatedAt)

	stored, ok := store.docs["kakao_1"]
	require.True(t, ok)
	assert.Equal(t, *resp, stored)

	cached, err := mirror.Load(ctx, "kakao_1")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, resp.UserID, cached.UserID)
	assert.Equal(t, []string{"kakao_1"}, notifier.got)
}

func TestSubmitRejectsSecondSubmission(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.Submit(ctx, u1, validDraft())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, u1, validDraft())
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.Equal(t, 1, store.puts)
}

func TestKeyedWriteIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	resp := &models.SurveyResponse{UserID: "kakao_1", UserName: "U1", ParticipatingSongs: []int{1}}
	require.NoError(t, svc.write(ctx, resp))
	require.NoError(t, svc.write(ctx, resp))

	assert.Len(t, store.docs, 1)
	assert.Equal(t, 2, store.puts)
}

func TestSubmitFailureIsClassifiedAndNotMirrored(t *testing.T) {
	store := newFakeStore()
	store.putErr = mongo.CommandError{Code: 6, Labels: []string{"NetworkError"}, Message: "connection reset"}
	svc, mirror, notifier := newTestService(store)
	ctx := context.Background()

	_, err := svc.Submit(ctx, u1, validDraft())
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnavailable, perr.Kind)
	assert.Equal(t, i18n.MsgPersistUnavailable, perr.MessageKey())

	cached, err := mirror.Load(ctx, "kakao_1")
	require.NoError(t, err)
	assert.Nil(t, cached)
	assert.Empty(t, notifier.got)
}

func TestHungWriteTimesOut(t *testing.T) {
	store := newFakeStore()
	store.putHangs = true
	svc, mirror, notifier := newTestService(store)
	svc.timeout = 20 * time.Millisecond
	ctx := context.Background()

	start := time.Now()
	_, err := svc.Submit(ctx, u1, validDraft())
	assert.Less(t, time.Since(start), 2*time.Second)

	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindTimeout, perr.Kind)
	assert.Equal(t, i18n.MsgPersistTimeout, perr.MessageKey())

	cached, err := mirror.Load(ctx, "kakao_1")
	require.NoError(t, err)
	assert.Nil(t, cached)
	assert.Empty(t, notifier.got)
}

func TestNetworkAndPermissionMessagesDiffer(t *testing.T) {
	network := classify(mongo.CommandError{Labels: []string{"NetworkError"}})
	permission := classify(mongo.CommandError{Code: 13, Message: "not authorized"})

	assert.Equal(t, KindUnavailable, network.Kind)
	assert.Equal(t, KindPermission, permission.Kind)

	for _, locale := range []string{i18n.LocaleKo, i18n.LocaleEn} {
		assert.NotEqual(t,
			i18n.Localize(locale, network.MessageKey()),
			i18n.Localize(locale, permission.MessageKey()))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"deadline", fmt.Errorf("write: %w", context.DeadlineExceeded), KindTimeout},
		{"unauthorized", mongo.CommandError{Code: 13}, KindPermission},
		{"auth failed", mongo.CommandError{Code: 18}, KindPermission},
		{"network label", mongo.CommandError{Labels: []string{"NetworkError"}}, KindUnavailable},
		{"disconnected", mongo.ErrClientDisconnected, KindUnavailable},
		{"other", errors.New("boom"), KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.SurveyDraft)
		key    string
	}{
		{"no positions", func(d *models.SurveyDraft) { d.MainPositions = nil }, i18n.MsgNeedPosition},
		{"unknown main position", func(d *models.SurveyDraft) { d.MainPositions = []string{"트럼펫"} }, i18n.MsgUnknownPosition},
		{"no songs", func(d *models.SurveyDraft) { d.ParticipatingSongs = nil }, i18n.MsgNeedSong},
		{"unknown song", func(d *models.SurveyDraft) { d.ParticipatingSongs = []int{1, 99} }, i18n.MsgUnknownSong},
		{"missing detail", func(d *models.SurveyDraft) { delete(d.SongDetails, 2) }, i18n.MsgNeedSongPosition},
		{"missing score", func(d *models.SurveyDraft) {
			d.SongDetails[2] = models.SongDetail{SelectedPositions: []string{"보컬"}}
		}, i18n.MsgNeedSongScore},
		{"score too high", func(d *models.SurveyDraft) {
			d.SongDetails[2] = models.SongDetail{SelectedPositions: []string{"보컬"}, CompletionScore: intPtr(11)}
		}, i18n.MsgInvalidScore},
		{"unknown detailed position", func(d *models.SurveyDraft) {
			d.SongDetails[1] = models.SongDetail{SelectedPositions: []string{"기타"}, CompletionScore: intPtr(3)}
		}, i18n.MsgUnknownPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := ValidateDraft(d)
			var ve *models.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.key, ve.Key)
		})
	}

	assert.NoError(t, ValidateDraft(validDraft()))
}

func TestCompletionExposesOnlyMetadata(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	status, err := svc.Completion(ctx, "kakao_1")
	require.NoError(t, err)
	assert.False(t, status.IsCompleted)
	assert.Nil(t, status.ResponseData)

	_, err = svc.Submit(ctx, u1, validDraft())
	require.NoError(t, err)

	status, err = svc.Completion(ctx, "kakao_1")
	require.NoError(t, err)
	assert.True(t, status.IsCompleted)
	assert.Equal(t, "U1", status.ResponseData.UserName)
}

func TestResponseFallsBackToMirror(t *testing.T) {
	store := newFakeStore()
	svc, _, _ := newTestService(store)
	ctx := context.Background()

	_, err := svc.Submit(ctx, u1, validDraft())
	require.NoError(t, err)

	store.getErr = mongo.ErrClientDisconnected
	resp, err := svc.Response(ctx, "kakao_1")
	require.NoError(t, err)
	assert.Equal(t, "U1", resp.UserName)

	_, err = svc.Response(ctx, "kakao_2")
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindUnavailable, perr.Kind)
}
