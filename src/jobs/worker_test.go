package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Backend-Yeoun-Survey/src/models"
)

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) Refresh(ctx context.Context) (*models.AdminReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminReport), args.Error(1)
}

func (m *mockRefresher) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHandleRefreshStatsTask(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Refresh", mock.Anything).Return(&models.AdminReport{Overview: models.SurveyOverview{Participants: 3}}, nil).Once()

	task, err := NewRefreshStatsTask("kakao_1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, TypeRefreshStats, task.Type())

	require.NoError(t, HandleRefreshStatsTask(refresher)(context.Background(), task))
	refresher.AssertExpectations(t)
}

func TestHandleRefreshStatsTaskSkipsRetryOnBadPayload(t *testing.T) {
	refresher := new(mockRefresher)
	task := asynq.NewTask(TypeRefreshStats, []byte("{"))

	err := HandleRefreshStatsTask(refresher)(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestHandleRefreshStatsTaskPropagatesFailure(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Refresh", mock.Anything).Return(nil, errors.New("mongo down"))

	task, err := NewRefreshStatsTask("kakao_1", time.Now())
	require.NoError(t, err)
	assert.Error(t, HandleRefreshStatsTask(refresher)(context.Background(), task))
}

func TestSchedulerRefreshesInlineWithoutClient(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Invalidate", mock.Anything).Return(nil).Once()
	refresher.On("Refresh", mock.Anything).Return(&models.AdminReport{}, nil).Once()

	s := NewScheduler(nil, refresher)
	require.NoError(t, s.Submitted(context.Background(), &models.SurveyResponse{UserID: "kakao_1"}))
	refresher.AssertExpectations(t)
}

func TestSchedulerClearsCacheBeforeEnqueueing(t *testing.T) {
	refresher := new(mockRefresher)
	var order []string
	refresher.On("Invalidate", mock.Anything).Run(func(mock.Arguments) { order = append(order, "invalidate") }).Return(nil).Once()
	refresher.On("Refresh", mock.Anything).Run(func(mock.Arguments) { order = append(order, "refresh") }).Return(&models.AdminReport{}, nil).Once()

	s := NewScheduler(nil, refresher)
	require.NoError(t, s.Submitted(context.Background(), &models.SurveyResponse{UserID: "kakao_2"}))
	assert.Equal(t, []string{"invalidate", "refresh"}, order)
}

func TestSchedulerKeepsGoingWhenCacheClearFails(t *testing.T) {
	refresher := new(mockRefresher)
	refresher.On("Invalidate", mock.Anything).Return(errors.New("redis down")).Once()
	refresher.On("Refresh", mock.Anything).Return(&models.AdminReport{}, nil).Once()

	s := NewScheduler(nil, refresher)
	require.NoError(t, s.Submitted(context.Background(), &models.SurveyResponse{UserID: "kakao_3"}))
	refresher.AssertExpectations(t)
}
