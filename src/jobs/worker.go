package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"Backend-Yeoun-Survey/src/models"
)

// StatsRefresher recomputes and caches the admin report.
type StatsRefresher interface {
	Refresh(ctx context.Context) (*models.AdminReport, error)
	Invalidate(ctx context.Context) error
}

func HandleRefreshStatsTask(refresher StatsRefresher) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload RefreshStatsPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		report, err := refresher.Refresh(ctx)
		if err != nil {
			log.Println("❌ Failed to refresh survey stats:", err)
			return err
		}
		log.Printf("✅ Survey stats refreshed after %s (%d participants)", payload.UserID, report.Overview.Participants)
		return nil
	}
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ worker
func RegisterHandlers(mux *asynq.ServeMux, refresher StatsRefresher) {
	mux.HandleFunc(TypeRefreshStats, HandleRefreshStatsTask(refresher))
}

// StartWorker runs the asynq server in the background until ctx is done.
func StartWorker(ctx context.Context, redisAddr string, refresher StatsRefresher) error {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)
	mux := asynq.NewServeMux()
	RegisterHandlers(mux, refresher)

	if err := srv.Start(mux); err != nil {
		return err
	}
	log.Println("✅ Asynq worker started")

	go func() {
		<-ctx.Done()
		srv.Shutdown()
		log.Println("🔄 Asynq worker stopped")
	}()
	return nil
}

// Scheduler drops the cached report after each submission and enqueues a
// refresh. Without an asynq client it refreshes inline.
type Scheduler struct {
	client    *asynq.Client
	refresher StatsRefresher
	delay     time.Duration
	unique    time.Duration
}

func NewScheduler(client *asynq.Client, refresher StatsRefresher) *Scheduler {
	return &Scheduler{client: client, refresher: refresher, delay: 2 * time.Second, unique: time.Minute}
}

func (s *Scheduler) Submitted(ctx context.Context, resp *models.SurveyResponse) error {
	// a stale report must not outlive the response that made it stale
	if err := s.refresher.Invalidate(ctx); err != nil {
		log.Println("⚠️ Failed to clear survey stats cache:", err)
	}
	if s.client == nil {
		_, err := s.refresher.Refresh(ctx)
		return err
	}

	task, err := NewRefreshStatsTask(resp.UserID, resp.SubmittedAt)
	if err != nil {
		log.Printf("❌ Failed to create task %s: %v", TypeRefreshStats, err)
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessIn(s.delay), asynq.Unique(s.unique))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		// same submission notified twice
		return nil
	}
	if err != nil {
		log.Printf("❌ Failed to enqueue task %s: %v", TypeRefreshStats, err)
		return err
	}
	log.Printf("✅ Task scheduled: %s for %s", TypeRefreshStats, resp.UserID)
	return nil
}
