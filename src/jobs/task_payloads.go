package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeRefreshStats = "survey:stats-refresh"

type RefreshStatsPayload struct {
	UserID      string    `json:"user_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewRefreshStatsTask(userID string, submittedAt time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshStatsPayload{UserID: userID, SubmittedAt: submittedAt})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshStats, payload), nil
}
