package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Yeoun-Survey/src/models"
)

type captureWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestSubmittedEventKeyedByUser(t *testing.T) {
	w := &captureWriter{}
	p := NewPublisher(w)
	at := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

	err := p.Submitted(context.Background(), &models.SurveyResponse{
		UserID:             "kakao_1",
		UserName:           "U1",
		MainPositions:      []string{"보컬"},
		ParticipatingSongs: []int{1, 2},
		SubmittedAt:        at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "kakao_1", string(msg.Key))

	var ev Event
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, EventTypeSurveySubmitted, ev.Type)
	assert.NotEmpty(t, ev.ID)

	var payload SurveySubmittedPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &payload))
	assert.Equal(t, []int{1, 2}, payload.ParticipatingSongs)
	assert.True(t, at.Equal(payload.SubmittedAt))
}

func TestPromotedEvent(t *testing.T) {
	w := &captureWriter{}
	p := NewPublisher(w)

	require.NoError(t, p.Promoted(context.Background(), models.AdminLog{ID: "log-1", AdminID: "kakao_1", TargetUserID: "kakao_2"}))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "kakao_2", string(w.msgs[0].Key))
	assert.Equal(t, "admin.promoted", string(w.msgs[0].Headers[0].Value))
}

func TestDisabledPublisherIsNoop(t *testing.T) {
	p := NewKafkaPublisher(nil, "topic")
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Submitted(context.Background(), &models.SurveyResponse{UserID: "kakao_1"}))
	assert.NoError(t, p.Close())
}

func TestWriteFailureIsReturned(t *testing.T) {
	p := NewPublisher(&captureWriter{err: errors.New("broker down")})
	err := p.Submitted(context.Background(), &models.SurveyResponse{UserID: "kakao_1"})
	assert.ErrorContains(t, err, "broker down")
}
