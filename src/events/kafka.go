package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"Backend-Yeoun-Survey/src/models"
)

type EventType string

const (
	EventTypeSurveySubmitted EventType = "survey.submitted"
	EventTypeAdminPromoted   EventType = "admin.promoted"
)

type Event struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

type SurveySubmittedPayload struct {
	UserName           string    `json:"user_name"`
	MainPositions      []string  `json:"main_positions"`
	ParticipatingSongs []int     `json:"participating_songs"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

type AdminPromotedPayload struct {
	AdminID      string `json:"admin_id"`
	TargetUserID string `json:"target_user_id"`
	LogID        string `json:"log_id"`
}

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits domain events. With no brokers configured every publish
// is a no-op.
type Publisher struct {
	writer MessageWriter
	now    func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string) *Publisher {
	if len(brokers) == 0 {
		log.Println("⚠️ KAFKA_BROKERS not set. Domain events are disabled.")
		return &Publisher{now: time.Now}
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	log.Printf("✅ Kafka publisher ready (topic %s)", topic)
	return &Publisher{writer: writer, now: time.Now}
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer, now: time.Now}
}

func (p *Publisher) Enabled() bool { return p.writer != nil }

// PublishEvent keys the message by user id so one user's events stay ordered.
func (p *Publisher) PublishEvent(ctx context.Context, eventType EventType, userID string, payload interface{}) error {
	if p.writer == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	value, err := json.Marshal(Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: p.now(),
		Payload:   raw,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(userID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *Publisher) Submitted(ctx context.Context, resp *models.SurveyResponse) error {
	return p.PublishEvent(ctx, EventTypeSurveySubmitted, resp.UserID, SurveySubmittedPayload{
		UserName:           resp.UserName,
		MainPositions:      resp.MainPositions,
		ParticipatingSongs: resp.ParticipatingSongs,
		SubmittedAt:        resp.SubmittedAt,
	})
}

func (p *Publisher) Promoted(ctx context.Context, entry models.AdminLog) error {
	return p.PublishEvent(ctx, EventTypeAdminPromoted, entry.TargetUserID, AdminPromotedPayload{
		AdminID:      entry.AdminID,
		TargetUserID: entry.TargetUserID,
		LogID:        entry.ID,
	})
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}
