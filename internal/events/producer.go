// Package events publishes domain mutation events to Kafka so downstream
// consumers (matching, analytics, email digests) can react without the
// request path waiting on them.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EventType string

const (
	JobCreated               EventType = "job_created"
	JobUpdated               EventType = "job_updated"
	ApplicationSubmitted     EventType = "application_submitted"
	ApplicationStatusChanged EventType = "application_status_changed"
)

type Event struct {
	Type       EventType `json:"type"`
	EntityID   uuid.UUID `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer ships events from a buffered channel on a background loop.
// A nil *Producer is valid and drops everything, so callers never need
// to check whether eventing is configured.
type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
}

func NewProducer(brokers []string, topic string, logger *zap.Logger) *Producer {
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		events:    make(chan Event, 1000),
		logger:    logger.Named("event_producer"),
		closeChan: make(chan struct{}),
	}

	go p.eventLoop()
	return p
}

func (p *Producer) Produce(eventType EventType, entityID uuid.UUID, payload any) {
	if p == nil {
		return
	}
	evt := Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	select {
	case p.events <- evt:
	default:
		p.logger.Warn("event queue full, dropping event",
			zap.String("event_type", string(eventType)),
			zap.String("entity_id", entityID.String()),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event",
			zap.Error(err),
			zap.String("entity_id", event.EntityID.String()),
		)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID.String()),
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("entity_id", event.EntityID.String()),
		)
	}
}

func (p *Producer) Close() {
	if p == nil {
		return
	}
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("failed to close kafka writer", zap.Error(err))
	}
}
