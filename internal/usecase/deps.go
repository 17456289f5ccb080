package usecase

import (
	"context"
	"time"

	"crewcall/internal/events"

	"github.com/google/uuid"
)

// Cache is the slice of the redis client the managers use. All methods
// degrade to misses/no-ops when the cache is unavailable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// EventProducer publishes domain mutation events; implementations must
// tolerate being backed by a disabled producer.
type EventProducer interface {
	Produce(eventType events.EventType, entityID uuid.UUID, payload any)
}

// Notifier pushes per-user events to open client sessions.
type Notifier interface {
	EmailVerified(userID uuid.UUID)
	ApplicationStatusChanged(userID, applicationID uuid.UUID, jobTitle, status string)
}
