package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ConfigChangedEvent is emitted after a configuration aggregate is created,
// mutated, or deleted. Downstream consumers (cache invalidation, storefront
// rebuilds) react to it asynchronously.
type ConfigChangedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	StoreID    uuid.UUID `json:"store_id"`
	Section    string    `json:"section"`   // domains, apps_and_channels, shipping, policies
	Operation  string    `json:"operation"` // e.g. created, updated, deleted
	Version    int       `json:"version"`   // Aggregate version after the change
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing configuration change
// events to a message queue.
type EventPublisher interface {
	// PublishConfigChanged publishes a configuration change event for async processing
	PublishConfigChanged(ctx context.Context, event *ConfigChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
